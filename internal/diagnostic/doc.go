// Package diagnostic provides structured errors and warnings collected while
// coercing mapping descriptions.
//
// Key capabilities:
//   - Every problem of a description is reported, not only the first one
//   - Each diagnostic carries a stable code and the dotted attribute path
//   - Error diagnostics keep their sentinel so errors.Is works on the result
package diagnostic
