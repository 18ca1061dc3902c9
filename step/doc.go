// Package step provides the primitive tuple operations a compiled pipeline is
// built from.
//
// Every operation works on a Tuple, a plain map from key to value. Operations
// come in two flavours:
//
//   - Mapper steps transform one tuple at a time (Rename, Lift, LiftMany, Wrap).
//   - Folder steps consume a whole sequence and may merge several input tuples
//     into one output tuple (Group).
//
// An Instantiator turns the final tuple of a level into a domain value.
//
// Steps never modify the tuples they receive; each Apply returns a fresh map.
// A single step value may therefore be shared by any number of goroutines.
//
// Nested shapes are handled by handing a step the compiled program of the
// nested header as a SeqFunc. Steps have no knowledge of headers.
package step
