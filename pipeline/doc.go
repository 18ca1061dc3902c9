// Package pipeline compiles a header.Header into an executable Pipeline and
// runs it over tuple sequences.
//
// Compilation walks the header tree children first. Each level becomes:
//
//  1. per-tuple steps: wraps, then lifts, then one rename of scalar keys
//  2. at most one group fold over the whole sequence, keyed by every
//     non-grouped attribute of the level
//  3. an instantiate step when the level declares a model
//
// Nested and grouped attributes reference the compiled program of their own
// sub-header, so the whole tree runs as a single composed function.
//
// A Pipeline is immutable. Call may be used concurrently from any number of
// goroutines, and a Cache lets callers reuse pipelines across descriptions
// that coerce to the same header.
//
// Basic usage:
//
//	h, err := header.Coerce(header.Describe(
//		header.Attr("name"),
//		header.Attr("tasks", header.Grouped(), header.Array(header.Describe(header.Attr("title")))),
//	))
//	p, err := pipeline.Compile(h)
//	out, err := p.Call(tuples)
package pipeline
