package step

import "maps"

// Tuple is a single relational row: a mapping from key to value. Values may be
// scalars, nested tuples or sequences of tuples.
type Tuple = map[string]any

// SeqFunc is the compiled program of a (sub-)header. It maps a sequence of
// tuples to a sequence of outputs, which are tuples or model instances.
type SeqFunc func([]Tuple) ([]any, error)

// clone returns a shallow copy of t that is safe to write to.
func clone(t Tuple) Tuple {
	if t == nil {
		return make(Tuple)
	}

	return maps.Clone(t)
}

// AsTuple reports whether v holds a nested tuple and returns it.
func AsTuple(v any) (Tuple, bool) {
	t, ok := v.(map[string]any)
	return t, ok
}

// AsSeq reports whether v holds a sequence of tuples and returns it.
// Both []any (as produced by decoders) and []map[string]any are accepted.
func AsSeq(v any) ([]Tuple, bool) {
	switch seq := v.(type) {
	case []map[string]any:
		return seq, true

	case []any:
		out := make([]Tuple, len(seq))

		for i, item := range seq {
			t, ok := AsTuple(item)
			if !ok {
				return nil, false
			}

			out[i] = t
		}

		return out, true

	default:
		return nil, false
	}
}
