package step

import (
	"slices"
	"strings"
)

// KeyPair maps a source key onto a target key.
type KeyPair struct {
	From string
	To   string
}

type rename struct {
	pairs []KeyPair
	keep  []string
}

// Rename returns a step that moves every From key to its To key. All source
// keys are read before any target key is written, so swaps are safe.
func Rename(pairs ...KeyPair) Mapper {
	return RenameKeeping(nil, pairs...)
}

// RenameKeeping is like Rename but copies instead of moving the source keys
// listed in keep, for later steps that still read them.
func RenameKeeping(keep []string, pairs ...KeyPair) Mapper {
	return &rename{
		pairs: append([]KeyPair(nil), pairs...),
		keep:  append([]string(nil), keep...),
	}
}

func (r *rename) Kind() KindEnum { return KindRename }

func (r *rename) String() string {
	parts := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		parts[i] = p.From + "->" + p.To
	}

	return "rename(" + strings.Join(parts, ", ") + ")"
}

func (r *rename) Apply(t Tuple) (Tuple, error) {
	out := clone(t)
	vals := make([]any, len(r.pairs))

	for i, p := range r.pairs {
		v, ok := t[p.From]
		if !ok {
			return nil, missing(KindRename, p.From)
		}

		vals[i] = v

		if !slices.Contains(r.keep, p.From) {
			delete(out, p.From)
		}
	}

	for i, p := range r.pairs {
		out[p.To] = vals[i]
	}

	return out, nil
}
