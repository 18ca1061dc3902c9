package step

import (
	"fmt"
	"slices"
	"strings"
)

type wrap struct {
	to   string
	keys []string
	drop []string
	sub  SeqFunc
}

// Wrap returns a step that pulls keys out of the current tuple into a new
// nested tuple, runs sub over it and stores the result at to. Pulled keys are
// removed from the current tuple unless they are listed in keep.
func Wrap(to string, keys, keep []string, sub SeqFunc) Mapper {
	drop := make([]string, 0, len(keys))

	for _, k := range keys {
		if !slices.Contains(keep, k) {
			drop = append(drop, k)
		}
	}

	return &wrap{
		to:   to,
		keys: append([]string(nil), keys...),
		drop: drop,
		sub:  sub,
	}
}

func (w *wrap) Kind() KindEnum { return KindWrap }

func (w *wrap) String() string {
	return fmt.Sprintf("wrap([%s]->%s)", strings.Join(w.keys, ", "), w.to)
}

func (w *wrap) Apply(t Tuple) (Tuple, error) {
	inner := make(Tuple, len(w.keys))

	for _, k := range w.keys {
		v, ok := t[k]
		if !ok {
			return nil, missing(KindWrap, k)
		}

		inner[k] = v
	}

	res, err := runOne(w.sub, inner)
	if err != nil {
		return nil, nested(KindWrap, w.to, err)
	}

	out := clone(t)
	for _, k := range w.drop {
		delete(out, k)
	}

	out[w.to] = res

	return out, nil
}
