package step

import (
	"fmt"
	"slices"
	"strings"
)

// GroupSpec describes one collection attribute synthesized by a Group step.
type GroupSpec struct {
	// Key is the target key the collection is stored at.
	Key string
	// Keys are the flat keys each input tuple contributes to one child.
	Keys []string
	// Sub is the compiled program of the child header. It receives the whole
	// child list of one partition.
	Sub SeqFunc
}

type group struct {
	partition []string
	specs     []GroupSpec
	consumed  []string
}

// Group returns a step folding tuples that share the same values for the
// partition keys into one tuple per partition. Each spec collects its child
// keys from every tuple of the partition into a list stored at spec.Key.
//
// Partitions appear in first-occurrence order and children keep their input
// order. Child keys that are also partition keys stay on the parent.
func Group(partition []string, specs ...GroupSpec) Folder {
	var consumed []string

	for _, spec := range specs {
		for _, k := range spec.Keys {
			if !slices.Contains(partition, k) && !slices.Contains(consumed, k) {
				consumed = append(consumed, k)
			}
		}
	}

	return &group{
		partition: append([]string(nil), partition...),
		specs:     append([]GroupSpec(nil), specs...),
		consumed:  consumed,
	}
}

func (g *group) Kind() KindEnum { return KindGroup }

func (g *group) String() string {
	keys := make([]string, len(g.specs))
	for i, spec := range g.specs {
		keys[i] = fmt.Sprintf("%s[%s]", spec.Key, strings.Join(spec.Keys, ", "))
	}

	return fmt.Sprintf("group(%s by [%s])", strings.Join(keys, ", "), strings.Join(g.partition, ", "))
}

type bucket struct {
	base     Tuple
	children [][]Tuple
}

func (g *group) Fold(tuples []Tuple) ([]Tuple, error) {
	index := make(map[string]int)
	buckets := make([]*bucket, 0)

	for _, t := range tuples {
		pk, err := PartitionKey(t, g.partition)
		if err != nil {
			return nil, &Error{Kind: KindGroup, Err: ErrShapeMismatch, Cause: err}
		}

		i, ok := index[pk]
		if !ok {
			base := clone(t)
			for _, k := range g.consumed {
				delete(base, k)
			}

			i = len(buckets)
			index[pk] = i
			buckets = append(buckets, &bucket{
				base:     base,
				children: make([][]Tuple, len(g.specs)),
			})
		}

		b := buckets[i]

		for si, spec := range g.specs {
			child := make(Tuple, len(spec.Keys))

			for _, k := range spec.Keys {
				v, ok := t[k]
				if !ok {
					return nil, missing(KindGroup, k)
				}

				child[k] = v
			}

			b.children[si] = append(b.children[si], child)
		}
	}

	out := make([]Tuple, len(buckets))

	for i, b := range buckets {
		for si, spec := range g.specs {
			res, err := runSeq(spec.Sub, b.children[si])
			if err != nil {
				return nil, nested(KindGroup, spec.Key, err)
			}

			b.base[spec.Key] = res
		}

		out[i] = b.base
	}

	return out, nil
}
