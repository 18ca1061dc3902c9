package pipeline

import (
	"github.com/rs/zerolog"

	"tuple-mapper/header"
	"tuple-mapper/internal/common"
	"tuple-mapper/step"
)

type compiler struct {
	log zerolog.Logger
}

// Compile builds the pipeline for h. Headers are validated by
// header.Coerce, so compilation only fails for a nil header.
func Compile(h *header.Header, opts ...Option) (*Pipeline, error) {
	if h == nil {
		return nil, ErrNilHeader
	}

	c := &compiler{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c.compile(h, ""), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(h *header.Header, opts ...Option) *Pipeline {
	p, err := Compile(h, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

func (c *compiler) compile(h *header.Header, path string) *Pipeline {
	attrs := h.Attributes()
	reads := levelReads(attrs)

	p := &Pipeline{
		header: h,
		log:    c.log,
	}

	var (
		wraps     []step.Mapper
		lifts     []step.Mapper
		renames   []step.KeyPair
		groups    []step.GroupSpec
		partition []string
	)

	for i, a := range attrs {
		var sub *Pipeline

		if a.Header != nil {
			sub = c.compile(a.Header, joinPath(path, a.Name))
			p.children = append(p.children, child{key: a.Name, pipeline: sub})
		}

		switch {
		case a.IsScalar():
			if a.Renamed() {
				renames = append(renames, step.KeyPair{From: a.From, To: a.Name})
			}

		case a.Combinator == header.CombinatorWrap:
			wraps = append(wraps, step.Wrap(a.Name, reads[i], otherReads(reads, i), sub.run))

		case a.Combinator == header.CombinatorGroup:
			groups = append(groups, step.GroupSpec{Key: a.Name, Keys: reads[i], Sub: sub.run})

			continue

		case a.Shape == header.ShapeNested:
			lifts = append(lifts, step.Lift(a.From, a.Name, sub.run))

		default:
			lifts = append(lifts, step.LiftMany(a.From, a.Name, sub.run))
		}

		partition = append(partition, a.Name)
	}

	p.mappers = append(wraps, lifts...)
	if !common.IsEmpty(renames) {
		p.mappers = append(p.mappers, step.RenameKeeping(groupReads(attrs, reads), renames...))
	}

	if !common.IsEmpty(groups) {
		p.folders = append(p.folders, step.Group(partition, groups...))
	}

	if m := h.Model(); m != nil {
		p.instantiate = step.Instantiate(m)
	}

	c.log.Debug().
		Str("path", pathOrRoot(path)).
		Int("mappers", len(p.mappers)).
		Int("folders", len(p.folders)).
		Bool("instantiate", p.instantiate != nil).
		Msg("compiled header level")

	return p
}

// levelReads returns, per attribute, the keys it reads from the tuple of the
// current level.
func levelReads(attrs []header.Attribute) [][]string {
	reads := make([][]string, len(attrs))

	for i, a := range attrs {
		if a.Combinator == header.CombinatorNone {
			reads[i] = []string{a.From}
		} else {
			reads[i] = a.Header.FlatKeys()
		}
	}

	return reads
}

// groupReads returns the keys read by the grouped attributes of a level. A
// rename keeps them so the fold that follows still finds them.
func groupReads(attrs []header.Attribute, reads [][]string) []string {
	var keys []string

	for i, a := range attrs {
		if a.Combinator == header.CombinatorGroup {
			keys = common.AppendUnique(keys, reads[i]...)
		}
	}

	return keys
}

// otherReads returns the keys read by every attribute but the i-th one.
func otherReads(reads [][]string, i int) []string {
	var keys []string

	for j, r := range reads {
		if j == i {
			continue
		}

		keys = common.AppendUnique(keys, r...)
	}

	return keys
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}

	return path
}
