package header

import (
	"cmp"
	"fmt"

	"github.com/rs/zerolog"

	"tuple-mapper/internal/diagnostic"
)

// Option configures Coerce.
type Option func(*coercer)

// WithLogger logs every coerced attribute at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *coercer) { c.log = log }
}

type coercer struct {
	log   zerolog.Logger
	diags diagnostic.Diagnostics
}

// Coerce validates desc and builds the Header tree. Every problem found is
// reported; the returned error matches ErrInvalidMapping and/or
// ErrDuplicateKey through errors.Is.
func Coerce(desc Description, opts ...Option) (*Header, error) {
	c := &coercer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	h := c.header(desc, "")

	if err := c.diags.Err(); err != nil {
		return nil, err
	}

	return h, nil
}

// MustCoerce is like Coerce but panics on an invalid description.
func MustCoerce(desc Description, opts ...Option) *Header {
	h, err := Coerce(desc, opts...)
	if err != nil {
		panic(err)
	}

	return h
}

// Check returns every diagnostic Coerce would produce for desc, including
// warnings that do not prevent coercion.
func Check(desc Description) diagnostic.Diagnostics {
	c := &coercer{log: zerolog.Nop()}
	c.header(desc, "")

	return c.diags
}

func (c *coercer) header(desc Description, prefix string) *Header {
	h := &Header{
		model:      desc.Model,
		attributes: make([]Attribute, 0, len(desc.Attributes)),
	}

	seen := make(map[string]struct{}, len(desc.Attributes))

	for i, e := range desc.Attributes {
		path := joinPath(prefix, e.Name)

		if e.Name == "" {
			c.diags.AddError(ErrInvalidMapping, "empty_name",
				fmt.Sprintf("attribute #%d has no name", i), prefix)

			continue
		}

		if _, dup := seen[e.Name]; dup {
			c.diags.AddError(ErrDuplicateKey, "duplicate_key",
				fmt.Sprintf("target key %q is declared more than once", e.Name), path)

			continue
		}

		seen[e.Name] = struct{}{}

		if a, ok := c.attribute(e, path); ok {
			h.attributes = append(h.attributes, a)
		}
	}

	if fp, err := fingerprint(h); err == nil {
		h.fingerprint = fp
	}

	return h
}

func (c *coercer) attribute(e Entry, path string) (Attribute, bool) {
	o := e.Options

	if !o.Type.IsValid() {
		c.diags.AddError(ErrInvalidMapping, "invalid_type",
			fmt.Sprintf("unknown type %q (expected %q or %q)", o.Type, TypeHash, TypeArray), path)

		return Attribute{}, false
	}

	a := Attribute{
		Name:  e.Name,
		From:  cmp.Or(o.From, e.Name),
		Shape: shapeOf(o),
	}

	ok := true

	switch {
	case o.Group && o.Wrap:
		c.diags.AddError(ErrInvalidMapping, "group_and_wrap",
			"an attribute cannot be both wrapped and grouped", path)

		ok = false

	case o.Group && a.Shape != ShapeCollection:
		c.diags.AddError(ErrInvalidMapping, "group_without_collection",
			fmt.Sprintf("group requires type %q, got %q", TypeArray, o.Type), path)

		ok = false

	case o.Wrap && a.Shape != ShapeNested:
		c.diags.AddError(ErrInvalidMapping, "wrap_without_nested",
			fmt.Sprintf("wrap requires type %q, got %q", TypeHash, o.Type), path)

		ok = false

	case o.Group:
		a.Combinator = CombinatorGroup

	case o.Wrap:
		a.Combinator = CombinatorWrap
	}

	if a.Shape != ShapeScalar && o.Header == nil {
		c.diags.AddError(ErrInvalidMapping, "missing_header",
			fmt.Sprintf("%s attribute requires a header", a.Shape), path)

		return Attribute{}, false
	}

	if a.Combinator != CombinatorNone {
		if o.From != "" && o.From != e.Name {
			c.diags.AddWarning("ignored_from",
				fmt.Sprintf("from %q is ignored for %s attributes", o.From, a.Combinator), path)
		}

		a.From = e.Name
	} else if o.From == e.Name {
		c.diags.AddWarning("redundant_from", "from equals the attribute name", path)
	}

	if o.Header != nil {
		a.Header = c.header(*o.Header, path)

		if a.Combinator != CombinatorNone && len(a.Header.FlatKeys()) == 0 {
			c.diags.AddError(ErrInvalidMapping, "empty_header",
				fmt.Sprintf("%s attribute needs at least one key", a.Combinator), path)

			ok = false
		}
	}

	if !ok {
		return Attribute{}, false
	}

	c.log.Debug().
		Str("path", path).
		Str("from", a.From).
		Stringer("shape", a.Shape).
		Stringer("combinator", a.Combinator).
		Msg("coerced attribute")

	return a, true
}

// shapeOf classifies an entry: an explicit type marker wins, otherwise the
// group flag means a collection and wrap or a sub-header mean a nested tuple.
func shapeOf(o Options) ShapeEnum {
	switch {
	case o.Type == TypeArray:
		return ShapeCollection
	case o.Type == TypeHash:
		return ShapeNested
	case o.Group:
		return ShapeCollection
	case o.Wrap || o.Header != nil:
		return ShapeNested
	default:
		return ShapeScalar
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
