package header

//go:generate go tool stringer -type=ShapeEnum -trimprefix=Shape -output=shape_string.go

// ShapeEnum tells what kind of value an attribute holds.
type ShapeEnum int

const (
	ShapeScalar     ShapeEnum = iota // plain value
	ShapeNested                      // one-to-one sub-tuple
	ShapeCollection                  // one-to-many sub-tuples

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

//go:generate go tool stringer -type=CombinatorEnum -trimprefix=Combinator -output=combinator_string.go

// CombinatorEnum tells how an attribute's value is synthesized.
type CombinatorEnum int

const (
	CombinatorNone  CombinatorEnum = iota // read directly from the tuple
	CombinatorWrap                        // built from flat sibling keys
	CombinatorGroup                       // built by folding tuples

	// CombinatorTotal is a constant that represents the total number of combinators defined
	CombinatorTotal = int(iota)
)
