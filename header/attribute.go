package header

import (
	"fmt"

	"tuple-mapper/model"
)

// Attribute is one mapping rule of a Header.
type Attribute struct {
	// Name is the key the output tuple uses.
	Name string
	// From is the key read from the input tuple. Equal to Name unless renamed.
	// Wrap and Group attributes are synthesized and always have From == Name.
	From string
	// Shape of the attribute value.
	Shape ShapeEnum
	// Combinator used to synthesize the value.
	Combinator CombinatorEnum
	// Header describes the nested value; nil for scalars.
	Header *Header
}

// IsScalar returns true for plain attributes.
func (a Attribute) IsScalar() bool {
	return a.Shape == ShapeScalar
}

// Renamed returns true if the attribute reads a different key than it writes.
func (a Attribute) Renamed() bool {
	return a.From != a.Name
}

// Model returns the target model of the nested header, if any.
func (a Attribute) Model() model.Model {
	if a.Header == nil {
		return nil
	}

	return a.Header.Model()
}

// String returns a compact representation, e.g. "tasks: Collection/Group [title]".
func (a Attribute) String() string {
	name := a.Name
	if a.Renamed() {
		name = a.From + "->" + a.Name
	}

	if a.IsScalar() {
		return name
	}

	return fmt.Sprintf("%s: %s/%s %s", name, a.Shape, a.Combinator, a.Header)
}
