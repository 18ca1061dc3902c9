package step

import "fmt"

//go:generate go tool stringer -type=KindEnum -trimprefix=Kind -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // zero value is not a valid step kind

	KindRename
	KindLift
	KindLiftMany
	KindWrap
	KindGroup
	KindInstantiate

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsFold reports whether steps of this kind consume a whole sequence.
func (k KindEnum) IsFold() bool {
	return k == KindGroup
}

// Step is the common part of every pipeline operation.
type Step interface {
	fmt.Stringer

	Kind() KindEnum
}

// Mapper is a per-tuple step.
type Mapper interface {
	Step

	Apply(t Tuple) (Tuple, error)
}

// Folder is a sequence-wide step.
type Folder interface {
	Step

	Fold(tuples []Tuple) ([]Tuple, error)
}
