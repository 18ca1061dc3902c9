package header

import "errors"

var (
	// ErrInvalidMapping is returned when an entry violates the shape and
	// combinator rules.
	ErrInvalidMapping = errors.New("invalid mapping")
	// ErrDuplicateKey is returned when two entries of one level share a target key.
	ErrDuplicateKey = errors.New("duplicate target key")
	// ErrUnknownModel is returned when a YAML description names an unregistered model.
	ErrUnknownModel = errors.New("unknown model")
)
