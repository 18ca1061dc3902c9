package pipeline

import "errors"

var (
	ErrNilHeader   = errors.New("header is nil")
	ErrModelOutput = errors.New("pipeline produces model instances, not tuples")
	ErrOutputType  = errors.New("unexpected pipeline output type")
)
