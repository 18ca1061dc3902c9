package step

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSourceKey is returned when a tuple lacks a key a step reads.
	ErrMissingSourceKey = errors.New("missing source key")
	// ErrShapeMismatch is returned when a value is not the nested tuple or
	// sequence the header declares.
	ErrShapeMismatch = errors.New("value does not match declared shape")
	// ErrInstantiation is returned when a model rejects the final tuple.
	ErrInstantiation = errors.New("model instantiation failed")
)

// Error describes a runtime failure of a single step. Err is either one of
// the sentinels above or the error of a nested pipeline, so errors.Is sees
// through any depth of nesting.
type Error struct {
	Kind  KindEnum
	Key   string
	Err   error
	Cause error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(strings.ToLower(e.Kind.String()))

	if e.Key != "" {
		fmt.Fprintf(&b, " %q", e.Key)
	}

	fmt.Fprintf(&b, ": %v", e.Err)

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}

func missing(kind KindEnum, key string) error {
	return &Error{Kind: kind, Key: key, Err: ErrMissingSourceKey}
}

func mismatch(kind KindEnum, key string, v any) error {
	return &Error{Kind: kind, Key: key, Err: ErrShapeMismatch, Cause: fmt.Errorf("got %T", v)}
}

func nested(kind KindEnum, key string, err error) error {
	return &Error{Kind: kind, Key: key, Err: err}
}
