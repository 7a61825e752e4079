package params

import (
	"errors"
	"fmt"
)

// Domain errors for parameter access.
var (
	// ErrUnknownParameter indicates a name that is absent from the store.
	ErrUnknownParameter = errors.New("params: unknown parameter")

	// ErrInternal marks programmer errors such as stale or foreign ids.
	ErrInternal = errors.New("params: internal error")

	// ErrInvalidID indicates an id outside the range of the store.
	ErrInvalidID = fmt.Errorf("%w: invalid parameter id", ErrInternal)

	// ErrDuplicateName indicates a seed table that names a parameter twice.
	ErrDuplicateName = errors.New("params: duplicate parameter name")
)

// UnknownParameterError is returned by name based lookups and updates.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter: '%s'", e.Name)
}

func (e *UnknownParameterError) Unwrap() error {
	return ErrUnknownParameter
}

// InvalidIDError is returned by ByID for ids outside [0, Len).
type InvalidIDError struct {
	ID  ID
	Len int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("params: invalid parameter id %d (valid range [0, %d))", e.ID, e.Len)
}

func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidID
}
