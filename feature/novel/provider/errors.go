package provider

import (
	"errors"
	"fmt"
)

// Kind classifies provider fetch failures.
type Kind int

const (
	// KindNotFound means the remote work does not exist. Only meaningful on
	// a first fetch; on a refetch the local copy is served instead.
	KindNotFound Kind = iota
	// KindTransient means a network or upstream failure; the caller may
	// retry.
	KindTransient
	// KindPermanent means the provider reports the content gone or invalid.
	KindPermanent
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	}
	return "unknown"
}

// Error is a typed provider failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider error: %s", e.Kind)
	}
	return fmt.Sprintf("provider error (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a failure kind.
func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from err, defaulting to transient for
// untyped errors so callers err on the side of retrying.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}

// IsNotFound reports whether err is a not-found provider failure.
func IsNotFound(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == KindNotFound
}
