package listings

import (
	"errors"
	"fmt"

	"github.com/justestif/go-fyyur/internal/db"
)

// Kind classifies why an operation failed.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConstraint
	KindUnavailable
)

// GenericFailure is what users see for any failed mutation.
const GenericFailure = "Invalid data"

// String returns the operator-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	case KindConstraint:
		return "constraint_violated"
	case KindUnavailable:
		return "store_unavailable"
	default:
		return "internal"
	}
}

// Error is returned by every Service operation that fails.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the user-facing rendering of the failure.
func (e *Error) Message() string {
	if e.Kind == KindNotFound {
		return "Not found"
	}
	return GenericFailure
}

// KindOf reports the Kind of err, or KindInternal when err did not come
// from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// wrap maps store errors onto a Kind.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}

	kind := KindInternal
	switch {
	case errors.Is(err, db.ErrNotFound):
		kind = KindNotFound
	case errors.Is(err, db.ErrMalformedGenres), errors.Is(err, db.ErrInvalidInput):
		kind = KindValidation
	case errors.Is(err, db.ErrConstraint):
		kind = KindConstraint
	case errors.Is(err, db.ErrUnavailable):
		kind = KindUnavailable
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func invalid(op string, err error) error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}
