package arbor

import (
	"errors"
	"strings"
)

// Sentinel errors returned (wrapped in *Error) by structural operations.
// Use errors.Is to test for them.
var (
	// ErrDuplicateKind is returned by AddComponent when the owner already has
	// a component of the requested kind.
	ErrDuplicateKind = errors.New("duplicate component kind")

	// ErrDisposed is returned when a structural operation targets an entity
	// that has already been disposed.
	ErrDisposed = errors.New("use after dispose")

	// ErrUnknownEntity is returned for handles that were never issued, such
	// as the zero Entity.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrCycle is returned by SetParent when the new parent is the entity
	// itself or one of its descendants.
	ErrCycle = errors.New("parent would create a cycle")

	// ErrInvalidKind is returned when a zero Kind is passed to a component
	// operation.
	ErrInvalidKind = errors.New("invalid component kind")
)

// Error describes a failed structural operation.
type Error struct {
	// Op is the operation that failed, e.g. "SetParent".
	Op string
	// Entity is the entity the operation was applied to.
	Entity Entity
	// Kind is the name of the component kind involved, if any.
	Kind string
	// Err is the underlying sentinel.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("arbor: ")
	b.WriteString(e.Op)
	if !e.Entity.IsZero() {
		b.WriteString(" ")
		b.WriteString(e.Entity.String())
	}
	if e.Kind != "" {
		b.WriteString(" [")
		b.WriteString(e.Kind)
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func opError(op string, e Entity, err error) *Error {
	return &Error{Op: op, Entity: e, Err: err}
}
