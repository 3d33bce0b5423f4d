package arbor

import (
	"fmt"
	"strconv"
	"sync"
)

// MaxKinds is the maximum number of component kinds that can be registered
// in a process. It matches the width of the per-entity presence mask.
const MaxKinds = 256

// KindID is the numeric tag of a registered component kind.
type KindID uint8

// kindRegistry hands out KindIDs and remembers their names for logs and
// errors. Registration normally happens once, from package-level vars.
var kindRegistry struct {
	mu    sync.RWMutex
	names []string
}

// Kind identifies a category of component together with the type of the
// data each component of that kind carries. An entity owns at most one
// component per Kind.
//
// Kinds are created with RegisterKind, usually as package-level vars:
//
//	var Health = arbor.RegisterKind[HealthData]("health")
//
// Two calls to RegisterKind always produce two distinct kinds, even for the
// same T. The zero Kind is invalid and is rejected by every operation.
type Kind[T any] struct {
	_     [0]*T // keeps Kind[A] and Kind[B] from converting into each other
	id    KindID
	valid bool
}

// RegisterKind registers a new component kind named name whose components
// carry a T. It panics once MaxKinds kinds have been registered.
func RegisterKind[T any](name string) Kind[T] {
	kindRegistry.mu.Lock()
	defer kindRegistry.mu.Unlock()
	n := len(kindRegistry.names)
	if n >= MaxKinds {
		panic(fmt.Sprintf("arbor: cannot register kind %q: maximum number of kinds (%d) reached", name, MaxKinds))
	}
	kindRegistry.names = append(kindRegistry.names, name)
	return Kind[T]{id: KindID(n), valid: true}
}

// ID returns the kind's numeric tag.
func (k Kind[T]) ID() KindID { return k.id }

// Valid reports whether k was produced by RegisterKind.
func (k Kind[T]) Valid() bool { return k.valid }

// Name returns the name the kind was registered with.
func (k Kind[T]) Name() string {
	if !k.valid {
		return "<invalid>"
	}
	return k.id.String()
}

// String returns the registered name of the kind, or its number if no kind
// with this ID has been registered.
func (id KindID) String() string {
	kindRegistry.mu.RLock()
	defer kindRegistry.mu.RUnlock()
	if int(id) < len(kindRegistry.names) {
		return kindRegistry.names[id]
	}
	return "kind#" + strconv.Itoa(int(id))
}
