package arbor

import (
	"strconv"
	"sync/atomic"
)

// ID is the process-wide identity of an entity. IDs are issued in strictly
// increasing order starting at 1 and are never reused, so two entities
// created anywhere in the process never share an ID. The zero ID is never
// issued and stands for "no entity".
type ID uint64

// lastID holds the most recently issued identity. It starts at zero when the
// process starts, so the first call to NextID returns 1.
var lastID atomic.Uint64

// NextID issues a fresh identity. It is safe for concurrent use.
//
// The identity space is 64 bits wide. Exhausting it is a fatal condition:
// NextID panics rather than wrapping around and handing out an ID that
// is already in use.
func NextID() ID {
	id := lastID.Add(1)
	if id == 0 {
		panic("arbor: identity space exhausted")
	}
	return ID(id)
}

// issued reports whether id has been handed out by NextID.
func issued(id ID) bool {
	return id != 0 && uint64(id) <= lastID.Load()
}

// String formats the ID as a decimal number.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Entity is a handle to a node in a World. It is a plain value: copying it
// does not copy the node, and holding it does not keep the node alive. Once
// the node is disposed every handle to it reports IsDisposed.
type Entity struct {
	// ID is the identity of the node this handle refers to.
	ID ID
}

// IsZero reports whether e is the zero handle, which refers to no entity.
func (e Entity) IsZero() bool { return e.ID == 0 }

func (e Entity) String() string {
	return "entity#" + e.ID.String()
}
