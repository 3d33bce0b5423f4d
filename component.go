package arbor

import "go.uber.org/zap"

// Component is a component entity together with its data.
type Component[T any] struct {
	// Entity is the component's own node. It is a child of its owner and
	// can itself own children and components.
	Entity Entity
	// Data points at the component's payload. It stays valid after the
	// component is disposed but is no longer reachable through the world.
	Data *T
}

// AddComponent creates a component of the given kind, attaches it to owner
// and registers it under kind. The component starts with a zero T. After
// registration a ParentChanged event is published, the owner's
// ComponentAdded hook runs and a ComponentAdded event is published.
//
// An owner holds at most one component per kind. If owner already has one,
// AddComponent logs a warning and returns ErrDuplicateKind without creating
// anything; the existing component is left in place.
//
// Parameters:
//   - w: The World that owns owner.
//   - owner: The entity to add the component to.
//   - kind: The kind of component to create.
//
// Returns:
//   - The new component, or the zero Component and an error.
func AddComponent[T any](w *World, owner Entity, kind Kind[T]) (Component[T], error) {
	const op = "AddComponent"
	if !kind.Valid() {
		return Component[T]{}, opError(op, owner, ErrInvalidKind)
	}
	w.lock()
	defer w.unlock()
	o, err := w.live(op, owner)
	if err != nil {
		return Component[T]{}, err
	}
	if o.components.has(kind.id) {
		w.logger.Warn("duplicate component kind",
			zap.Stringer("owner", owner),
			zap.String("kind", kind.Name()))
		return Component[T]{}, &Error{Op: op, Entity: owner, Kind: kind.Name(), Err: ErrDuplicateKind}
	}
	data := new(T)
	c := w.create()
	c.isComponent = true
	c.kind = kind.id
	c.data = data
	c.parent = o.id
	o.children.add(c.id)
	o.components.add(kind.id, c.id)

	comp := Component[T]{Entity: Entity{ID: c.id}, Data: data}
	hook := o.hooks.ComponentAdded
	w.emit(func() {
		Publish(w.events, ParentChanged{World: w, Entity: comp.Entity, New: owner})
		if hook != nil {
			hook(w, owner, comp.Entity, kind.id)
		}
		Publish(w.events, ComponentAdded{World: w, Owner: owner, Component: comp.Entity, Kind: kind.id})
	})
	return comp, nil
}

// GetComponent returns owner's component of the given kind. It never
// creates one; it reports false if owner has none or is not live.
func GetComponent[T any](w *World, owner Entity, kind Kind[T]) (Component[T], bool) {
	if !kind.Valid() {
		return Component[T]{}, false
	}
	o, ok := w.lookup(owner)
	if !ok {
		return Component[T]{}, false
	}
	id, ok := o.components.get(kind.id)
	if !ok {
		return Component[T]{}, false
	}
	return Component[T]{Entity: Entity{ID: id}, Data: w.nodes[id].data.(*T)}, true
}

// HasComponent reports whether owner has a component of the given kind.
func HasComponent[T any](w *World, owner Entity, kind Kind[T]) bool {
	return kind.Valid() && w.HasKind(owner, kind.id)
}

// RemoveComponent disposes owner's component of the given kind, together
// with everything the component owns. It does nothing if owner has no such
// component. Other components of owner are not affected.
func RemoveComponent[T any](w *World, owner Entity, kind Kind[T]) error {
	const op = "RemoveComponent"
	if !kind.Valid() {
		return opError(op, owner, ErrInvalidKind)
	}
	w.lock()
	defer w.unlock()
	o, err := w.live(op, owner)
	if err != nil {
		return err
	}
	id, ok := o.components.get(kind.id)
	if !ok {
		return nil
	}
	w.dispose(w.nodes[id])
	return nil
}

// Data returns the payload of the component entity e, if e was created as a
// component of the given kind.
func Data[T any](w *World, e Entity, kind Kind[T]) (*T, bool) {
	n, ok := w.lookup(e)
	if !ok || !kind.Valid() || !n.isComponent || n.kind != kind.id {
		return nil, false
	}
	return n.data.(*T), true
}

// HasKind reports whether owner has a component registered under kind.
func (w *World) HasKind(owner Entity, kind KindID) bool {
	o, ok := w.lookup(owner)
	return ok && o.components.has(kind)
}

// Components returns a copy of owner's components ordered by kind.
func (w *World) Components(owner Entity) []Entity {
	o, ok := w.lookup(owner)
	if !ok {
		return nil
	}
	ids := o.components.snapshot()
	if len(ids) == 0 {
		return nil
	}
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = Entity{ID: id}
	}
	return out
}

// KindOf returns the kind e was created with, if e is a component entity.
// The kind stays with the entity even after it is moved to another parent.
func (w *World) KindOf(e Entity) (KindID, bool) {
	n, ok := w.lookup(e)
	if !ok || !n.isComponent {
		return 0, false
	}
	return n.kind, true
}
