package arbor

import (
	"slices"
	"sync/atomic"

	"go.uber.org/zap"
)

const defaultInitialCapacity = 64

// Hooks are the two extension points through which collaborator code reacts
// to an entity's lifecycle. Either field may be nil.
type Hooks struct {
	// ComponentAdded runs on the owner after a component has been attached
	// and registered under kind.
	ComponentAdded func(w *World, owner, component Entity, kind KindID)
	// Destroyed runs once the entity and its whole subtree have been torn
	// down. The entity already reports IsDisposed when it runs.
	Destroyed func(w *World, e Entity)
}

// node holds the state of one entity.
type node struct {
	data        any // *T payload of a component entity
	hooks       Hooks
	children    childTable
	components  componentTable
	id          ID
	parent      ID // back reference, 0 for a root
	kind        KindID
	isComponent bool
	disposed    bool // set once, at the start of the cascade
}

// World is the arena that owns every entity created through it. Ownership
// edges between entities are recorded as IDs; handles given out to callers
// are plain Entity values.
//
// A World is not internally synchronized. Structural operations (creating,
// parenting, adding or removing components, disposing, setting hooks) must
// not run concurrently on the same World; doing so panics with
// "arbor: concurrent structural mutation". Hooks and event handlers run
// outside that guard and may call back into the World.
type World struct {
	nodes   map[ID]*node
	events  *EventBus
	logger  *zap.Logger
	writing atomic.Bool
}

// NewWorld creates an empty World.
//
// Parameters:
//   - opts: Options such as WithLogger, WithEventBus and WithInitialCapacity.
//
// Returns:
//   - The newly created World.
func NewWorld(opts ...Option) *World {
	cfg := config{capacity: defaultInitialCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.events == nil {
		cfg.events = &EventBus{}
	}
	return &World{
		nodes:  make(map[ID]*node, cfg.capacity),
		events: cfg.events,
		logger: cfg.logger,
	}
}

// Events returns the bus the world publishes lifecycle events on.
func (w *World) Events() *EventBus {
	return w.events
}

// Len returns the number of live entities in the world.
func (w *World) Len() int {
	return len(w.nodes)
}

// NewEntity creates a standalone entity: no parent, no children, no
// components, and a fresh identity.
func (w *World) NewEntity() Entity {
	w.lock()
	defer w.unlock()
	return Entity{ID: w.create().id}
}

// NewChild creates an entity and attaches it to parent.
func (w *World) NewChild(parent Entity) (Entity, error) {
	w.lock()
	defer w.unlock()
	p, err := w.live("NewChild", parent)
	if err != nil {
		return Entity{}, err
	}
	n := w.create()
	n.parent = p.id
	p.children.add(n.id)
	e := Entity{ID: n.id}
	w.emit(func() {
		Publish(w.events, ParentChanged{World: w, Entity: e, New: parent})
	})
	return e, nil
}

// SetParent moves e under parent. If e already has a parent it is removed
// from that parent's children first; the move is a single step, so e is
// never listed under both parents or under neither. A zero parent detaches
// e and leaves it a root. Setting the parent e already has does nothing.
//
// If e is a component of its current parent, moving it away also removes
// it from that parent's component table.
//
// Parameters:
//   - e: The Entity to move.
//   - parent: The new parent, or the zero Entity to detach.
//
// Returns:
//   - ErrDisposed or ErrUnknownEntity if either entity is not live or e is
//     inside a subtree that is being disposed, ErrCycle
//     if parent is e or one of its descendants. The tree is unchanged on error.
func (w *World) SetParent(e, parent Entity) error {
	w.lock()
	defer w.unlock()
	n, err := w.live("SetParent", e)
	if err != nil {
		return err
	}
	// an entity whose ancestor is being disposed belongs to that cascade
	for a := w.nodes[n.parent]; a != nil; a = w.nodes[a.parent] {
		if a.disposed {
			return opError("SetParent", e, ErrDisposed)
		}
	}
	var p *node
	if !parent.IsZero() {
		if p, err = w.live("SetParent", parent); err != nil {
			return err
		}
		for a := p; a != nil; a = w.nodes[a.parent] {
			if a == n {
				return opError("SetParent", e, ErrCycle)
			}
		}
	}
	old := Entity{ID: n.parent}
	if old == parent {
		return nil
	}
	removed := w.detach(n)
	if p != nil {
		n.parent = p.id
		p.children.add(n.id)
	}
	w.emit(func() {
		if removed != nil {
			Publish(w.events, *removed)
		}
		Publish(w.events, ParentChanged{World: w, Entity: e, Old: old, New: parent})
	})
	return nil
}

// Parent returns the entity that owns e. It reports false for roots and for
// entities that are not live.
func (w *World) Parent(e Entity) (Entity, bool) {
	n, ok := w.lookup(e)
	if !ok || n.parent == 0 {
		return Entity{}, false
	}
	return Entity{ID: n.parent}, true
}

// Root returns the top-most ancestor of e, which is e itself for a root. It
// returns the zero Entity if e is not live.
func (w *World) Root(e Entity) Entity {
	n, ok := w.lookup(e)
	if !ok {
		return Entity{}
	}
	for n.parent != 0 {
		n = w.nodes[n.parent]
	}
	return Entity{ID: n.id}
}

// GetChild returns the child of e with the given id.
func (w *World) GetChild(e Entity, id ID) (Entity, bool) {
	n, ok := w.lookup(e)
	if !ok || !n.children.has(id) {
		return Entity{}, false
	}
	return Entity{ID: id}, true
}

// Children returns a copy of e's children, components included, ordered by
// ID. Later changes to the tree do not affect the returned slice.
func (w *World) Children(e Entity) []Entity {
	n, ok := w.lookup(e)
	if !ok {
		return nil
	}
	return toEntities(n.children.snapshot())
}

// ChildCount returns the number of children of e, components included.
func (w *World) ChildCount(e Entity) int {
	n, ok := w.lookup(e)
	if !ok {
		return 0
	}
	return len(n.children)
}

// Walk visits e and its descendants depth-first, parents before children
// and siblings in ID order. Returning false from fn stops the walk. The set
// of children is read just before they are visited, so fn may modify the
// tree.
func (w *World) Walk(e Entity, fn func(Entity) bool) {
	w.walk(e, fn)
}

func (w *World) walk(e Entity, fn func(Entity) bool) bool {
	if _, ok := w.lookup(e); !ok {
		return true
	}
	if !fn(e) {
		return false
	}
	n, ok := w.lookup(e)
	if !ok {
		return true
	}
	for _, c := range toEntities(n.children.snapshot()) {
		if !w.walk(c, fn) {
			return false
		}
	}
	return true
}

// SetHooks replaces the lifecycle hooks of e.
func (w *World) SetHooks(e Entity, h Hooks) error {
	w.lock()
	defer w.unlock()
	n, err := w.live("SetHooks", e)
	if err != nil {
		return err
	}
	n.hooks = h
	return nil
}

// IsAlive reports whether e refers to a live entity of this world.
func (w *World) IsAlive(e Entity) bool {
	_, ok := w.lookup(e)
	return ok
}

// IsDisposed reports whether e has been disposed. Handles are only
// meaningful in the world that created them: an issued ID that is not live
// here reports true.
func (w *World) IsDisposed(e Entity) bool {
	if n, ok := w.nodes[e.ID]; ok {
		return n.disposed
	}
	return issued(e.ID)
}

// create allocates a standalone node.
func (w *World) create() *node {
	n := &node{id: NextID()}
	w.nodes[n.id] = n
	return n
}

// lookup returns the node of e if it is live.
func (w *World) lookup(e Entity) (*node, bool) {
	n, ok := w.nodes[e.ID]
	if !ok || n.disposed {
		return nil, false
	}
	return n, true
}

// live is lookup for mutators: it explains why e is not usable.
func (w *World) live(op string, e Entity) (*node, error) {
	if n, ok := w.lookup(e); ok {
		return n, nil
	}
	if !issued(e.ID) {
		return nil, opError(op, e, ErrUnknownEntity)
	}
	w.logger.Debug("use after dispose", zap.String("op", op), zap.Stringer("entity", e))
	return nil, opError(op, e, ErrDisposed)
}

// detach unlinks n from its parent, unregistering it from the parent's
// component table if it is registered there.
func (w *World) detach(n *node) *ComponentRemoved {
	if n.parent == 0 {
		return nil
	}
	var removed *ComponentRemoved
	if p, ok := w.nodes[n.parent]; ok {
		p.children.remove(n.id)
		if n.isComponent {
			if id, ok := p.components.get(n.kind); ok && id == n.id {
				p.components.remove(n.kind)
				removed = &ComponentRemoved{
					World:     w,
					Owner:     Entity{ID: p.id},
					Component: Entity{ID: n.id},
					Kind:      n.kind,
				}
			}
		}
	}
	n.parent = 0
	return removed
}

// lock claims the world for a structural mutation.
func (w *World) lock() {
	if !w.writing.CompareAndSwap(false, true) {
		panic("arbor: concurrent structural mutation")
	}
}

func (w *World) unlock() {
	w.writing.Store(false)
}

// emit runs fn with the mutation guard released so that hooks and event
// handlers can call back into the world.
func (w *World) emit(fn func()) {
	w.unlock()
	defer w.lock()
	fn()
}

func toEntities(ids []ID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = Entity{ID: id}
	}
	return out
}
