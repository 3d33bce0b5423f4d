package arbor

import "go.uber.org/zap"

// Dispose destroys e and everything it owns. Components are torn down
// first, then children, each recursively; then e is detached from its
// parent and removed from the world, and finally its Destroyed hook runs
// and an EntityDestroyed event is published. The order among components,
// and among children, is unspecified.
//
// Dispose is idempotent: disposing an entity that is already disposed, or
// the zero Entity, does nothing.
func (w *World) Dispose(e Entity) {
	w.lock()
	defer w.unlock()
	n, ok := w.lookup(e)
	if !ok {
		return
	}
	count := w.dispose(n)
	w.logger.Debug("entity disposed", zap.Stringer("entity", e), zap.Int("cascade", count))
}

// DisposeAll disposes every root present when it is called. Unless a hook
// creates new entities while it runs, the world is empty afterwards.
func (w *World) DisposeAll() {
	w.lock()
	defer w.unlock()
	var roots []ID
	for id, n := range w.nodes {
		if n.parent == 0 {
			roots = append(roots, id)
		}
	}
	count := 0
	for _, id := range roots {
		if n, ok := w.lookup(Entity{ID: id}); ok {
			count += w.dispose(n)
		}
	}
	w.logger.Debug("world disposed", zap.Int("roots", len(roots)), zap.Int("cascade", count))
}

// dispose tears down n's subtree and returns how many entities it disposed.
// n is marked first, so nothing can be attached to it while hooks run.
func (w *World) dispose(n *node) int {
	if n.disposed {
		return 0
	}
	n.disposed = true
	count := 1
	for _, id := range n.components.snapshot() {
		if c, ok := w.nodes[id]; ok && c.parent == n.id {
			count += w.dispose(c)
		}
	}
	n.components.clear()
	for _, id := range n.children.snapshot() {
		if c, ok := w.nodes[id]; ok && c.parent == n.id {
			count += w.dispose(c)
		}
	}
	clear(n.children)
	removed := w.detach(n)
	delete(w.nodes, n.id)

	e := Entity{ID: n.id}
	hook := n.hooks.Destroyed
	n.hooks = Hooks{}
	w.emit(func() {
		if removed != nil {
			Publish(w.events, *removed)
		}
		if hook != nil {
			hook(w, e)
		}
		Publish(w.events, EntityDestroyed{World: w, Entity: e})
	})
	return count
}
