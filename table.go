package arbor

// componentTable maps a component kind to the single entity registered
// under it. The presence mask answers Has in constant time without touching
// the map, and the map is only allocated once the first component arrives.
type componentTable struct {
	ids  map[KindID]ID
	mask bitmask256
}

// add registers id under k. It reports false, leaving the table untouched,
// if k is already taken.
func (t *componentTable) add(k KindID, id ID) bool {
	if t.mask.has(k) {
		return false
	}
	if t.ids == nil {
		t.ids = make(map[KindID]ID, 4)
	}
	t.ids[k] = id
	t.mask.set(k)
	return true
}

// has checks if a component of kind k is registered.
func (t *componentTable) has(k KindID) bool {
	return t.mask.has(k)
}

// get returns the entity registered under k, if any.
func (t *componentTable) get(k KindID) (ID, bool) {
	if !t.mask.has(k) {
		return 0, false
	}
	return t.ids[k], true
}

// remove unregisters k and returns the entity that was registered under it.
func (t *componentTable) remove(k KindID) (ID, bool) {
	if !t.mask.has(k) {
		return 0, false
	}
	id := t.ids[k]
	delete(t.ids, k)
	t.mask.unset(k)
	return id, true
}

// len returns the number of registered components.
func (t *componentTable) len() int {
	return t.mask.count()
}

// snapshot returns the registered entities ordered by kind.
func (t *componentTable) snapshot() []ID {
	if t.mask.isEmpty() {
		return nil
	}
	var buf [8]KindID
	kinds := t.mask.appendKinds(buf[:0])
	out := make([]ID, len(kinds))
	for i, k := range kinds {
		out[i] = t.ids[k]
	}
	return out
}

// clear removes all registrations.
func (t *componentTable) clear() {
	clear(t.ids)
	t.mask = bitmask256{}
}

// childTable is the set of entities directly owned by a parent, keyed by ID.
// IDs are globally unique, so keys can never collide.
type childTable map[ID]struct{}

func (t *childTable) add(id ID) {
	if *t == nil {
		*t = make(childTable, 4)
	}
	(*t)[id] = struct{}{}
}

func (t childTable) has(id ID) bool {
	_, ok := t[id]
	return ok
}

func (t childTable) remove(id ID) {
	delete(t, id)
}

// snapshot copies the child IDs into a fresh slice.
func (t childTable) snapshot() []ID {
	if len(t) == 0 {
		return nil
	}
	out := make([]ID, 0, len(t))
	for id := range t {
		out = append(out, id)
	}
	return out
}
