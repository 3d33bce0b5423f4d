// Package arbor implements hierarchical ownership of entities and their
// components.
//
// Entities live in a World and form a tree. Every entity has at most one
// parent, any number of children, and at most one component per registered
// Kind. A component is itself an entity, owned by the entity it was added
// to, so components can carry their own children and components.
//
// Disposing an entity destroys everything it owns, depth-first: components
// first, then children, then the entity detaches from its parent and its
// Destroyed hook runs. Disposal is idempotent and final.
//
// Identities are process-wide, strictly increasing and never reused; see
// NextID.
//
// Collaborator code observes the tree through two per-entity Hooks and
// through the typed events a World publishes on its EventBus.
package arbor
