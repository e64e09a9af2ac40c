package ecs

import (
	"sort"

	"github.com/milk9111/jungle/ecs/component"
)

// World owns entities, their components, and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, store := range w.stores {
		store.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in ascending id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) store(key component.ComponentKey, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[key.ID()]
	if !ok && create {
		s = &SparseSet{}
		w.stores[key.ID()] = s
	}
	return s
}

// AddComponent inserts or replaces the component of kind key on e.
func (w *World) AddComponent(e Entity, key component.ComponentKey, value any) error {
	if key == nil || key.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(key, true).Set(int(e.id()), value)
	return nil
}

// RemoveComponent deletes the component of kind key from e.
func (w *World) RemoveComponent(e Entity, key component.ComponentKey) bool {
	if !w.IsAlive(e) || key == nil {
		return false
	}
	return w.store(key, false).Remove(int(e.id()))
}

// HasComponent reports whether e carries a component of kind key.
func (w *World) HasComponent(e Entity, key component.ComponentKey) bool {
	if !w.IsAlive(e) || key == nil {
		return false
	}
	return w.store(key, false).Has(int(e.id()))
}

// GetComponent returns the raw component of kind key on e.
func (w *World) GetComponent(e Entity, key component.ComponentKey) (any, bool) {
	if !w.HasComponent(e, key) {
		return nil, false
	}
	return w.store(key, false).Get(int(e.id())), true
}

// Query returns the live entities that carry every given kind, in ascending
// id order.
func (w *World) Query(keys ...component.ComponentKey) []Entity {
	if w == nil || len(keys) == 0 {
		return nil
	}

	sets := make([]*SparseSet, 0, len(keys))
	for _, key := range keys {
		if key == nil {
			return nil
		}
		s := w.store(key, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate the smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	ids := make([]int, 0, sets[smallest].Len())
	for _, id := range sets[smallest].Entities() {
		match := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.entityFor(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id live entity carrying key.
func (w *World) First(key component.ComponentKey) (Entity, bool) {
	if w == nil || key == nil {
		return 0, false
	}
	best := 0
	for _, id := range w.store(key, false).Entities() {
		if best == 0 || id < best {
			best = id
		}
	}
	return w.entities.entityFor(best)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
