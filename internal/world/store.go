// Package world implements the engine-owned object store on top of the Ark
// entity component system. Simulation code never touches ECS entities
// directly; it only sees opaque core.Handle values resolved through Store.
package world

import (
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// tag is the identity component attached to every object.
type tag struct {
	Kind   core.Kind
	Handle core.Handle
}

// Store maps handles to ECS entities carrying a grid position and a kind.
// It is not safe for concurrent use; the simulation is single-threaded.
type Store struct {
	world    *ecs.World
	objects  *ecs.Map2[core.Position, tag]
	filter   *ecs.Filter2[core.Position, tag]
	entities map[core.Handle]ecs.Entity
	next     core.Handle
}

// New creates an empty object store.
func New() *Store {
	w := ecs.NewWorld()
	return &Store{
		world:    &w,
		objects:  ecs.NewMap2[core.Position, tag](&w),
		filter:   ecs.NewFilter2[core.Position, tag](&w),
		entities: make(map[core.Handle]ecs.Entity),
	}
}

// Create spawns a new object of the given kind at the origin.
func (s *Store) Create(kind core.Kind) core.Handle {
	s.next++
	h := s.next
	e := s.objects.NewEntity(&core.Position{}, &tag{Kind: kind, Handle: h})
	s.entities[h] = e
	return h
}

// Destroy removes the object. Destroying an unknown handle panics.
func (s *Store) Destroy(h core.Handle) {
	e := s.mustEntity(h)
	s.world.RemoveEntity(e)
	delete(s.entities, h)
}

// Position returns the object's grid position.
func (s *Store) Position(h core.Handle) core.Position {
	pos, _ := s.objects.Get(s.mustEntity(h))
	return *pos
}

// SetPosition replaces the object's grid position.
func (s *Store) SetPosition(h core.Handle, p core.Position) {
	pos, _ := s.objects.Get(s.mustEntity(h))
	*pos = p
}

// Kind returns the object's kind.
func (s *Store) Kind(h core.Handle) core.Kind {
	_, t := s.objects.Get(s.mustEntity(h))
	return t.Kind
}

// Alive reports whether h refers to a live object.
func (s *Store) Alive(h core.Handle) bool {
	e, ok := s.entities[h]
	return ok && s.world.Alive(e)
}

// Handles returns every live object of the given kind, ordered by creation.
func (s *Store) Handles(kind core.Kind) []core.Handle {
	var out []core.Handle
	query := s.filter.Query()
	for query.Next() {
		_, t := query.Get()
		if t.Kind == kind {
			out = append(out, t.Handle)
		}
	}
	slices.Sort(out)
	return out
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	return len(s.entities)
}

func (s *Store) mustEntity(h core.Handle) ecs.Entity {
	e, ok := s.entities[h]
	if !ok || !s.world.Alive(e) {
		panic(fmt.Sprintf("world: unknown handle %d", h))
	}
	return e
}
