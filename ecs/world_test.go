package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/antroit/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
		})
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	one, two, name := 1, 2, "a"
	if err := Add(w, e1, ints, &one); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e2, ints, &two); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e1, strs, &name); err != nil {
		t.Fatalf("Add: %v", err)
	}

	v, ok := Get(w, e1, ints)
	if !ok || *v != 1 {
		t.Fatalf("expected 1, got %v ok=%v", v, ok)
	}
	*v = 10
	if v2, _ := Get(w, e1, ints); *v2 != 10 {
		t.Fatalf("Get should return a mutable pointer")
	}

	if got := w.Query(ints.ID(), strs.ID()); len(got) != 1 || got[0] != e1 {
		t.Fatalf("expected only e1 to match both kinds, got %v", got)
	}
	if !Remove(w, e1, strs) || Has(w, e1, strs) {
		t.Fatalf("Remove should detach the component")
	}
	if err := Add[int](w, e1, ints, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}

	DestroyEntity(w, e2)
	if w.Count(ints.ID()) != 1 {
		t.Fatalf("destroying an entity must drop its components")
	}
	if err := Add(w, e2, ints, &two); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestQueryKeepsCreationOrderAcrossIDReuse(t *testing.T) {
	w := NewWorld()
	tags := component.NewComponent[int]()

	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		n := i
		_ = Add(w, e, tags, &n)
		ents = append(ents, e)
	}
	// Free ids 1 and 2, then create two more: ids are reused but the new
	// entities must still come last.
	DestroyEntity(w, ents[0])
	DestroyEntity(w, ents[1])
	for i := 4; i < 6; i++ {
		e := CreateEntity(w)
		n := i
		_ = Add(w, e, tags, &n)
	}

	var seen []int
	ForEach(w, tags, func(e Entity, v *int) {
		seen = append(seen, *v)
	})
	want := []int{2, 3, 4, 5}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
	if q := w.Query(tags.ID()); len(q) == 0 || q[0] != ents[2] {
		t.Fatalf("expected the oldest live entity first, got %v", q)
	}
}

type countingSystem struct {
	calls int
	dt    float64
}

func (s *countingSystem) Update(w *World, dt float64) {
	s.calls++
	s.dt = dt
}

func TestSchedulerAndEvents(t *testing.T) {
	w := NewWorld()
	a, b := &countingSystem{}, &countingSystem{}
	s := NewScheduler(a)
	s.Add(b)
	s.Add(nil)
	s.Update(w, 0.5)
	if a.calls != 1 || b.calls != 1 || b.dt != 0.5 {
		t.Fatalf("expected each system to run once with dt, got %+v %+v", a, b)
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be ignored")
	}

	w.Events().Push(Event{Kind: EventShapeSpawned})
	if evs := w.Events().Drain(); len(evs) != 1 || evs[0].Kind != EventShapeSpawned {
		t.Fatalf("unexpected events %v", evs)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("drain must empty the queue")
	}
}
