package ecs

import (
	"slices"

	"github.com/phanxgames/quill"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Deform attaches a deform grid to an entity. Set Dirty after moving control
// points by hand; UpdateSystem re-deforms the grid and clears it.
type Deform struct {
	Grid  *quill.DeformGrid
	Dirty bool
}

// Tweens holds the control-point animations running on an entity's grid.
type Tweens struct {
	Active []*quill.ControlPointTween
}

// Hit reports that a pointer landed on an entity's deformed mesh.
type Hit struct {
	Entity donburi.Entity
	// Pos is the pointer position on the deformed mesh.
	Pos quill.Vec2
	// Rest is Pos mapped back onto the undeformed grid.
	Rest quill.Vec2
}

var (
	// DeformComponent is the component type for Deform.
	DeformComponent = donburi.NewComponentType[Deform]()
	// TweenComponent is the component type for Tweens.
	TweenComponent = donburi.NewComponentType[Tweens]()

	// HitEventType is published by Pick. Subscribe to it and call
	// ProcessEvents to receive hits.
	HitEventType = events.NewEventType[Hit]()
)

var (
	deformQuery = donburi.NewQuery(filter.Contains(DeformComponent))
	tweenQuery  = donburi.NewQuery(filter.Contains(DeformComponent, TweenComponent))
)

// NewDeformEntity creates an entity owning grid, with an empty tween list.
func NewDeformEntity(world donburi.World, grid *quill.DeformGrid) donburi.Entity {
	e := world.Create(DeformComponent, TweenComponent)
	entry := world.Entry(e)
	DeformComponent.SetValue(entry, Deform{Grid: grid})
	return e
}

// AddTween starts an animation on the entity. The tween must drive the
// entity's own grid.
func AddTween(world donburi.World, e donburi.Entity, tw *quill.ControlPointTween) {
	entry := world.Entry(e)
	if !entry.HasComponent(TweenComponent) {
		entry.AddComponent(TweenComponent)
	}
	t := TweenComponent.Get(entry)
	t.Active = append(t.Active, tw)
}

// UpdateSystem advances every tween by dt seconds, drops finished ones and
// re-deforms grids marked dirty.
func UpdateSystem(world donburi.World, dt float32) {
	tweenQuery.Each(world, func(entry *donburi.Entry) {
		t := TweenComponent.Get(entry)
		if len(t.Active) == 0 {
			return
		}
		t.Active = slices.DeleteFunc(t.Active, func(tw *quill.ControlPointTween) bool {
			return tw.Update(dt)
		})
	})
	deformQuery.Each(world, func(entry *donburi.Entry) {
		d := DeformComponent.Get(entry)
		if d.Dirty && d.Grid != nil {
			d.Grid.Update()
			d.Dirty = false
		}
	})
}

// Pick publishes a Hit for every entity whose deformed mesh contains pos and
// returns how many were hit. Events are queued until ProcessEvents.
func Pick(world donburi.World, pos quill.Vec2) int {
	n := 0
	deformQuery.Each(world, func(entry *donburi.Entry) {
		d := DeformComponent.Get(entry)
		if d.Grid == nil {
			return
		}
		rest, ok := d.Grid.Hit(pos)
		if !ok {
			return
		}
		HitEventType.Publish(world, Hit{Entity: entry.Entity(), Pos: pos, Rest: rest})
		n++
	})
	return n
}
