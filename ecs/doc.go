// Package ecs stores quill deform grids and their tweens as [Donburi]
// components.
//
// Entities created with [NewDeformEntity] carry a [Deform] component and an
// optional [Tweens] component. Run [UpdateSystem] once per frame to advance
// tweens and re-deform grids, and [Pick] to turn a pointer position into
// [HitEventType] events:
//
//	world := donburi.NewWorld()
//	e := ecs.NewDeformEntity(world, quill.NewDeformGrid(rect, 16, 16))
//	ecs.HitEventType.Subscribe(world, onHit)
//
//	// each frame
//	ecs.UpdateSystem(world, 1.0/60)
//	ecs.Pick(world, cursor)
//	ecs.HitEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
