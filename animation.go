package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ControlPointTween animates one control point of a DeformGrid from its
// current position to a target. Call Update(dt) each frame; the grid is
// re-deformed after every step.
//
// There is no global animation manager; callers drive Update themselves.
type ControlPointTween struct {
	grid   *DeformGrid
	index  int
	tweenX *gween.Tween
	tweenY *gween.Tween
	Done   bool
}

// TweenControlPoint creates a tween moving control point index of grid to
// the position to over duration seconds using the easing function. A nil fn
// defaults to ease.Linear. index must be valid.
func TweenControlPoint(grid *DeformGrid, index int, to Vec2, duration float32, fn ease.TweenFunc) *ControlPointTween {
	from := grid.Current(index)
	if fn == nil {
		fn = ease.Linear
	}
	return &ControlPointTween{
		grid:   grid,
		index:  index,
		tweenX: gween.New(float32(from.X), float32(to.X), duration, fn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, fn),
	}
}

// Update advances the tween by dt seconds, moves the control point and
// recomputes the grid. It reports whether the tween has finished.
func (t *ControlPointTween) Update(dt float32) bool {
	if t.Done {
		return true
	}
	if t.index >= t.grid.ControlPoints() {
		// The point was removed underneath us.
		t.Done = true
		return true
	}
	x, doneX := t.tweenX.Update(dt)
	y, doneY := t.tweenY.Update(dt)
	t.grid.SetCurrent(t.index, Vec2{X: float64(x), Y: float64(y)})
	t.grid.Update()
	t.Done = doneX && doneY
	return t.Done
}

// Grid returns the grid being animated.
func (t *ControlPointTween) Grid() *DeformGrid { return t.grid }

// Index returns the animated control point.
func (t *ControlPointTween) Index() int { return t.index }
