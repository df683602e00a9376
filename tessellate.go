package quill

import (
	"image"
	"iter"
	"math"

	"golang.org/x/image/math/f32"
)

// RectTriList returns the two triangles covering rect:
// (x,y)(x2,y)(x,y2) and (x2,y)(x2,y2)(x,y2).
func RectTriList(m Matrix, rect Rect) [6]f32.Vec2 {
	x, y := rect.X, rect.Y
	x2, y2 := x+rect.Width, y+rect.Height
	return [6]f32.Vec2{
		txy(m, x, y),
		txy(m, x2, y),
		txy(m, x, y2),
		txy(m, x2, y),
		txy(m, x2, y2),
		txy(m, x, y2),
	}
}

// RectTriListUV returns texture coordinates matching RectTriList for the
// source rectangle src inside a texture of the given pixel size.
func RectTriListUV(size image.Point, src Rect) [6]f32.Vec2 {
	w, h := float32(size.X), float32(size.Y)
	x1 := float32(src.X) / w
	y1 := float32(src.Y) / h
	x2 := float32(src.X+src.Width) / w
	y2 := float32(src.Y+src.Height) / h
	return [6]f32.Vec2{
		{x1, y1}, {x2, y1}, {x1, y2},
		{x2, y1}, {x2, y2}, {x1, y2},
	}
}

// RectBorderTriList returns eight triangles forming a frame of half-width
// border centred on the edges of rect.
func RectBorderTriList(m Matrix, rect Rect, border float64) [24]f32.Vec2 {
	x, y, w, h := rect.X, rect.Y, rect.Width, rect.Height
	w1, h1 := w+border, h+border
	w2, h2 := w-border, h-border
	x11, y11 := x-border, y-border
	x21, y21 := x+border, y+border
	x12, y12 := x+w1, y+h1
	x22, y22 := x+w2, y+h2
	return [24]f32.Vec2{
		txy(m, x11, y11), txy(m, x12, y11), txy(m, x21, y21),
		txy(m, x21, y21), txy(m, x12, y11), txy(m, x22, y21),

		txy(m, x22, y21), txy(m, x12, y11), txy(m, x12, y12),
		txy(m, x22, y21), txy(m, x12, y12), txy(m, x22, y22),

		txy(m, x12, y12), txy(m, x22, y22), txy(m, x11, y12),
		txy(m, x22, y22), txy(m, x11, y12), txy(m, x21, y22),

		txy(m, x11, y12), txy(m, x21, y21), txy(m, x21, y22),
		txy(m, x11, y12), txy(m, x11, y11), txy(m, x21, y21),
	}
}

// EllipseTriList fan-triangulates the ellipse inscribed in rect using
// resolution equally spaced angles.
func EllipseTriList(resolution int, m Matrix, rect Rect) iter.Seq[[]f32.Vec2] {
	cw, ch := 0.5*rect.Width, 0.5*rect.Height
	cx, cy := rect.X+cw, rect.Y+ch
	n := resolution
	return StreamPolygon(m, func(yield func(Vec2) bool) {
		for i := 0; i < n; i++ {
			angle := float64(i) / float64(n) * 2 * math.Pi
			sin, cos := math.Sincos(angle)
			if !yield(Vec2{cx + cos*cw, cy + sin*ch}) {
				return
			}
		}
	})
}

// EllipseBorderTriList emits resolution quads along the outline of the
// ellipse inscribed in rect, offset by border on both sides.
func EllipseBorderTriList(resolution int, m Matrix, rect Rect, border float64) iter.Seq[[]f32.Vec2] {
	cw, ch := 0.5*rect.Width, 0.5*rect.Height
	cw1, ch1 := cw+border, ch+border
	cw2, ch2 := cw-border, ch-border
	cx, cy := rect.X+cw, rect.Y+ch
	n := resolution
	return StreamQuads(m, func(yield func(Vec2, Vec2) bool) {
		for i := 0; i <= n; i++ {
			angle := float64(i) / float64(n) * 2 * math.Pi
			sin, cos := math.Sincos(angle)
			if !yield(Vec2{cx + cos*cw1, cy + sin*ch1}, Vec2{cx + cos*cw2, cy + sin*ch2}) {
				return
			}
		}
	})
}

// ArcTriList emits the section of an ellipse border from start to end
// radians. The quad count is ceil(span / (2π/resolution)), so resolution is a
// lower bound on smoothness. A span of exactly zero draws nothing; a span that
// wraps onto itself or exceeds a full turn draws the full circle.
func ArcTriList(start, end float64, resolution int, m Matrix, rect Rect, border float64) iter.Seq[[]f32.Vec2] {
	n, seg := arcSegments(start, end, resolution)
	if n == 0 {
		return emptyStream
	}
	cw, ch := 0.5*rect.Width, 0.5*rect.Height
	cw1, ch1 := cw+border, ch+border
	cw2, ch2 := cw-border, ch-border
	cx, cy := rect.X+cw, rect.Y+ch
	return StreamQuads(m, func(yield func(Vec2, Vec2) bool) {
		for i := 0; i <= n; i++ {
			angle := start + float64(i)*seg
			sin, cos := math.Sincos(angle)
			if !yield(Vec2{cx + cos*cw1, cy + sin*ch1}, Vec2{cx + cos*cw2, cy + sin*ch2}) {
				return
			}
		}
	})
}

// arcSegments returns the quad count and per-quad angle for an arc.
func arcSegments(start, end float64, resolution int) (int, float64) {
	raw := end - start
	if raw == 0 || resolution <= 0 {
		return 0, 0
	}
	const twoPi = 2 * math.Pi
	full := twoPi / float64(resolution)
	if math.Abs(raw) >= twoPi {
		return resolution, full
	}
	// The sweep always runs in the positive direction from start.
	delta := math.Mod(raw, twoPi)
	if delta < 0 {
		delta += twoPi
	}
	if delta >= twoPi {
		return resolution, full
	}
	n := int(math.Ceil(delta / full))
	return n, delta / float64(n)
}

// roundRectPoint returns the j-th outline point of a rounded rectangle with
// resolution steps per corner at distance r from the corner centre. Corners
// run bottom-right, bottom-left, top-left, top-right.
func roundRectPoint(j, resolution int, rect Rect, radius, r float64) Vec2 {
	x, y, w, h := rect.X, rect.Y, rect.Width, rect.Height
	steps := float64(resolution - 1)
	var cx, cy, angle float64
	switch {
	case j >= resolution*3:
		angle = float64(j-resolution*3)/steps*math.Pi/2 + 3*math.Pi/2
		cx, cy = x+w-radius, y+radius
	case j >= resolution*2:
		angle = float64(j-resolution*2)/steps*math.Pi/2 + math.Pi
		cx, cy = x+radius, y+radius
	case j >= resolution:
		angle = float64(j-resolution)/steps*math.Pi/2 + math.Pi/2
		cx, cy = x+radius, y+h-radius
	default:
		angle = float64(j) / steps * math.Pi / 2
		cx, cy = x+w-radius, y+h-radius
	}
	sin, cos := math.Sincos(angle)
	return Vec2{cx + cos*r, cy + sin*r}
}

// RoundRectTriList fan-triangulates a rectangle whose corners are quarter
// circles of the given radius, each made of resolutionCorner points.
func RoundRectTriList(resolutionCorner int, m Matrix, rect Rect, radius float64) iter.Seq[[]f32.Vec2] {
	n := resolutionCorner * 4
	return StreamPolygon(m, func(yield func(Vec2) bool) {
		for j := 0; j < n; j++ {
			if !yield(roundRectPoint(j, resolutionCorner, rect, radius, radius)) {
				return
			}
		}
	})
}

// RoundRectBorderTriList emits a closed quad ribbon around a rounded
// rectangle, border wide on each side of the outline.
func RoundRectBorderTriList(resolutionCorner int, m Matrix, rect Rect, radius, border float64) iter.Seq[[]f32.Vec2] {
	n := resolutionCorner * 4
	if n <= 0 {
		return emptyStream
	}
	return StreamQuads(m, func(yield func(Vec2, Vec2) bool) {
		for j := 0; j <= n; j++ {
			k := j % n
			outer := roundRectPoint(k, resolutionCorner, rect, radius, radius+border)
			inner := roundRectPoint(k, resolutionCorner, rect, radius, radius-border)
			if !yield(outer, inner) {
				return
			}
		}
	})
}

// RoundBorderLineTriList triangulates a line from a to b, radius wide on each
// side, capped with half circles of resolutionCap points. The line is built
// horizontally at the origin and oriented into place.
func RoundBorderLineTriList(resolutionCap int, m Matrix, a, b Vec2, radius float64) iter.Seq[[]f32.Vec2] {
	dx, dy := b.X-a.X, b.Y-a.Y
	w := math.Sqrt(dx*dx + dy*dy)
	m = Multiply(m, Translate(a.X, a.Y), Orient(dx, dy))
	n := resolutionCap * 2
	steps := float64(resolutionCap - 1)
	return StreamPolygon(m, func(yield func(Vec2) bool) {
		for j := 0; j < n; j++ {
			var p Vec2
			if j >= resolutionCap {
				// The far cap starts where the near cap ended, half a turn on.
				angle := float64(j-resolutionCap)/steps*math.Pi + math.Pi + math.Pi/2
				sin, cos := math.Sincos(angle)
				p = Vec2{w + cos*radius, sin * radius}
			} else {
				angle := float64(j)/steps*math.Pi + math.Pi/2
				sin, cos := math.Sincos(angle)
				p = Vec2{cos * radius, sin * radius}
			}
			if !yield(p) {
				return
			}
		}
	})
}
