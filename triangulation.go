package quill

import (
	"iter"
	"slices"

	"golang.org/x/image/math/f32"
)

// BufferSize is the number of points a single chunk can hold. Every stream in
// this package yields chunks no larger than this, so renderers can size their
// vertex buffers once.
const BufferSize = 1024

const (
	verticesPerTriangle = 3
	verticesPerQuad     = 6
)

// StreamPolygon fan-triangulates a polygon outline. The first point is the
// hub; each point after the second closes a triangle with the hub and the
// previous point. This is correct for convex polygons and polygons that are
// star-shaped from their first point only.
//
// Each yielded chunk aliases a buffer owned by the stream and is overwritten
// once the consumer returns. Fewer than three points yield nothing.
func StreamPolygon(m Matrix, points iter.Seq[Vec2]) iter.Seq[[]f32.Vec2] {
	return func(yield func([]f32.Vec2) bool) {
		var buf [BufferSize]f32.Vec2
		var hub, prev f32.Vec2
		seen := 0
		i := 0
		for p := range points {
			pos := txy(m, p.X, p.Y)
			switch seen {
			case 0:
				hub = pos
			case 1:
				prev = pos
			default:
				o := i * verticesPerTriangle
				buf[o] = hub
				buf[o+1] = prev
				buf[o+2] = pos
				prev = pos
				i++
				if i*verticesPerTriangle+verticesPerTriangle >= BufferSize {
					if !yield(buf[:i*verticesPerTriangle]) {
						return
					}
					i = 0
				}
			}
			seen++
		}
		if i > 0 {
			yield(buf[:i*verticesPerTriangle])
		}
	}
}

// StreamQuads turns a sequence of (inner, outer) edges into a ribbon of quads.
// Every edge after the first emits two triangles joining it to the previous
// edge: (f1, f2, g1) and (f2, g1, g2).
//
// Chunks alias an internal buffer, as with StreamPolygon.
func StreamQuads(m Matrix, edges iter.Seq2[Vec2, Vec2]) iter.Seq[[]f32.Vec2] {
	return func(yield func([]f32.Vec2) bool) {
		var buf [BufferSize]f32.Vec2
		var f1, f2 f32.Vec2
		started := false
		i := 0
		for a, b := range edges {
			g1 := txy(m, a.X, a.Y)
			g2 := txy(m, b.X, b.Y)
			if !started {
				f1, f2 = g1, g2
				started = true
				continue
			}
			o := i * verticesPerQuad
			buf[o] = f1
			buf[o+1] = f2
			buf[o+2] = g1
			buf[o+3] = f2
			buf[o+4] = g1
			buf[o+5] = g2
			f1, f2 = g1, g2
			i++
			if i*verticesPerQuad+verticesPerQuad >= BufferSize {
				if !yield(buf[:i*verticesPerQuad]) {
					return
				}
				i = 0
			}
		}
		if i > 0 {
			yield(buf[:i*verticesPerQuad])
		}
	}
}

// StreamIndexedUV walks an indexed triangle list, yielding transformed
// positions and their texture coordinates in parallel chunks of equal length.
// uvs must be parallel to vertices; len(indices) should be a multiple of 3
// (a trailing partial triangle is dropped).
func StreamIndexedUV(m Matrix, vertices []Vec2, uvs []f32.Vec2, indices []int) iter.Seq2[[]f32.Vec2, []f32.Vec2] {
	return func(yield func([]f32.Vec2, []f32.Vec2) bool) {
		var pos, tex [BufferSize]f32.Vec2
		n := 0
		tris := len(indices) / verticesPerTriangle
		for t := 0; t < tris; t++ {
			for k := 0; k < verticesPerTriangle; k++ {
				idx := indices[t*verticesPerTriangle+k]
				v := vertices[idx]
				pos[n] = txy(m, v.X, v.Y)
				tex[n] = uvs[idx]
				n++
			}
			if n+verticesPerTriangle >= BufferSize {
				if !yield(pos[:n], tex[:n]) {
					return
				}
				n = 0
			}
		}
		if n > 0 {
			yield(pos[:n], tex[:n])
		}
	}
}

// PolygonTriList fan-triangulates a polygon given as a slice.
func PolygonTriList(m Matrix, polygon []Vec2) iter.Seq[[]f32.Vec2] {
	return StreamPolygon(m, slices.Values(polygon))
}

// LerpPolygonsTriList treats polygons as animation frames sharing the same
// point count and triangulates the frame at tween factor t. The factor wraps
// into [0, 1) and covers all frames, with the last frame blending back into
// the first.
func LerpPolygonsTriList(m Matrix, polygons [][]Vec2, t float64) iter.Seq[[]f32.Vec2] {
	if len(polygons) == 0 {
		return emptyStream
	}
	tw := t - float64(int64(t))
	if tw < 0 {
		tw++
	}
	tw *= float64(len(polygons))
	frame := int(tw) % len(polygons)
	next := (frame + 1) % len(polygons)
	tw -= float64(int(tw))
	p0, p1 := polygons[frame], polygons[next]
	n := min(len(p0), len(p1))
	return StreamPolygon(m, func(yield func(Vec2) bool) {
		for j := 0; j < n; j++ {
			a, b := p0[j], p1[j]
			if !yield(Vec2{X: a.X + (b.X-a.X)*tw, Y: a.Y + (b.Y-a.Y)*tw}) {
				return
			}
		}
	})
}

func emptyStream(func([]f32.Vec2) bool) {}
