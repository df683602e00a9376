package quill

import (
	"image"
	"iter"

	"golang.org/x/image/math/f32"
)

// DrawState carries the per-draw pipeline settings that every shape shares.
type DrawState struct {
	Blend BlendMode
	// Clip restricts drawing to a rectangle in target pixels. Nil draws
	// everywhere.
	Clip *image.Rectangle
}

// DefaultDrawState blends normally and does not clip.
var DefaultDrawState = DrawState{}

// Texture is anything with pixel bounds. *ebiten.Image and the image
// package types all qualify.
type Texture interface {
	Bounds() image.Rectangle
}

// Renderer receives triangle-list chunks. Slices passed in are only valid for
// the duration of the call; implementations must copy what they keep.
type Renderer interface {
	// TriList draws untextured triangles filled with c.
	TriList(ds DrawState, c Color, vertices []f32.Vec2)
	// TriListUV draws textured triangles. uvs are normalised to [0, 1] over
	// the texture bounds and parallel to vertices.
	TriListUV(ds DrawState, c Color, tex Texture, vertices, uvs []f32.Vec2)
}

// drawStream forwards every chunk of s to r.
func drawStream(r Renderer, ds DrawState, c Color, s iter.Seq[[]f32.Vec2]) {
	for chunk := range s {
		r.TriList(ds, c, chunk)
	}
}
