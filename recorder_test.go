package quill

import (
	"image"
	"iter"

	"golang.org/x/image/math/f32"
)

// drawCall is one Renderer invocation captured by recordRenderer.
type drawCall struct {
	ds       DrawState
	color    Color
	tex      Texture
	vertices []f32.Vec2
	uvs      []f32.Vec2
}

// recordRenderer copies every chunk it receives, since chunks alias stream
// buffers.
type recordRenderer struct {
	calls []drawCall
}

func (r *recordRenderer) TriList(ds DrawState, c Color, vertices []f32.Vec2) {
	r.calls = append(r.calls, drawCall{ds: ds, color: c, vertices: append([]f32.Vec2(nil), vertices...)})
}

func (r *recordRenderer) TriListUV(ds DrawState, c Color, tex Texture, vertices, uvs []f32.Vec2) {
	r.calls = append(r.calls, drawCall{
		ds:       ds,
		color:    c,
		tex:      tex,
		vertices: append([]f32.Vec2(nil), vertices...),
		uvs:      append([]f32.Vec2(nil), uvs...),
	})
}

// vertexCount sums vertices over every call.
func (r *recordRenderer) vertexCount() int {
	n := 0
	for _, c := range r.calls {
		n += len(c.vertices)
	}
	return n
}

// collect drains a stream into one slice, copying each chunk, and returns the
// chunk lengths alongside.
func collect(s iter.Seq[[]f32.Vec2]) ([]f32.Vec2, []int) {
	var all []f32.Vec2
	var sizes []int
	for chunk := range s {
		all = append(all, chunk...)
		sizes = append(sizes, len(chunk))
	}
	return all, sizes
}

// sizedTexture is a Texture with no pixels.
type sizedTexture image.Rectangle

func (t sizedTexture) Bounds() image.Rectangle { return image.Rectangle(t) }

func approxEqual(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
