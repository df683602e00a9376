package quill

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f32"
)

// sequentialIndices is the index list for a non-indexed triangle chunk.
var sequentialIndices = func() []uint16 {
	inds := make([]uint16, BufferSize)
	for i := range inds {
		inds[i] = uint16(i)
	}
	return inds
}()

// --- White pixel singleton (no sync.Once; drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite)
	}
	return whitePixelImage
}

// EbitenRenderer draws triangle chunks onto an ebiten image.
type EbitenRenderer struct {
	Target *ebiten.Image
	// Filter is used when sampling textures.
	Filter Filter

	verts []ebiten.Vertex // reused between calls
}

// NewEbitenRenderer returns a renderer drawing onto target.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{Target: target, verts: make([]ebiten.Vertex, 0, BufferSize)}
}

// TriList implements Renderer.
func (r *EbitenRenderer) TriList(ds DrawState, c Color, vertices []f32.Vec2) {
	white := ensureWhitePixel()
	r.draw(ds, c, white, vertices, nil)
}

// TriListUV implements Renderer. tex must be an *ebiten.Image; other
// textures are ignored.
func (r *EbitenRenderer) TriListUV(ds DrawState, c Color, tex Texture, vertices, uvs []f32.Vec2) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	r.draw(ds, c, img, vertices, uvs)
}

func (r *EbitenRenderer) draw(ds DrawState, c Color, src *ebiten.Image, vertices, uvs []f32.Vec2) {
	if r.Target == nil || len(vertices) == 0 {
		return
	}
	target := r.Target
	if ds.Clip != nil {
		target = target.SubImage(*ds.Clip).(*ebiten.Image)
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = ds.Blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	if r.Filter == FilterNearest {
		op.Filter = ebiten.FilterNearest
	} else {
		op.Filter = ebiten.FilterLinear
	}

	// Callers may hand over more than one chunk's worth; split on triangle
	// boundaries so the sequential index list always suffices.
	const window = BufferSize - BufferSize%verticesPerTriangle
	for start := 0; start < len(vertices); start += window {
		end := min(start+window, len(vertices))
		var texChunk []f32.Vec2
		if uvs != nil {
			texChunk = uvs[start:end]
		}
		r.verts = appendVertices(r.verts[:0], vertices[start:end], texChunk, c, src.Bounds())
		target.DrawTriangles(r.verts, sequentialIndices[:len(r.verts)], src, &op)
	}
}

// appendVertices converts a chunk into ebiten vertices with premultiplied
// color. A nil uvs samples the centre of the source's first texel; otherwise
// uvs are scaled into the source bounds.
func appendVertices(dst []ebiten.Vertex, vertices, uvs []f32.Vec2, c Color, src image.Rectangle) []ebiten.Vertex {
	a := float32(c.A)
	cr := float32(c.R) * a
	cg := float32(c.G) * a
	cb := float32(c.B) * a
	minX, minY := float32(src.Min.X), float32(src.Min.Y)
	w, h := float32(src.Dx()), float32(src.Dy())
	for i, p := range vertices {
		v := ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   minX + 0.5,
			SrcY:   minY + 0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		}
		if uvs != nil {
			v.SrcX = minX + uvs[i][0]*w
			v.SrcY = minY + uvs[i][1]*h
		}
		dst = append(dst, v)
	}
	return dst
}

// EbitenTextures is a TextureFactory producing *ebiten.Image pages.
// Ebiten picks the sampling filter per draw, so TextureSettings.Filter is
// honoured by EbitenRenderer.Filter rather than here.
type EbitenTextures struct{}

// CreateTexture implements TextureFactory.
func (EbitenTextures) CreateTexture(format Format, pix []byte, size image.Point, _ TextureSettings) (*ebiten.Image, error) {
	if format != FormatRGBA8 {
		return nil, ErrUnsupportedFormat
	}
	if size.X <= 0 || size.Y <= 0 || len(pix) != 4*size.X*size.Y {
		return nil, fmt.Errorf("quill: %d bytes for %dx%d texture: %w", len(pix), size.X, size.Y, ErrInvalidTextureSize)
	}
	img := ebiten.NewImage(size.X, size.Y)
	img.WritePixels(pix)
	return img, nil
}

// UpdateTexture implements TextureFactory.
func (EbitenTextures) UpdateTexture(tex *ebiten.Image, format Format, pix []byte, offset, size image.Point) error {
	if format != FormatRGBA8 {
		return ErrUnsupportedFormat
	}
	area := image.Rectangle{Min: offset, Max: offset.Add(size)}
	if size.X <= 0 || size.Y <= 0 || len(pix) != 4*size.X*size.Y || !area.In(tex.Bounds()) {
		return fmt.Errorf("quill: update %v of %v texture: %w", area, tex.Bounds(), ErrInvalidTextureSize)
	}
	tex.SubImage(area).(*ebiten.Image).WritePixels(pix)
	return nil
}
