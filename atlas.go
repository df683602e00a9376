package quill

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Format identifies a pixel layout handed to a TextureFactory.
type Format uint8

const (
	// FormatRGBA8 is 8-bit premultiplied RGBA, four bytes per pixel.
	FormatRGBA8 Format = iota
)

// Filter selects texture sampling.
type Filter uint8

const (
	FilterLinear  Filter = iota // bilinear sampling
	FilterNearest               // nearest texel
)

// String returns the lower-case filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	default:
		return "linear"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Filter) UnmarshalText(b []byte) error {
	switch string(b) {
	case "linear", "":
		*f = FilterLinear
	case "nearest":
		*f = FilterNearest
	default:
		return fmt.Errorf("quill: unknown filter %q", b)
	}
	return nil
}

// TextureSettings are creation-time options for a texture.
type TextureSettings struct {
	Filter Filter
}

// TextureFactory creates and updates backend textures. AtlasCache calls it
// and propagates its errors unchanged (wrapped); nothing is retried.
type TextureFactory[T Texture] interface {
	// CreateTexture makes a size.X × size.Y texture initialised from pix.
	CreateTexture(format Format, pix []byte, size image.Point, settings TextureSettings) (T, error)
	// UpdateTexture overwrites the size.X × size.Y area at offset with pix.
	UpdateTexture(tex T, format Format, pix []byte, offset, size image.Point) error
}

// TextureRegion describes a tile within an atlas page.
type TextureRegion struct {
	Page          int // atlas page index
	X, Y          int // top-left corner within the page
	Width, Height int
}

// Bounds returns the region as an image rectangle within its page.
func (r TextureRegion) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// SourceRect returns the region in the form Image.SourceRect expects.
func (r TextureRegion) SourceRect() *Rect {
	return &Rect{X: float64(r.X), Y: float64(r.Y), Width: float64(r.Width), Height: float64(r.Height)}
}

// AtlasCache packs keyed images (glyphs, sprites) into atlas pages on first
// use and remembers where each one went.
//
// AtlasCache is not safe for concurrent use; serialise inserts externally.
type AtlasCache[T Texture] struct {
	factory TextureFactory[T]
	config  AtlasConfig
	packer  TexturePacker[T]
	regions map[string]TextureRegion
}

// NewAtlasCache returns an empty cache creating pages through factory.
// Zero config fields take their defaults.
func NewAtlasCache[T Texture](factory TextureFactory[T], config AtlasConfig) *AtlasCache[T] {
	return &AtlasCache[T]{
		factory: factory,
		config:  config.withDefaults(),
		regions: make(map[string]TextureRegion),
	}
}

// Insert places img in the atlas under key and returns its region. A key
// already present returns the stored region without touching img.
//
// When the current page has no room, a new page of at least
// AtlasConfig.PageSize per side (larger if the tile is) is created seeded
// with the tile. Factory errors are returned wrapped and leave the cache
// unchanged.
func (c *AtlasCache[T]) Insert(key string, img image.Image) (TextureRegion, error) {
	if r, ok := c.regions[key]; ok {
		return r, nil
	}
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return TextureRegion{}, fmt.Errorf("quill: insert %q: %w", key, ErrEmptyTile)
	}
	if size.X > c.config.MaxTextureSize || size.Y > c.config.MaxTextureSize {
		return TextureRegion{}, fmt.Errorf("quill: insert %q (%dx%d): %w", key, size.X, size.Y, ErrTextureTooLarge)
	}
	pix := rgbaPixels(img)

	var region TextureRegion
	if idx, ok := c.packer.FindSpace(size); ok {
		page := c.packer.Current
		offset := c.packer.Skyline[idx]
		if err := c.factory.UpdateTexture(c.packer.Textures[page], FormatRGBA8, pix, offset, size); err != nil {
			Logger().Warn("quill: atlas update failed", "key", key, "page", page, "error", err)
			return TextureRegion{}, fmt.Errorf("quill: update atlas page %d: %w", page, err)
		}
		page, offset = c.packer.Update(idx, size)
		region = TextureRegion{Page: page, X: offset.X, Y: offset.Y, Width: size.X, Height: size.Y}
	} else {
		pageSize := image.Pt(max(c.config.PageSize, size.X), max(c.config.PageSize, size.Y))
		seed := make([]byte, 4*pageSize.X*pageSize.Y)
		rowBytes := 4 * size.X
		for y := 0; y < size.Y; y++ {
			copy(seed[y*4*pageSize.X:], pix[y*rowBytes:(y+1)*rowBytes])
		}
		tex, err := c.factory.CreateTexture(FormatRGBA8, seed, pageSize, TextureSettings{Filter: c.config.Filter})
		if err != nil {
			Logger().Warn("quill: atlas page creation failed", "key", key, "width", pageSize.X, "height", pageSize.Y, "error", err)
			return TextureRegion{}, fmt.Errorf("quill: create atlas page: %w", err)
		}
		page := c.packer.Create(size, tex)
		Logger().Debug("quill: atlas page created", "page", page, "width", pageSize.X, "height", pageSize.Y)
		region = TextureRegion{Page: page, Width: size.X, Height: size.Y}
	}
	Logger().Debug("quill: tile placed", "key", key, "page", region.Page, "x", region.X, "y", region.Y)
	c.regions[key] = region
	return region, nil
}

// Region returns the region stored under key.
func (c *AtlasCache[T]) Region(key string) (TextureRegion, bool) {
	r, ok := c.regions[key]
	return r, ok
}

// Page returns atlas page i.
func (c *AtlasCache[T]) Page(i int) T {
	return c.packer.Textures[i]
}

// PageCount returns the number of pages created so far.
func (c *AtlasCache[T]) PageCount() int {
	return len(c.packer.Textures)
}

// Len returns the number of cached tiles.
func (c *AtlasCache[T]) Len() int {
	return len(c.regions)
}

// DrawRegion draws the tile stored under key into rect. It reports false if
// the key is unknown.
func (c *AtlasCache[T]) DrawRegion(key string, color Color, rect Rect, ds DrawState, m Matrix, g Renderer) bool {
	r, ok := c.regions[key]
	if !ok {
		return false
	}
	Image{Color: color, SourceRect: r.SourceRect(), Rect: &rect}.Draw(c.packer.Textures[r.Page], ds, m, g)
	return true
}

// rgbaPixels returns img as tightly packed premultiplied RGBA rows.
func rgbaPixels(img image.Image) []byte {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() {
		start := rgba.PixOffset(b.Min.X, b.Min.Y)
		return rgba.Pix[start : start+4*b.Dx()*b.Dy()]
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix
}
