package quill

import (
	"image"
	"slices"
)

// TexturePacker places rectangular tiles into a growing list of atlas
// textures using a skyline heuristic. Only the current (most recently
// created) texture accepts new tiles; earlier ones are never revisited.
//
// The packer never backtracks: a tile that does not fit in the current
// texture requires a new one via Create.
type TexturePacker[T Texture] struct {
	// Textures holds every atlas in creation order.
	Textures []T
	// Current indexes the texture tiles are packed into.
	Current int
	// Skyline is the upper profile of tiles placed in the current texture,
	// sorted by strictly increasing X. Each point starts a run at height Y
	// that extends to the next point's X (or the texture width).
	Skyline []image.Point
}

// NewTexturePacker returns an empty packer.
func NewTexturePacker[T Texture]() *TexturePacker[T] {
	return &TexturePacker[T]{}
}

// Create appends tex as the current atlas with an initial tile of the given
// size already placed at the origin, and returns its index. A zero size
// starts an empty atlas.
func (p *TexturePacker[T]) Create(size image.Point, tex T) int {
	id := len(p.Textures)
	p.Textures = append(p.Textures, tex)
	p.Current = id
	if size.X <= 0 || size.Y <= 0 {
		p.Skyline = append(p.Skyline[:0], image.Point{})
	} else {
		p.Skyline = append(p.Skyline[:0], image.Pt(0, size.Y), image.Pt(size.X, 0))
	}
	return id
}

// FindSpace returns the skyline point a tile of the given size should be
// placed at, or false if the current atlas has no room (or none exists).
//
// A point admits the tile when the run to the next higher point is at least
// size.X wide and the texture has size.Y rows left above it. Among admissible
// points the narrowest run wins, ties going to the lowest one.
func (p *TexturePacker[T]) FindSpace(size image.Point) (int, bool) {
	if len(p.Textures) == 0 {
		return 0, false
	}
	bounds := p.Textures[p.Current].Bounds().Size()
	best, bestRun, bestY := -1, 0, 0
	for i, a := range p.Skyline {
		right := bounds.X
		for _, b := range p.Skyline[i+1:] {
			if b.Y > a.Y {
				right = b.X
				break
			}
		}
		run := right - a.X
		if run < size.X || a.Y+size.Y > bounds.Y {
			continue
		}
		if best < 0 || run < bestRun || (run == bestRun && a.Y < bestY) {
			best, bestRun, bestY = i, run, a.Y
		}
	}
	return best, best >= 0
}

// Update commits a tile of the given size at skyline point index (as returned
// by FindSpace) and returns the atlas and pixel offset it was placed at.
//
// Every skyline point under the tile is raised to its top edge. If no point
// sits exactly at the tile's right edge one is inserted there, carrying the
// height the skyline had at that x before the tile was placed.
func (p *TexturePacker[T]) Update(index int, size image.Point) (int, image.Point) {
	offset := p.Skyline[index]
	right := offset.X + size.X
	top := offset.Y + size.Y
	under := offset.Y
	i := index
	for ; i < len(p.Skyline) && p.Skyline[i].X < right; i++ {
		under = p.Skyline[i].Y
		p.Skyline[i].Y = top
	}
	if i == len(p.Skyline) || p.Skyline[i].X != right {
		p.Skyline = slices.Insert(p.Skyline, i, image.Pt(right, under))
	}
	return p.Current, offset
}
