package quill

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is a straight-alpha RGBA tint with components in [0, 1]. Renderers
// premultiply it when building vertices.
type Color struct {
	R, G, B, A float64
}

// ColorWhite leaves textures untinted.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent draws nothing.
var ColorTransparent = Color{}

// RGBA implements color.Color, so a Color can be passed to Fill and the
// image/draw functions directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle given as origin plus extent. The
// coordinate system has its origin at the top-left, with Y increasing
// downward. Width and Height may go negative in intermediate results (for
// example after Margin); such rectangles are degenerate.
type Rect struct {
	X, Y, Width, Height float64
}

// Square returns a rectangle of equal sides at (x, y).
func Square(x, y, size float64) Rect {
	return Rect{X: x, Y: y, Width: size, Height: size}
}

// Centered returns a rectangle of extent 2*hw × 2*hh centered on (cx, cy).
func Centered(cx, cy, hw, hh float64) Rect {
	return Rect{X: cx - hw, Y: cy - hh, Width: 2 * hw, Height: 2 * hh}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Margin shrinks the rectangle by m on every side.
func (r Rect) Margin(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, Width: r.Width - 2*m, Height: r.Height - 2*m}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// BlendMode selects how a draw composites onto its target.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend maps the mode onto ebiten's blend state.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}
