package quill

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. All geometry is computed in double precision.
type Vec2 struct {
	X, Y float64
}

// Vec3 holds barycentric weights (or any other 3-tuple).
type Vec3 = f64.Vec3

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Perp returns v rotated a quarter turn: (-y, x).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// ToBarycentric expresses p in barycentric coordinates of tri. A degenerate
// triangle yields NaN weights.
func ToBarycentric(tri [3]Vec2, p Vec2) Vec3 {
	a, b, c := tri[0], tri[1], tri[2]
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	return Vec3{1 - v - w, v, w}
}

// FromBarycentric is the inverse of ToBarycentric.
func FromBarycentric(tri [3]Vec2, b Vec3) Vec2 {
	return Vec2{
		X: tri[0].X*b[0] + tri[1].X*b[1] + tri[2].X*b[2],
		Y: tri[0].Y*b[0] + tri[1].Y*b[1] + tri[2].Y*b[2],
	}
}

// InsideTriangle reports whether p lies in tri, edges included. Works for
// either winding.
func InsideTriangle(tri [3]Vec2, p Vec2) bool {
	d1 := edgeSide(p, tri[0], tri[1])
	d2 := edgeSide(p, tri[1], tri[2])
	d3 := edgeSide(p, tri[2], tri[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSide(p, a, b Vec2) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}
