package quill

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Matrix is a 2x3 affine transform stored row-major:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//
// A point maps as x' = m[0]*x + m[1]*y + m[2], y' = m[3]*x + m[4]*y + m[5].
// Matrices are values; the helpers below return new matrices.
type Matrix = f64.Aff3

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 0, 1, 0}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, x, 0, 1, y}
}

// Scale returns a scale by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0}
}

// Rotate returns a rotation by rad radians. With Y pointing down, positive
// angles turn clockwise on screen.
func Rotate(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{cos, -sin, 0, sin, cos, 0}
}

// Shear returns a shear with the given x and y factors.
func Shear(x, y float64) Matrix {
	return Matrix{1, x, 0, y, 1, 0}
}

// Orient returns the rotation that maps the +X axis onto the direction
// (dx, dy). A zero direction yields Identity.
func Orient(dx, dy float64) Matrix {
	ln := dx*dx + dy*dy
	if ln == 0 {
		return Identity
	}
	ln = math.Sqrt(ln)
	c := dx / ln
	s := dy / ln
	return Matrix{c, -s, 0, s, c, 0}
}

// Multiply composes the given matrices left to right: Multiply(a, b) applies
// b first, then a.
func Multiply(ms ...Matrix) Matrix {
	out := Identity
	for _, m := range ms {
		out = mul(out, m)
	}
	return out
}

func mul(p, c Matrix) Matrix {
	return Matrix{
		p[0]*c[0] + p[1]*c[3],
		p[0]*c[1] + p[1]*c[4],
		p[0]*c[2] + p[1]*c[5] + p[2],
		p[3]*c[0] + p[4]*c[3],
		p[3]*c[1] + p[4]*c[4],
		p[3]*c[2] + p[4]*c[5] + p[5],
	}
}

// Invert computes the inverse of an affine matrix.
// Returns Identity if the matrix is singular (determinant ≈ 0).
func Invert(m Matrix) Matrix {
	det := m[0]*m[4] - m[1]*m[3]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	inv := 1.0 / det
	a := m[4] * inv
	b := -m[1] * inv
	d := -m[3] * inv
	e := m[0] * inv
	return Matrix{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}
}

// TransformPos applies m to a point.
func TransformPos(m Matrix, p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// TransformVec applies the linear part of m to a direction.
func TransformVec(m Matrix, v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[3]*v.X + m[4]*v.Y,
	}
}

// tx and ty apply the transform in double precision and only then narrow.
func tx(m Matrix, x, y float64) float32 {
	return float32(m[0]*x + m[1]*y + m[2])
}

func ty(m Matrix, x, y float64) float32 {
	return float32(m[3]*x + m[4]*y + m[5])
}

func txy(m Matrix, x, y float64) f32.Vec2 {
	return f32.Vec2{tx(m, x, y), ty(m, x, y)}
}
