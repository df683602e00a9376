package quill

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/image/math/f32"
)

// DeformEpsilon bounds control-point weights: a vertex whose squared
// distance to a control point is below it gets weight 1/DeformEpsilon.
const DeformEpsilon = 1e-5

// DeformGrid warps a uniform mesh over a rectangle with moving least squares
// similarity deformation driven by sparse control points.
//
// Each control point has an original position (where it was grabbed) and a
// current position (where it was dragged to). Update recomputes the mesh from
// the rest positions; it must be called after control points change and
// before drawing or Hit observe the result.
type DeformGrid struct {
	rect       Rect
	cols, rows int

	vertices  []Vec2     // current positions, row-major (cols+1)×(rows+1)
	restPos   []Vec2     // undeformed positions
	indices   []int      // two triangles per cell
	texCoords []f32.Vec2 // fixed, normalised to [0, 1]

	ps  []Vec2    // original control point positions
	qs  []Vec2    // current control point positions
	wis []float64 // per-point weight scratch
}

// NewDeformGrid creates a cols × rows grid covering rect. cols and rows are
// clamped to at least 1.
func NewDeformGrid(rect Rect, cols, rows int) *DeformGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	vcols := cols + 1
	vrows := rows + 1
	numVerts := vcols * vrows

	g := &DeformGrid{
		rect:      rect,
		cols:      cols,
		rows:      rows,
		vertices:  make([]Vec2, numVerts),
		restPos:   make([]Vec2, numVerts),
		indices:   make([]int, 0, cols*rows*6),
		texCoords: make([]f32.Vec2, numVerts),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := r*vcols + c
			tr := tl + 1
			bl := (r+1)*vcols + c
			br := bl + 1
			g.indices = append(g.indices, tl, tr, bl, tr, br, bl)
		}
	}
	g.ResetVerticesAndTextureCoords()
	return g
}

// ResetVerticesAndTextureCoords returns every vertex to its rest position
// and recomputes texture coordinates. Control points are left alone.
func (g *DeformGrid) ResetVerticesAndTextureCoords() {
	vcols := g.cols + 1
	vrows := g.rows + 1
	cellW := g.rect.Width / float64(g.cols)
	cellH := g.rect.Height / float64(g.rows)
	for r := 0; r < vrows; r++ {
		for c := 0; c < vcols; c++ {
			idx := r*vcols + c
			p := Vec2{X: g.rect.X + float64(c)*cellW, Y: g.rect.Y + float64(r)*cellH}
			g.restPos[idx] = p
			g.vertices[idx] = p
			g.texCoords[idx] = f32.Vec2{
				float32(float64(c) / float64(g.cols)),
				float32(float64(r) / float64(g.rows)),
			}
		}
	}
}

// Rect returns the rest rectangle.
func (g *DeformGrid) Rect() Rect { return g.rect }

// Cols returns the number of grid columns.
func (g *DeformGrid) Cols() int { return g.cols }

// Rows returns the number of grid rows.
func (g *DeformGrid) Rows() int { return g.rows }

// Vertices returns the current vertex positions. The slice is owned by the
// grid and must not be modified.
func (g *DeformGrid) Vertices() []Vec2 { return g.vertices }

// Indices returns the triangle index list.
func (g *DeformGrid) Indices() []int { return g.indices }

// TextureCoords returns the per-vertex texture coordinates.
func (g *DeformGrid) TextureCoords() []f32.Vec2 { return g.texCoords }

// ControlPoints returns the number of control points.
func (g *DeformGrid) ControlPoints() int { return len(g.ps) }

// AddControlPoint adds a control point at pos, with its current position
// equal to its original, and returns its index.
func (g *DeformGrid) AddControlPoint(pos Vec2) int {
	g.ps = append(g.ps, pos)
	g.qs = append(g.qs, pos)
	g.wis = append(g.wis, 0)
	return len(g.ps) - 1
}

// RemoveControlPoint deletes control point i; later indices shift down.
func (g *DeformGrid) RemoveControlPoint(i int) {
	g.checkIndex(i, "RemoveControlPoint")
	g.ps = slices.Delete(g.ps, i, i+1)
	g.qs = slices.Delete(g.qs, i, i+1)
	g.wis = slices.Delete(g.wis, i, i+1)
}

// ResetControlPoints removes every control point without touching the mesh.
func (g *DeformGrid) ResetControlPoints() {
	g.ps = g.ps[:0]
	g.qs = g.qs[:0]
	g.wis = g.wis[:0]
}

// SetCurrent moves control point i to pos.
func (g *DeformGrid) SetCurrent(i int, pos Vec2) {
	g.checkIndex(i, "SetCurrent")
	g.qs[i] = pos
}

// SetOriginal changes where control point i was grabbed.
func (g *DeformGrid) SetOriginal(i int, pos Vec2) {
	g.checkIndex(i, "SetOriginal")
	g.ps[i] = pos
}

// Current returns the current position of control point i.
func (g *DeformGrid) Current(i int) Vec2 {
	g.checkIndex(i, "Current")
	return g.qs[i]
}

// Original returns the original position of control point i.
func (g *DeformGrid) Original(i int) Vec2 {
	g.checkIndex(i, "Original")
	return g.ps[i]
}

// NearestControlPoint returns the control point whose current position is
// closest to pos and no farther than maxDist.
func (g *DeformGrid) NearestControlPoint(pos Vec2, maxDist float64) (int, bool) {
	best := -1
	bestSq := maxDist * maxDist
	for i, q := range g.qs {
		if d := q.Sub(pos).LenSq(); d <= bestSq {
			best, bestSq = i, d
		}
	}
	return best, best >= 0
}

func (g *DeformGrid) checkIndex(i int, op string) {
	if i < 0 || i >= len(g.ps) {
		panic(fmt.Sprintf("quill: DeformGrid.%s: control point %d out of range [0,%d)", op, i, len(g.ps)))
	}
}

// Update recomputes every vertex from its rest position.
//
// With no control points the mesh is left as it is. With one, the mesh is
// translated by its displacement. Otherwise each vertex takes the weighted
// best-fit similarity (rotation plus uniform scale) carrying the original
// control points onto the current ones, weighted by inverse squared
// distance.
func (g *DeformGrid) Update() {
	switch len(g.ps) {
	case 0:
		return
	case 1:
		d := g.qs[0].Sub(g.ps[0])
		for i, v := range g.restPos {
			g.vertices[i] = v.Add(d)
		}
		return
	}
	for i, v := range g.restPos {
		g.vertices[i] = g.deformPoint(v)
	}
}

func (g *DeformGrid) deformPoint(v Vec2) Vec2 {
	var sw float64
	var pStar, qStar Vec2
	for i, p := range g.ps {
		d := p.Sub(v).LenSq()
		w := 1 / DeformEpsilon
		if d >= DeformEpsilon {
			w = 1 / d
		}
		g.wis[i] = w
		sw += w
		pStar = pStar.Add(p.Mul(w))
		qStar = qStar.Add(g.qs[i].Mul(w))
	}
	pStar = pStar.Mul(1 / sw)
	qStar = qStar.Mul(1 / sw)

	// M = [a -b; b a] minimising Σ w |M p̂ - q̂|².
	var mu, a, b float64
	for i, p := range g.ps {
		w := g.wis[i]
		ph := p.Sub(pStar)
		qh := g.qs[i].Sub(qStar)
		mu += w * ph.LenSq()
		a += w * ph.Dot(qh)
		b += w * ph.Cross(qh)
	}
	vh := v.Sub(pStar)
	if mu == 0 || math.IsNaN(mu) {
		// Every original point coincides: only the shared offset is known.
		return vh.Add(qStar)
	}
	a /= mu
	b /= mu
	return Vec2{
		X: a*vh.X - b*vh.Y + qStar.X,
		Y: b*vh.X + a*vh.Y + qStar.Y,
	}
}

// Hit maps a point on the deformed mesh back to rest space. Triangles are
// scanned in index order and the first containing pos wins, so a mesh that
// overlaps itself reports its earliest triangle.
func (g *DeformGrid) Hit(pos Vec2) (Vec2, bool) {
	for t := 0; t+2 < len(g.indices); t += 3 {
		ia, ib, ic := g.indices[t], g.indices[t+1], g.indices[t+2]
		tri := [3]Vec2{g.vertices[ia], g.vertices[ib], g.vertices[ic]}
		if !InsideTriangle(tri, pos) {
			continue
		}
		bc := ToBarycentric(tri, pos)
		if math.IsNaN(bc[0]) || math.IsInf(bc[0], 0) {
			continue // collapsed triangle
		}
		rest := [3]Vec2{g.restPos[ia], g.restPos[ib], g.restPos[ic]}
		return FromBarycentric(rest, bc), true
	}
	return Vec2{}, false
}

// DrawImage renders the deformed mesh textured with tex.
func (g *DeformGrid) DrawImage(tex Texture, c Color, ds DrawState, m Matrix, r Renderer) {
	if c.A == 0 {
		return
	}
	for pos, uv := range StreamIndexedUV(m, g.vertices, g.texCoords, g.indices) {
		r.TriListUV(ds, c, tex, pos, uv)
	}
}

// DrawVertices strokes the grid lines of the deformed mesh.
func (g *DeformGrid) DrawVertices(c Color, radius float64, ds DrawState, m Matrix, r Renderer) {
	line := Line{Color: c, Radius: radius, Cap: LineSquare}
	vcols := g.cols + 1
	for row := 0; row <= g.rows; row++ {
		for col := 0; col <= g.cols; col++ {
			idx := row*vcols + col
			if col < g.cols {
				line.Draw(g.vertices[idx], g.vertices[idx+1], ds, m, r)
			}
			if row < g.rows {
				line.Draw(g.vertices[idx], g.vertices[idx+vcols], ds, m, r)
			}
		}
	}
}

// DrawControlPoints marks each control point with a segment from its
// original to its current position and a dot of the given radius at the
// current one.
func (g *DeformGrid) DrawControlPoints(c Color, radius float64, ds DrawState, m Matrix, r Renderer) {
	dot := Ellipse{Color: c}
	line := Line{Color: c, Radius: radius / 4, Cap: LineRound}
	for i, p := range g.ps {
		q := g.qs[i]
		if p != q {
			line.Draw(p, q, ds, m, r)
		}
		dot.Draw(Centered(q.X, q.Y, radius, radius), ds, m, r)
	}
}
