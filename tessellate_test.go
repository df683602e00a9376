package quill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func assertPoint(t *testing.T, name string, got f32.Vec2, x, y float64) {
	t.Helper()
	if !approxEqual(float64(got[0]), x, 1e-4) || !approxEqual(float64(got[1]), y, 1e-4) {
		t.Errorf("%s = (%f,%f), want (%f,%f)", name, got[0], got[1], x, y)
	}
}

func dist(p f32.Vec2, x, y float64) float64 {
	return math.Hypot(float64(p[0])-x, float64(p[1])-y)
}

func TestEllipseTriList(t *testing.T) {
	all, _ := collect(EllipseTriList(16, Identity, Square(0, 0, 20)))
	require.Len(t, all, 3*14)
	for i, p := range all {
		assert.InDeltaf(t, 10, dist(p, 10, 10), 1e-4, "vertex %d", i)
	}
	assertPoint(t, "hub", all[0], 20, 10)
}

func TestEllipseTriListScaled(t *testing.T) {
	all, _ := collect(EllipseTriList(4, Scale(2, 1), Rect{Width: 10, Height: 4}))
	// Hub at angle 0, then 90° and 180°.
	require.Len(t, all, 6)
	assertPoint(t, "hub", all[0], 20, 2)
	assertPoint(t, "bottom", all[1], 10, 4)
	assertPoint(t, "left", all[2], 0, 2)
}

func TestEllipseBorderTriList(t *testing.T) {
	all, _ := collect(EllipseBorderTriList(16, Identity, Square(0, 0, 20), 1))
	require.Len(t, all, 6*16)
	for i, p := range all {
		d := dist(p, 10, 10)
		if !approxEqual(d, 11, 1e-4) && !approxEqual(d, 9, 1e-4) {
			t.Errorf("vertex %d at distance %f, want 9 or 11", i, d)
		}
	}
}

func TestArcFullCircleMatchesEllipseBorder(t *testing.T) {
	rect := Square(0, 0, 20)
	ring, _ := collect(EllipseBorderTriList(16, Identity, rect, 1))
	for _, end := range []float64{2 * math.Pi, 3 * math.Pi, -2 * math.Pi} {
		arc, _ := collect(ArcTriList(0, end, 16, Identity, rect, 1))
		require.Lenf(t, arc, 96, "end %f", end)
		for i := range arc {
			assertPoint(t, "vertex", arc[i], float64(ring[i][0]), float64(ring[i][1]))
		}
	}
}

func TestArcSpans(t *testing.T) {
	rect := Square(0, 0, 20)
	tests := []struct {
		name       string
		start, end float64
		res        int
		quads      int
	}{
		{"zero span", 1, 1, 16, 0},
		{"zero resolution", 0, 1, 0, 0},
		{"negative resolution", 0, 1, -4, 0},
		{"quarter", 0, math.Pi / 2, 16, 4},
		{"partial bucket", 0, 1, 16, 3},
		{"negative sweep wraps", 0, -1, 16, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all, _ := collect(ArcTriList(tt.start, tt.end, tt.res, Identity, rect, 1))
			assert.Len(t, all, 6*tt.quads)
		})
	}
}

func TestArcEndpoints(t *testing.T) {
	all, _ := collect(ArcTriList(0, -1, 16, Identity, Square(-10, -10, 20), 1))
	require.NotEmpty(t, all)
	assertPoint(t, "first outer", all[0], 11, 0)
	last := all[len(all)-1] // inner point of the final edge
	s, c := math.Sincos(-1)
	assertPoint(t, "last inner", last, c*9, s*9)
}

func TestRoundRectTriList(t *testing.T) {
	rect := Rect{Width: 100, Height: 50}
	all, _ := collect(RoundRectTriList(4, Identity, rect, 10))
	require.Len(t, all, 3*(16-2))
	assertPoint(t, "first", all[0], 100, 40)
	for i, p := range all {
		assert.Truef(t, p[0] >= -1e-4 && p[0] <= 100+1e-4 && p[1] >= -1e-4 && p[1] <= 50+1e-4,
			"vertex %d = %v outside rect", i, p)
	}
}

func TestRoundRectCornerOrder(t *testing.T) {
	rect := Rect{Width: 100, Height: 50}
	var pts []Vec2
	for j := range 8 {
		pts = append(pts, roundRectPoint(j, 2, rect, 10, 10))
	}
	// Two points per corner: bottom-right, bottom-left, top-left, top-right.
	want := []Vec2{{100, 40}, {90, 50}, {10, 50}, {0, 40}, {0, 10}, {10, 0}, {90, 0}, {100, 10}}
	for i := range want {
		assertVec(t, "corner point", pts[i], want[i], 1e-9)
	}
}

func TestRoundRectBorderTriListCloses(t *testing.T) {
	all, _ := collect(RoundRectBorderTriList(4, Identity, Rect{Width: 100, Height: 50}, 10, 2))
	require.Len(t, all, 6*16)
	// The last quad's closing edge is the first edge again.
	assert.Equal(t, all[0], all[len(all)-2])
	assert.Equal(t, all[1], all[len(all)-1])
	assertPoint(t, "outer", all[0], 102, 40)
	assertPoint(t, "inner", all[1], 98, 40)
}

func TestRoundRectBorderZeroResolution(t *testing.T) {
	all, _ := collect(RoundRectBorderTriList(0, Identity, Rect{Width: 10, Height: 10}, 2, 1))
	assert.Empty(t, all)
}

func TestLineSquareCaps(t *testing.T) {
	all, _ := collect(RoundBorderLineTriList(2, Identity, Vec2{0, 0}, Vec2{10, 0}, 2))
	require.Len(t, all, 6)
	want := [][2]float64{{0, 2}, {0, -2}, {10, -2}, {0, 2}, {10, -2}, {10, 2}}
	for i, w := range want {
		assertPoint(t, "vertex", all[i], w[0], w[1])
	}
}

func TestLineOriented(t *testing.T) {
	all, _ := collect(RoundBorderLineTriList(2, Translate(5, 5), Vec2{0, 0}, Vec2{0, 10}, 2))
	require.Len(t, all, 6)
	want := [][2]float64{{3, 5}, {7, 5}, {7, 15}, {3, 5}, {7, 15}, {3, 15}}
	for i, w := range want {
		assertPoint(t, "vertex", all[i], w[0], w[1])
	}
}

func TestLineBevelCaps(t *testing.T) {
	all, _ := collect(RoundBorderLineTriList(3, Identity, Vec2{0, 0}, Vec2{10, 0}, 2))
	require.Len(t, all, 3*4)
	assertPoint(t, "hub", all[0], 0, 2)
	assertPoint(t, "near tip", all[1], -2, 0)
	assertPoint(t, "far tip", all[8], 12, 0)
}

func TestLineRoundCapsStayOnCapsule(t *testing.T) {
	all, _ := collect(RoundBorderLineTriList(8, Identity, Vec2{0, 0}, Vec2{10, 0}, 2))
	require.Len(t, all, 3*14)
	for i, p := range all {
		x := min(max(float64(p[0]), 0), 10)
		assert.InDeltaf(t, 2, dist(p, x, 0), 1e-4, "vertex %d = %v", i, p)
	}
}
