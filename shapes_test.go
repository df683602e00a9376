package quill

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

var (
	red  = Color{R: 1, A: 1}
	blue = Color{B: 1, A: 1}
)

func TestRectangleSquare(t *testing.T) {
	var r recordRenderer
	Rectangle{Color: red}.Draw(Rect{Width: 10, Height: 20}, DefaultDrawState, Identity, &r)
	require.Len(t, r.calls, 1)
	assert.Equal(t, red, r.calls[0].color)
	assert.Len(t, r.calls[0].vertices, 6)
}

func TestRectangleWithBorder(t *testing.T) {
	var r recordRenderer
	rect := Rectangle{Color: red, Border: &Border{Color: blue, Radius: 1}}
	rect.Draw(Rect{Width: 10, Height: 20}, DefaultDrawState, Identity, &r)
	require.Len(t, r.calls, 2)
	assert.Equal(t, red, r.calls[0].color, "fill first")
	assert.Equal(t, blue, r.calls[1].color)
	assert.Len(t, r.calls[1].vertices, 24)
}

func TestRectangleCorners(t *testing.T) {
	tests := []struct {
		name  string
		shape RectShape
		verts int
	}{
		{"round", RoundCorners(4, 4), 3 * (16 - 2)},
		{"bevel", BevelCorners(4), 3 * (8 - 2)},
		{"round default", RoundCorners(4, 0), 3 * (4*defaultCornerResolution - 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recordRenderer
			Rectangle{Color: red, Shape: tt.shape}.Draw(Rect{Width: 40, Height: 40}, DefaultDrawState, Identity, &r)
			assert.Equal(t, tt.verts, r.vertexCount())
		})
	}
}

func TestRectangleRoundBorder(t *testing.T) {
	var r recordRenderer
	rect := Rectangle{Shape: RoundCorners(4, 4), Border: &Border{Color: blue, Radius: 1}}
	rect.Draw(Rect{Width: 40, Height: 40}, DefaultDrawState, Identity, &r)
	// Transparent fill is skipped; only the border ribbon is drawn.
	require.Len(t, r.calls, 1)
	assert.Len(t, r.calls[0].vertices, 6*16)
}

func TestTransparentShapesDrawNothing(t *testing.T) {
	var r recordRenderer
	ds := DefaultDrawState
	Rectangle{}.Draw(Rect{Width: 1, Height: 1}, ds, Identity, &r)
	Rectangle{Border: &Border{Radius: 1}}.Draw(Rect{Width: 1, Height: 1}, ds, Identity, &r)
	Ellipse{}.Draw(Rect{Width: 1, Height: 1}, ds, Identity, &r)
	CircleArc{End: 1}.Draw(Rect{Width: 1, Height: 1}, ds, Identity, &r)
	Line{Radius: 1}.Draw(Vec2{}, Vec2{1, 1}, ds, Identity, &r)
	Polygon{}.Draw(polygonN(5), ds, Identity, &r)
	Polygon{}.DrawTween([][]Vec2{polygonN(5)}, 0, ds, Identity, &r)
	Image{}.Draw(sizedTexture(image.Rect(0, 0, 4, 4)), ds, Identity, &r)
	assert.Empty(t, r.calls)
}

func TestEllipseDefaultResolution(t *testing.T) {
	var r recordRenderer
	Ellipse{Color: red, Border: &Border{Color: blue, Radius: 1}}.Draw(Square(0, 0, 10), DefaultDrawState, Identity, &r)
	var fill, border int
	for _, c := range r.calls {
		if c.color == red {
			fill += len(c.vertices)
		} else {
			border += len(c.vertices)
		}
	}
	assert.Equal(t, 3*(defaultEllipseResolution-2), fill)
	assert.Equal(t, 6*defaultEllipseResolution, border)
}

func TestCircleArc(t *testing.T) {
	var r recordRenderer
	CircleArc{Color: red, Radius: 1, End: 1, Resolution: 16}.Draw(Square(0, 0, 10), DefaultDrawState, Identity, &r)
	assert.Equal(t, 6*3, r.vertexCount())
}

func TestLineCaps(t *testing.T) {
	tests := []struct {
		name  string
		line  Line
		verts int
	}{
		{"square", Line{Color: red, Radius: 1, Cap: LineSquare}, 6},
		{"bevel", Line{Color: red, Radius: 1, Cap: LineBevel}, 12},
		{"round", Line{Color: red, Radius: 1, Cap: LineRound, Resolution: 8}, 3 * 14},
		{"round default", Line{Color: red, Radius: 1, Cap: LineRound}, 3 * (2*defaultCapResolution - 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recordRenderer
			tt.line.Draw(Vec2{}, Vec2{10, 0}, DefaultDrawState, Identity, &r)
			assert.Equal(t, tt.verts, r.vertexCount())
		})
	}
}

func TestSettingsChangeShapeDefaults(t *testing.T) {
	s := DefaultSettings()
	s.EllipseResolution = 8
	SetSettings(s)
	t.Cleanup(func() { SetSettings(DefaultSettings()) })

	var r recordRenderer
	Ellipse{Color: red}.Draw(Square(0, 0, 10), DefaultDrawState, Identity, &r)
	assert.Equal(t, 3*6, r.vertexCount())
}

func TestPolygonDrawTween(t *testing.T) {
	var r recordRenderer
	frames := [][]Vec2{
		{{0, 0}, {10, 0}, {10, 10}},
		{{0, 0}, {20, 0}, {20, 20}},
	}
	Polygon{Color: red}.DrawTween(frames, 0.25, DefaultDrawState, Identity, &r)
	require.Len(t, r.calls, 1)
	assert.Equal(t, f32.Vec2{15, 15}, r.calls[0].vertices[2])
}

func TestDrawStatePassedThrough(t *testing.T) {
	var r recordRenderer
	clip := image.Rect(0, 0, 5, 5)
	ds := DrawState{Blend: BlendAdd, Clip: &clip}
	Polygon{Color: red}.Draw(polygonN(4), ds, Identity, &r)
	require.Len(t, r.calls, 1)
	assert.Equal(t, ds, r.calls[0].ds)
}

func TestImageWholeTexture(t *testing.T) {
	var r recordRenderer
	tex := sizedTexture(image.Rect(0, 0, 8, 4))
	NewImage().Draw(tex, DefaultDrawState, Translate(1, 2), &r)
	require.Len(t, r.calls, 1)
	c := r.calls[0]
	assert.Equal(t, ColorWhite, c.color)
	assert.Equal(t, Texture(tex), c.tex)
	assert.Equal(t, f32.Vec2{1, 2}, c.vertices[0])
	assert.Equal(t, f32.Vec2{9, 6}, c.vertices[4])
	assert.Equal(t, f32.Vec2{0, 0}, c.uvs[0])
	assert.Equal(t, f32.Vec2{1, 1}, c.uvs[4])
}

func TestImageSourceAndDestination(t *testing.T) {
	var r recordRenderer
	tex := sizedTexture(image.Rect(0, 0, 8, 8))
	im := Image{
		Color:      red,
		SourceRect: &Rect{X: 4, Y: 0, Width: 4, Height: 4},
		Rect:       &Rect{X: 10, Y: 10, Width: 20, Height: 20},
	}
	im.Draw(tex, DefaultDrawState, Identity, &r)
	require.Len(t, r.calls, 1)
	c := r.calls[0]
	assert.Equal(t, f32.Vec2{10, 10}, c.vertices[0])
	assert.Equal(t, f32.Vec2{30, 30}, c.vertices[4])
	assert.Equal(t, f32.Vec2{0.5, 0}, c.uvs[0])
	assert.Equal(t, f32.Vec2{1, 0.5}, c.uvs[4])
}
