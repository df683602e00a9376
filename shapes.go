package quill

// Shape descriptions. Each is a plain value holding style; geometry and the
// transform are passed to Draw. A zero Resolution selects the default from
// DefaultSettings.

// Border outlines a shape. Radius is the half-width of the stroke, applied on
// both sides of the outline.
type Border struct {
	Color  Color
	Radius float64
}

// RectKind selects how rectangle corners are drawn.
type RectKind uint8

const (
	RectSquare RectKind = iota // sharp corners
	RectRound                  // quarter-circle corners
	RectBevel                  // corners cut at 45°
)

// bevelResolution is the per-corner step count that turns a rounded corner
// into a single diagonal cut.
const bevelResolution = 2

// RectShape describes rectangle corners.
type RectShape struct {
	Kind       RectKind
	Radius     float64
	Resolution int // steps per corner for RectRound
}

// RoundCorners returns a RectShape with rounded corners.
func RoundCorners(radius float64, resolution int) RectShape {
	return RectShape{Kind: RectRound, Radius: radius, Resolution: resolution}
}

// BevelCorners returns a RectShape with cut corners.
func BevelCorners(radius float64) RectShape {
	return RectShape{Kind: RectBevel, Radius: radius}
}

func (s RectShape) cornerResolution() int {
	switch s.Kind {
	case RectBevel:
		return bevelResolution
	default:
		if s.Resolution == 0 {
			return settings().CornerResolution
		}
		return s.Resolution
	}
}

// Rectangle is a filled, optionally bordered rectangle.
type Rectangle struct {
	Color  Color
	Shape  RectShape
	Border *Border
}

// Draw renders the fill, then the border.
func (r Rectangle) Draw(rect Rect, ds DrawState, m Matrix, g Renderer) {
	if r.Color.A != 0 {
		switch r.Shape.Kind {
		case RectSquare:
			verts := RectTriList(m, rect)
			g.TriList(ds, r.Color, verts[:])
		default:
			drawStream(g, ds, r.Color, RoundRectTriList(r.Shape.cornerResolution(), m, rect, r.Shape.Radius))
		}
	}
	if b := r.Border; b != nil && b.Color.A != 0 {
		switch r.Shape.Kind {
		case RectSquare:
			verts := RectBorderTriList(m, rect, b.Radius)
			g.TriList(ds, b.Color, verts[:])
		default:
			drawStream(g, ds, b.Color, RoundRectBorderTriList(r.Shape.cornerResolution(), m, rect, r.Shape.Radius, b.Radius))
		}
	}
}

// Ellipse is a filled, optionally bordered ellipse inscribed in a rectangle.
type Ellipse struct {
	Color      Color
	Border     *Border
	Resolution int
}

func (e Ellipse) resolution() int {
	if e.Resolution == 0 {
		return settings().EllipseResolution
	}
	return e.Resolution
}

// Draw renders the ellipse inscribed in rect.
func (e Ellipse) Draw(rect Rect, ds DrawState, m Matrix, g Renderer) {
	if e.Color.A != 0 {
		drawStream(g, ds, e.Color, EllipseTriList(e.resolution(), m, rect))
	}
	if b := e.Border; b != nil && b.Color.A != 0 {
		drawStream(g, ds, b.Color, EllipseBorderTriList(e.resolution(), m, rect, b.Radius))
	}
}

// CircleArc strokes part of an ellipse outline from Start to End radians.
type CircleArc struct {
	Color      Color
	Radius     float64 // stroke half-width
	Start, End float64
	Resolution int
}

// Draw renders the arc on the ellipse inscribed in rect.
func (a CircleArc) Draw(rect Rect, ds DrawState, m Matrix, g Renderer) {
	if a.Color.A == 0 {
		return
	}
	res := a.Resolution
	if res == 0 {
		res = settings().EllipseResolution
	}
	drawStream(g, ds, a.Color, ArcTriList(a.Start, a.End, res, m, rect, a.Radius))
}

// LineCap selects how line ends are drawn.
type LineCap uint8

const (
	LineSquare LineCap = iota // flat ends flush with the endpoints
	LineRound                 // half-circle ends
	LineBevel                 // pointed ends
)

// Line is a stroked segment.
type Line struct {
	Color      Color
	Radius     float64 // half-width
	Cap        LineCap
	Resolution int // cap steps for LineRound
}

func (l Line) capResolution() int {
	switch l.Cap {
	case LineSquare:
		return 2
	case LineBevel:
		return 3
	default:
		if l.Resolution == 0 {
			return settings().CapResolution
		}
		return l.Resolution
	}
}

// Draw renders the segment from a to b.
func (l Line) Draw(a, b Vec2, ds DrawState, m Matrix, g Renderer) {
	if l.Color.A == 0 {
		return
	}
	drawStream(g, ds, l.Color, RoundBorderLineTriList(l.capResolution(), m, a, b, l.Radius))
}

// Polygon fills a convex outline.
type Polygon struct {
	Color Color
}

// Draw fan-triangulates points.
func (p Polygon) Draw(points []Vec2, ds DrawState, m Matrix, g Renderer) {
	if p.Color.A == 0 {
		return
	}
	drawStream(g, ds, p.Color, PolygonTriList(m, points))
}

// DrawTween draws the blend of keyframe polygons at tween factor t.
func (p Polygon) DrawTween(polygons [][]Vec2, t float64, ds DrawState, m Matrix, g Renderer) {
	if p.Color.A == 0 {
		return
	}
	drawStream(g, ds, p.Color, LerpPolygonsTriList(m, polygons, t))
}

// Image draws a texture, or part of one, into a rectangle.
type Image struct {
	Color Color
	// SourceRect selects texels; nil uses the whole texture.
	SourceRect *Rect
	// Rect is the destination; nil uses the source size at the origin.
	Rect *Rect
}

// NewImage returns an untinted Image.
func NewImage() Image {
	return Image{Color: ColorWhite}
}

// Draw renders tex.
func (im Image) Draw(tex Texture, ds DrawState, m Matrix, g Renderer) {
	if im.Color.A == 0 {
		return
	}
	size := tex.Bounds().Size()
	src := Rect{Width: float64(size.X), Height: float64(size.Y)}
	if im.SourceRect != nil {
		src = *im.SourceRect
	}
	dst := Rect{Width: src.Width, Height: src.Height}
	if im.Rect != nil {
		dst = *im.Rect
	}
	verts := RectTriList(m, dst)
	uvs := RectTriListUV(size, src)
	g.TriListUV(ds, im.Color, tex, verts[:], uvs[:])
}
