// Package quill turns 2D shape descriptions into flat triangle lists a
// renderer can consume, packs tiles into texture atlases, and warps meshes
// under control points. Drawing targets [Ebitengine] out of the box, but the
// core never calls a graphics API itself.
//
// # Triangulation
//
// Every shape streams its triangles as a range-over-func sequence of chunks,
// each at most [BufferSize] points. A chunk aliases a buffer owned by the
// stream and is only valid inside the loop body:
//
//	for chunk := range quill.EllipseTriList(64, m, quill.Square(0, 0, 100)) {
//		renderer.TriList(quill.DefaultDrawState, color, chunk)
//	}
//
// Polygons are fan-triangulated from their first point, so they must be
// convex (or star-shaped from that point). Borders, arcs and rings are quad
// ribbons between an outer and inner edge.
//
// Bad input does not error. Negative resolutions, NaN transforms and
// degenerate rectangles produce empty or meaningless geometry.
//
// # Shapes
//
// [Rectangle], [Ellipse], [CircleArc], [Line], [Polygon] and [Image] are
// plain style values. Their Draw methods take geometry, a [DrawState], a
// [Matrix] and a [Renderer]:
//
//	r := quill.NewEbitenRenderer(screen)
//	quill.Rectangle{Color: quill.Color{R: 1, A: 1}, Shape: quill.RoundCorners(8, 0)}.
//		Draw(quill.Rect{X: 10, Y: 10, Width: 200, Height: 80}, quill.DefaultDrawState, quill.Identity, r)
//
// # Atlases
//
// [TexturePacker] is an online skyline packer. [AtlasCache] builds on it for
// glyph and sprite loading: Insert places an image the first time a key is
// seen and creates new pages through a [TextureFactory] when the current one
// is full.
//
// # Deformation
//
// [DeformGrid] warps a grid mesh with moving least squares. Add control
// points, move them with SetCurrent (or animate them with
// [TweenControlPoint], which uses [gween]), call Update, then draw with
// DrawImage. Hit maps screen points on the warped mesh back to rest space.
//
// # Logging and settings
//
// quill is silent unless [SetLogger] is given a [log/slog] logger. Default
// resolutions and atlas page sizes come from [Settings], which can be loaded
// from TOML with [LoadSettings].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package quill
