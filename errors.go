package quill

import "errors"

var (
	// ErrEmptyTile is returned when a tile with no pixels is inserted.
	ErrEmptyTile = errors.New("quill: empty tile")

	// ErrTextureTooLarge is returned when a tile cannot fit any page within
	// AtlasConfig.MaxTextureSize.
	ErrTextureTooLarge = errors.New("quill: texture too large")

	// ErrInvalidTextureSize is returned by a TextureFactory for a
	// non-positive size or a pixel buffer that does not match it.
	ErrInvalidTextureSize = errors.New("quill: invalid texture size")

	// ErrUnsupportedFormat is returned by a TextureFactory for a pixel
	// format it cannot upload.
	ErrUnsupportedFormat = errors.New("quill: unsupported pixel format")
)
