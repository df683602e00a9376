package quill

import (
	"fmt"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the package-wide defaults used when a shape or atlas leaves
// a field at its zero value.
type Settings struct {
	// EllipseResolution is the point count for ellipses and arcs (default 128).
	EllipseResolution int `toml:"ellipse_resolution"`
	// CornerResolution is the step count per rounded corner (default 32).
	CornerResolution int `toml:"corner_resolution"`
	// CapResolution is the step count per round line cap (default 32).
	CapResolution int `toml:"cap_resolution"`

	Atlas AtlasConfig `toml:"atlas"`
}

// AtlasConfig controls how an AtlasCache sizes and creates pages.
type AtlasConfig struct {
	// PageSize is the minimum width and height of a new page (default 1024).
	// A tile larger than this gets a page sized to the tile.
	PageSize int `toml:"page_size"`
	// MaxTextureSize bounds page dimensions (default 4096).
	MaxTextureSize int `toml:"max_texture_size"`
	// Filter is the sampling filter new pages are created with.
	Filter Filter `toml:"filter"`
}

const (
	defaultEllipseResolution = 128
	defaultCornerResolution  = 32
	defaultCapResolution     = 32
	defaultPageSize          = 1024
	defaultMaxTextureSize    = 4096
)

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		EllipseResolution: defaultEllipseResolution,
		CornerResolution:  defaultCornerResolution,
		CapResolution:     defaultCapResolution,
		Atlas: AtlasConfig{
			PageSize:       defaultPageSize,
			MaxTextureSize: defaultMaxTextureSize,
			Filter:         FilterLinear,
		},
	}
}

// withDefaults replaces non-positive fields with their defaults.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.EllipseResolution <= 0 {
		s.EllipseResolution = d.EllipseResolution
	}
	if s.CornerResolution <= 0 {
		s.CornerResolution = d.CornerResolution
	}
	if s.CapResolution <= 0 {
		s.CapResolution = d.CapResolution
	}
	s.Atlas = s.Atlas.withDefaults()
	return s
}

func (c AtlasConfig) withDefaults() AtlasConfig {
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.MaxTextureSize <= 0 {
		c.MaxTextureSize = defaultMaxTextureSize
	}
	if c.PageSize > c.MaxTextureSize {
		c.PageSize = c.MaxTextureSize
	}
	return c
}

// LoadSettings decodes TOML into Settings. Keys that are absent or
// non-positive keep their defaults.
//
//	ellipse_resolution = 64
//
//	[atlas]
//	page_size = 512
//	filter = "nearest"
func LoadSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("quill: parse settings: %w", err)
	}
	return s.withDefaults(), nil
}

var settingsPtr atomic.Pointer[Settings]

func init() {
	s := DefaultSettings()
	settingsPtr.Store(&s)
}

// SetSettings replaces the package defaults used by shapes that leave
// resolutions at zero.
func SetSettings(s Settings) {
	s = s.withDefaults()
	settingsPtr.Store(&s)
}

// CurrentSettings returns the active package defaults.
func CurrentSettings() Settings {
	return *settingsPtr.Load()
}

func settings() *Settings {
	return settingsPtr.Load()
}
