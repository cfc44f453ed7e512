package display

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned for catalog entries with a non-positive size
// or a negative adapter, bit depth or refresh rate.
var ErrInvalidMode = errors.New("display: invalid mode")

// FullscreenPenalty is added to the distance of a candidate whose
// fullscreen flag differs from the request. It outweighs any realistic
// resolution difference, so a matching flag is preferred first.
const FullscreenPenalty = 1 << 24

// Mode is one display configuration.
type Mode struct {
	Adapter     int  `yaml:"adapter" toml:"adapter"`
	Width       int  `yaml:"width" toml:"width"`
	Height      int  `yaml:"height" toml:"height"`
	Fullscreen  bool `yaml:"fullscreen" toml:"fullscreen"`
	BitDepth    int  `yaml:"bit_depth" toml:"bit_depth"`
	RefreshRate int  `yaml:"refresh_rate" toml:"refresh_rate"`
}

// Validate reports whether m describes a usable mode.
func (m Mode) Validate() error {
	switch {
	case m.Width <= 0 || m.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidMode, m.Width, m.Height)
	case m.Adapter < 0:
		return fmt.Errorf("%w: adapter %d", ErrInvalidMode, m.Adapter)
	case m.BitDepth < 0 || m.RefreshRate < 0:
		return fmt.Errorf("%w: %d bpp at %d Hz", ErrInvalidMode, m.BitDepth, m.RefreshRate)
	}
	return nil
}

// String formats m as e.g. "1920x1080 fullscreen 32bpp@60Hz adapter 0".
func (m Mode) String() string {
	kind := "windowed"
	if m.Fullscreen {
		kind = "fullscreen"
	}
	return fmt.Sprintf("%dx%d %s %dbpp@%dHz adapter %d",
		m.Width, m.Height, kind, m.BitDepth, m.RefreshRate, m.Adapter)
}

// Catalog lists the modes an adapter set supports, in platform order.
type Catalog []Mode

// Find returns the mode nearest to the request.
//
// Only entries at least width x height are candidates; a request larger
// than every entry, or with a non-positive size, matches nothing. An entry
// with the requested size and fullscreen flag is an exact match. Otherwise
// the distance is the surplus width plus surplus height, plus
// FullscreenPenalty if the fullscreen flag differs. Ties prefer the higher
// refresh rate, then the higher bit depth, then the lower adapter, then
// catalog order.
//
// A fullscreen entry is returned as is. A windowed entry stands for a
// desktop the window fits on, so the result keeps its adapter, depth and
// refresh rate but carries the requested size.
func (c Catalog) Find(width, height int, fullscreen bool) (Mode, bool) {
	if width <= 0 || height <= 0 {
		return Mode{}, false
	}

	best, bestDist := -1, 0
	for i, m := range c {
		if m.Validate() != nil || m.Width < width || m.Height < height {
			continue
		}
		d := (m.Width - width) + (m.Height - height)
		if m.Fullscreen != fullscreen {
			d += FullscreenPenalty
		}
		if best < 0 || d < bestDist || (d == bestDist && preferred(m, c[best])) {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Mode{}, false
	}

	m := c[best]
	if !m.Fullscreen {
		m.Width, m.Height = width, height
	}
	return m, true
}

// preferred reports whether a wins the tie against b. Equal entries keep
// catalog order.
func preferred(a, b Mode) bool {
	if a.RefreshRate != b.RefreshRate {
		return a.RefreshRate > b.RefreshRate
	}
	if a.BitDepth != b.BitDepth {
		return a.BitDepth > b.BitDepth
	}
	return a.Adapter < b.Adapter
}

// Validate checks every entry.
func (c Catalog) Validate() error {
	for i, m := range c {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mode %d: %w", i, err)
		}
	}
	return nil
}
