package gfx

import "github.com/gogpu/gfx/render"

// Option configures a Graphics during creation.
//
// Example:
//
//	// Default backend, virtual resolution equal to the device size
//	g, err := gfx.New(mode)
//
//	// Terminal backend with a fixed 320x240 virtual canvas
//	g, err := gfx.New(mode, gfx.WithBackendName("terminal"), gfx.WithVirtualResolution(320, 240))
type Option func(*options)

// options holds optional configuration for Graphics creation.
type options struct {
	backend      render.Backend
	backendName  string
	pageSize     int
	virtualW     float64
	virtualH     float64
	virtualIsSet bool
}

// defaultOptions returns the default graphics options.
func defaultOptions() options {
	return options{
		backend:  nil, // resolved from backendName or the registry default
		pageSize: 0,   // atlas.DefaultPageSize
	}
}

// WithBackend sets the backend the Graphics draws into. The Graphics takes
// ownership and closes it on Close. WithBackend overrides WithBackendName.
//
// Example:
//
//	sw := backend.NewSoftware()
//	g, err := gfx.New(mode, gfx.WithBackend(sw))
func WithBackend(b render.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithBackendName selects a registered backend by name, such as "software"
// or "terminal". Without it the highest priority registered backend is used.
func WithBackendName(name string) Option {
	return func(o *options) {
		o.backendName = name
	}
}

// WithAtlasPageSize sets the side length of texture atlas pages in pixels.
// Non-positive values keep the default.
func WithAtlasPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// WithVirtualResolution sets the initial virtual resolution. New validates
// it the same way SetVirtualResolution does.
func WithVirtualResolution(width, height float64) Option {
	return func(o *options) {
		o.virtualW = width
		o.virtualH = height
		o.virtualIsSet = true
	}
}
