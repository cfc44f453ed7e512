package backend

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfx/render"
)

// Backend names.
const (
	// NameSoftware is the in-memory software backend.
	NameSoftware = "software"
	// NameTerminal is the tcell terminal presenter in backend/term.
	NameTerminal = "terminal"
)

// registry holds backend factories. Software wins by default because it
// needs no display; the terminal presenter takes over the tty and must be
// requested by name or be the only registration.
var registry = gpucontext.NewRegistry[render.Backend](
	gpucontext.WithPriority(NameSoftware, NameTerminal),
)

func init() {
	Register(NameSoftware, func() render.Backend {
		return NewSoftware()
	})
}

// Register registers a backend factory under name, replacing any previous
// registration. It is typically called from init functions.
func Register(name string, factory func() render.Backend) {
	registry.Register(name, factory)
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// IsRegistered reports whether a backend named name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Available returns the names of all registered backends.
func Available() []string {
	return registry.Available()
}

// Get returns a new instance of the named backend.
func Get(name string) (render.Backend, error) {
	if !registry.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	b := registry.Get(name)
	if b == nil {
		return nil, fmt.Errorf("%w: %q returned no backend", ErrBackendNotAvailable, name)
	}
	return b, nil
}

// DefaultName returns the name Default would pick, or "" if nothing is
// registered.
func DefaultName() string {
	return registry.BestName()
}

// Default returns a new instance of the best available backend, or nil if
// none is registered.
func Default() render.Backend {
	return registry.Best()
}

// MustDefault returns the default backend or panics.
func MustDefault() render.Backend {
	b := Default()
	if b == nil {
		panic("backend: no backend available")
	}
	return b
}
