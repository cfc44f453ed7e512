package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gfx/render"
)

func TestSoftwareRegistered(t *testing.T) {
	if !IsRegistered(NameSoftware) {
		t.Fatal("software backend not registered")
	}
	if !slices.Contains(Available(), NameSoftware) {
		t.Errorf("Available() = %v, want it to contain %q", Available(), NameSoftware)
	}
	if got := DefaultName(); got != NameSoftware {
		t.Errorf("DefaultName() = %q, want %q", got, NameSoftware)
	}

	b, err := Get(NameSoftware)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*Software); !ok {
		t.Errorf("Get(%q) = %T, want *Software", NameSoftware, b)
	}
	if MustDefault() == nil {
		t.Error("MustDefault() = nil")
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("vulkan-9000")
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Get(unknown) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegisterUnregister(t *testing.T) {
	const name = "test-recorder"
	Register(name, func() render.Backend { return NewSoftware() })
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Fatalf("%q not registered", name)
	}
	if got := DefaultName(); got != NameSoftware {
		t.Errorf("DefaultName() = %q, want priority backend %q", got, NameSoftware)
	}

	Unregister(name)
	if IsRegistered(name) {
		t.Errorf("%q still registered after Unregister", name)
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a, err := Get(NameSoftware)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Get(NameSoftware)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("Get returned the same instance twice")
	}
}
