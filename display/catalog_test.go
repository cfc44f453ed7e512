package display

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCatalogFile(t *testing.T) {
	want := Catalog{
		{Adapter: 0, Width: 1920, Height: 1080, BitDepth: 32, RefreshRate: 60},
		{Adapter: 0, Width: 1280, Height: 720, Fullscreen: true, BitDepth: 32, RefreshRate: 60},
		{Adapter: 1, Width: 2560, Height: 1440, Fullscreen: true, BitDepth: 32, RefreshRate: 144},
	}

	for _, name := range []string{"modes.yaml", "modes.toml"} {
		t.Run(name, func(t *testing.T) {
			got, err := LoadCatalogFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("LoadCatalogFile() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("mode %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		path string
		want error
	}{
		{"testdata/invalid.toml", ErrInvalidMode},
		{"testdata/modes.json", ErrUnknownFormat},
	}
	for _, tt := range tests {
		if _, err := LoadCatalogFile(tt.path); !errors.Is(err, tt.want) {
			t.Errorf("LoadCatalogFile(%q) error = %v, want %v", tt.path, err, tt.want)
		}
	}

	if _, err := LoadCatalogFile("testdata/unknown_key.yaml"); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := LoadCatalogFile("testdata/missing.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadCatalogReader(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(""), FormatYAML)
	if err != nil || len(c) != 0 {
		t.Errorf("empty yaml = %v, %v, want empty catalog", c, err)
	}

	src := "[[modes]]\nwidth = 320\nheight = 200\nfullscreen = true\n"
	c, err = LoadCatalog(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := c.Find(320, 200, true); !ok || m.Width != 320 {
		t.Errorf("Find() = %v, %v", m, ok)
	}

	if _, err := LoadCatalog(strings.NewReader(src), Format(9)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format error = %v, want ErrUnknownFormat", err)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	m, ok := c.Find(640, 480, true)
	if !ok || m.Width != 640 || m.Height != 480 || !m.Fullscreen {
		t.Errorf("Find(640, 480, fullscreen) = %v, %v", m, ok)
	}
	m, ok = c.Find(1000, 700, false)
	if !ok || m.Fullscreen || m.Width != 1000 {
		t.Errorf("Find(1000, 700, windowed) = %v, %v", m, ok)
	}
}
