package display

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for catalog files of an unsupported type.
var ErrUnknownFormat = errors.New("display: unknown catalog format")

// Format is a catalog file encoding.
type Format int

// Supported catalog formats.
const (
	FormatYAML Format = iota + 1
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// catalogFile is the on-disk layout of a catalog.
type catalogFile struct {
	Modes []Mode `yaml:"modes" toml:"modes"`
}

// LoadCatalog decodes a catalog. Unknown keys and invalid modes are errors.
func LoadCatalog(r io.Reader, format Format) (Catalog, error) {
	var file catalogFile

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("display: decode yaml catalog: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
			return nil, fmt.Errorf("display: decode toml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	c := Catalog(file.Modes)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCatalogFile reads a catalog from a .yaml, .yml or .toml file.
func LoadCatalogFile(path string) (Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("display: read catalog: %w", err)
	}
	c, err := LoadCatalog(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultCatalog returns common 32-bit 60 Hz modes on adapter 0 and a
// 1920x1080 desktop for windows.
func DefaultCatalog() Catalog {
	c := Catalog{}
	for _, size := range [][2]int{
		{640, 480}, {800, 600}, {1024, 768}, {1280, 720},
		{1366, 768}, {1600, 900}, {1920, 1080},
	} {
		c = append(c, Mode{Width: size[0], Height: size[1], Fullscreen: true, BitDepth: 32, RefreshRate: 60})
	}
	return append(c, Mode{Width: 1920, Height: 1080, BitDepth: 32, RefreshRate: 60})
}
