// Package partfile builds parts from YAML or TOML definition files.
package partfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Simplici0/masscalc/internal/material"
	"github.com/Simplici0/masscalc/internal/part"
	"github.com/Simplici0/masscalc/internal/pricing"
	"github.com/Simplici0/masscalc/internal/seed"
)

var (
	// ErrUnknownMaterial is returned when a node names a material missing from the catalog.
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .toml.
	ErrUnsupportedFormat = errors.New("unsupported part file format")
)

// Format is a definition file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Options controls how records become parts.
type Options struct {
	// Catalog receives the default and file materials. Nil means a fresh catalog.
	Catalog *material.Catalog
	// UnitThickness is the thickness surface costs are quoted for; zero means the default.
	UnitThickness float64
	// Pricing is applied to every part; zero means the default parameters.
	Pricing pricing.Params
	Logger  *slog.Logger
}

// Load reads, decodes and builds the parts of the file at path. Parts that
// fail to build are left out; their errors are combined into the returned
// error next to the parts that did build.
func Load(path string, opts Options) ([]*part.Part, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Build(opts)
}

// ReadFile reads and decodes the file at path without building anything.
func ReadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read part file: %w", err)
	}
	return Decode(data, format)
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse part file: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse part file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	return &f, nil
}

// SeedCatalog merges the default and file materials into cat.
func (f *File) SeedCatalog(cat *material.Catalog) (seed.Stats, error) {
	overrides := make([]material.Material, 0, len(f.Materials))
	for i, r := range f.Materials {
		m, err := material.New(r.Name, r.Density, r.Cost)
		if err != nil {
			return seed.Stats{}, fmt.Errorf("material %d: %w", i, err)
		}
		overrides = append(overrides, m)
	}
	stats, err := seed.Run(cat, overrides)
	if err != nil {
		return seed.Stats{}, fmt.Errorf("seed materials: %w", err)
	}
	return stats, nil
}

// Build merges the file materials into the catalog and builds every part.
// Invalid materials abort the whole file and yield a nil slice; otherwise the
// slice is non-nil even when every part failed.
func (f *File) Build(opts Options) ([]*part.Part, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = material.NewCatalog()
	}

	stats, err := f.SeedCatalog(cat)
	if err != nil {
		return nil, err
	}
	logger.Debug("materials loaded", "inserted", stats.Inserts, "updated", stats.Updates)

	b := builder{catalog: cat, unitThickness: opts.UnitThickness}
	parts := make([]*part.Part, 0, len(f.Parts))
	seen := make(map[string]bool, len(f.Parts))
	var errs error
	for i, r := range f.Parts {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if seen[name] {
			err := fmt.Errorf("part %q: defined more than once", name)
			logger.Warn("skipping part", "part", name, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		seen[name] = true

		p, err := b.part(name, r, opts.Pricing)
		if err != nil {
			logger.Warn("skipping part", "part", name, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		parts = append(parts, p)
	}
	return parts, errs
}
