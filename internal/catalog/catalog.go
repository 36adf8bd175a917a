// Package catalog loads the static service catalog (services, zip codes
// and technicians) from JSON or YAML and validates it into an immutable
// domain.Catalog.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/csr-assistant/data"
	"github.com/pkordes/csr-assistant/internal/domain"
)

// Format selects the decoder used by Parse.
type Format int

const (
	JSON Format = iota
	YAML
)

// file mirrors the on-disk schema. Top-level services and zipCodes may be
// omitted, in which case they are derived from the technicians.
type file struct {
	Services    []string         `json:"services" yaml:"services"`
	ZipCodes    []string         `json:"zipCodes" yaml:"zipCodes"`
	Technicians []technicianFile `json:"technicians" yaml:"technicians"`
}

type technicianFile struct {
	Name     string   `json:"name" yaml:"name"`
	Services []string `json:"services" yaml:"services"`
	ZipCodes []string `json:"zipCodes" yaml:"zipCodes"`
}

// Default returns the catalog embedded in the binary.
func Default() (*domain.Catalog, error) {
	c, err := Parse(data.CatalogJSON, JSON)
	if err != nil {
		return nil, fmt.Errorf("catalog.Default: %w", err)
	}
	return c, nil
}

// Load reads the catalog at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. An empty path loads Default.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	format := JSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	}
	c, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document. Unknown fields are
// rejected so typos in hand-edited files surface at startup.
func Parse(b []byte, format Format) (*domain.Catalog, error) {
	var f file
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	return build(f)
}

// build normalizes and validates the decoded file. All problems are
// reported together.
func build(f file) (*domain.Catalog, error) {
	var errs []error

	techs := make([]domain.Technician, 0, len(f.Technicians))
	for i, t := range f.Technicians {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("technician %d: name is required", i))
		}
		tech := domain.Technician{Name: name}
		for _, s := range normalize(t.Services, true) {
			tech.Services = append(tech.Services, domain.Service(s))
		}
		tech.ZipCodes = normalize(t.ZipCodes, false)
		if len(tech.Services) == 0 {
			errs = append(errs, fmt.Errorf("technician %q: at least one service is required", name))
		}
		if len(tech.ZipCodes) == 0 {
			errs = append(errs, fmt.Errorf("technician %q: at least one zip code is required", name))
		}
		if slices.ContainsFunc(techs, func(o domain.Technician) bool { return o.Name == name }) {
			errs = append(errs, fmt.Errorf("technician %q: duplicate name", name))
		}
		techs = append(techs, tech)
	}
	if len(techs) == 0 {
		errs = append(errs, errors.New("at least one technician is required"))
	}

	services := normalize(f.Services, true)
	if len(f.Services) == 0 {
		for _, t := range techs {
			for _, s := range t.Services {
				services = appendUnique(services, string(s))
			}
		}
	}
	zips := normalize(f.ZipCodes, false)
	if len(f.ZipCodes) == 0 {
		for _, t := range techs {
			for _, z := range t.ZipCodes {
				zips = appendUnique(zips, z)
			}
		}
	}
	if dup := firstDuplicate(services); dup != "" {
		errs = append(errs, fmt.Errorf("service %q listed twice", dup))
	}
	if dup := firstDuplicate(zips); dup != "" {
		errs = append(errs, fmt.Errorf("zip code %q listed twice", dup))
	}

	for _, t := range techs {
		for _, s := range t.Services {
			if !slices.Contains(services, string(s)) {
				errs = append(errs, fmt.Errorf("technician %q: service %q is not in the services list", t.Name, s))
			}
		}
		for _, z := range t.ZipCodes {
			if !slices.Contains(zips, z) {
				errs = append(errs, fmt.Errorf("technician %q: zip code %q is not in the zip code list", t.Name, z))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}

	svc := make([]domain.Service, len(services))
	for i, s := range services {
		svc[i] = domain.Service(s)
	}
	return domain.NewCatalog(svc, zips, techs), nil
}

// normalize trims entries, drops empty ones and optionally lowercases.
func normalize(in []string, lower bool) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if lower {
			s = strings.ToLower(s)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}

func firstDuplicate(list []string) string {
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		if seen[s] {
			return s
		}
		seen[s] = true
	}
	return ""
}
