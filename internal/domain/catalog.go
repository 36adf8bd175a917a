// Package domain contains the core data types for the CSR assistant:
// the service catalog, appointments, booking slots and their errors.
// Apart from uuid it has no external dependencies and is imported by
// every other internal package.
package domain

import (
	"slices"
	"strings"
)

// Service identifies a kind of work the company performs, e.g. "plumbing".
// Services are always stored lowercase; use Catalog.LookupService to turn
// user input into a Service.
type Service string

// Technician is a field worker who performs a set of services within a set
// of zip codes. Technicians are immutable once the catalog is built.
type Technician struct {
	Name     string
	Services []Service
	ZipCodes []string
}

// Offers reports whether the technician performs service s.
func (t Technician) Offers(s Service) bool {
	return slices.Contains(t.Services, s)
}

// Covers reports whether the technician works in zip.
func (t Technician) Covers(zip string) bool {
	return slices.Contains(t.ZipCodes, zip)
}

// Catalog is the static reference data: services offered, zip codes
// served, and the technicians in declaration order. A Catalog is built
// once at startup and never mutated; accessors return copies so callers
// cannot alter it either.
type Catalog struct {
	services    []Service
	zipCodes    []string
	technicians []Technician
}

// NewCatalog builds a Catalog from already-validated data.
// Use catalog.Load or catalog.Parse to build one from a file.
func NewCatalog(services []Service, zipCodes []string, technicians []Technician) *Catalog {
	techs := make([]Technician, len(technicians))
	for i, t := range technicians {
		techs[i] = Technician{
			Name:     t.Name,
			Services: slices.Clone(t.Services),
			ZipCodes: slices.Clone(t.ZipCodes),
		}
	}
	return &Catalog{
		services:    slices.Clone(services),
		zipCodes:    slices.Clone(zipCodes),
		technicians: techs,
	}
}

// Services returns the services offered, in catalog order.
func (c *Catalog) Services() []Service {
	return slices.Clone(c.services)
}

// ServiceNames returns Services as plain strings.
func (c *Catalog) ServiceNames() []string {
	out := make([]string, len(c.services))
	for i, s := range c.services {
		out[i] = string(s)
	}
	return out
}

// ZipCodes returns the zip codes served, in catalog order.
func (c *Catalog) ZipCodes() []string {
	return slices.Clone(c.zipCodes)
}

// Technicians returns the technicians in catalog declaration order.
func (c *Catalog) Technicians() []Technician {
	out := make([]Technician, len(c.technicians))
	for i, t := range c.technicians {
		out[i] = Technician{
			Name:     t.Name,
			Services: slices.Clone(t.Services),
			ZipCodes: slices.Clone(t.ZipCodes),
		}
	}
	return out
}

// LookupService matches name against the catalog case-insensitively,
// ignoring surrounding whitespace.
func (c *Catalog) LookupService(name string) (Service, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range c.services {
		if string(s) == want {
			return s, true
		}
	}
	return "", false
}

// Serves reports whether zip is in the served set.
func (c *Catalog) Serves(zip string) bool {
	return slices.Contains(c.zipCodes, strings.TrimSpace(zip))
}

// Qualified returns the technicians that offer s and cover zip, in
// catalog order. The returned technicians share their slices with the
// catalog and must not be modified.
func (c *Catalog) Qualified(s Service, zip string) []Technician {
	var out []Technician
	for _, t := range c.technicians {
		if t.Offers(s) && t.Covers(zip) {
			out = append(out, t)
		}
	}
	return out
}
