package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
)

const maxVehicles = 256

// Reader provides read-only access to vehicle specifications.
type Reader interface {
	Lookup(name string) (calculator.VehicleSpec, error)
	List() []calculator.VehicleSpec
}

// Catalog is an immutable set of vehicle specifications keyed by name.
// Lookups are case-insensitive and ignore surrounding whitespace.
type Catalog struct {
	vehicles map[string]calculator.VehicleSpec
	ordered  []calculator.VehicleSpec
}

// New validates specs and builds a Catalog from a copy of them. Capacity values
// are not checked here; the calculator rejects unusable vehicles at calculation time.
func New(specs []calculator.VehicleSpec) (*Catalog, error) {
	if len(specs) == 0 || len(specs) > maxVehicles {
		return nil, fmt.Errorf("%w: expected between 1 and %d vehicles, got %d", ErrInvalidCatalog, maxVehicles, len(specs))
	}

	vehicles := make(map[string]calculator.VehicleSpec, len(specs))
	ordered := make([]calculator.VehicleSpec, 0, len(specs))
	for _, spec := range specs {
		spec.Name = strings.TrimSpace(spec.Name)
		key := normalizeName(spec.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: vehicle name cannot be empty", ErrInvalidCatalog)
		}
		if _, dup := vehicles[key]; dup {
			return nil, fmt.Errorf("%w: duplicate vehicle %q", ErrInvalidCatalog, spec.Name)
		}
		vehicles[key] = spec
		ordered = append(ordered, spec)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})

	return &Catalog{vehicles: vehicles, ordered: ordered}, nil
}

// Lookup returns the specification registered under name.
func (c *Catalog) Lookup(name string) (calculator.VehicleSpec, error) {
	spec, ok := c.vehicles[normalizeName(name)]
	if !ok {
		return calculator.VehicleSpec{}, fmt.Errorf("%w: %q", ErrVehicleNotFound, name)
	}
	return spec, nil
}

// List returns a copy of all specifications sorted by name.
func (c *Catalog) List() []calculator.VehicleSpec {
	out := make([]calculator.VehicleSpec, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len reports the number of vehicles in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
