package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
)

// Entry is the on-disk representation of a vehicle. Floor capacity may be
// given in stillages or in large pallets, but not both.
type Entry struct {
	Name                   string  `yaml:"name"`
	FloorCapacityStillages float64 `yaml:"floor_capacity_stillages"`
	FloorCapacityPallets   float64 `yaml:"floor_capacity_pallets"`
	CubeCapacity           float64 `yaml:"cube_capacity"`
	WeightCapacity         float64 `yaml:"weight_capacity"`
	CubePerStillage        float64 `yaml:"cube_per_stillage"`
	WeightPerStillage      float64 `yaml:"weight_per_stillage"`
}

// file represents the YAML catalog file structure.
type file struct {
	Vehicles []Entry `yaml:"vehicles"`
}

// Spec converts the entry to a VehicleSpec.
func (e Entry) Spec() (calculator.VehicleSpec, error) {
	floor := e.FloorCapacityStillages
	if e.FloorCapacityPallets != 0 {
		if floor != 0 {
			return calculator.VehicleSpec{}, fmt.Errorf("%w: %q declares floor capacity in both stillages and pallets", ErrInvalidCatalog, e.Name)
		}
		floor = calculator.StillagesFromPallets(e.FloorCapacityPallets)
	}

	return calculator.VehicleSpec{
		Name:                   e.Name,
		FloorCapacityStillages: floor,
		CubeCapacity:           e.CubeCapacity,
		WeightCapacity:         e.WeightCapacity,
		CubePerStillage:        e.CubePerStillage,
		WeightPerStillage:      e.WeightPerStillage,
	}, nil
}

// Specs converts entries to vehicle specifications.
func Specs(entries []Entry) ([]calculator.VehicleSpec, error) {
	specs := make([]calculator.VehicleSpec, 0, len(entries))
	for _, e := range entries {
		spec, err := e.Spec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadFile reads vehicle specifications from a YAML catalog file.
func LoadFile(path string) ([]calculator.VehicleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Vehicles) == 0 {
		return nil, fmt.Errorf("%w: %s contains no vehicles", ErrInvalidCatalog, path)
	}

	return Specs(f.Vehicles)
}
