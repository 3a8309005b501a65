package calculator

import (
	"fmt"
	"math"
)

const (
	// DoorsPerStillage is the maximum number of doors packed into one stillage.
	DoorsPerStillage = 14
	// PalletsPerStillage is the number of 2.8m large pallets that take the same
	// floor space as one stillage.
	PalletsPerStillage = 2.25
	// LargePalletLengthM is the length of a large pallet in metres.
	LargePalletLengthM = 2.8
)

type ratioCalculator struct{}

// New creates a Calculator that works in stillage-equivalent floor space.
func New() Calculator {
	return &ratioCalculator{}
}

// StillageEquivalent reduces doors and large pallets to a common floor-space
// measure expressed in stillages.
func StillageEquivalent(doors int, pallets float64) float64 {
	return float64(doors)/DoorsPerStillage + pallets/PalletsPerStillage
}

// StillagesFromPallets converts a large-pallet count to stillages.
func StillagesFromPallets(pallets float64) float64 {
	return pallets / PalletsPerStillage
}

// StillagesNeeded returns how many physical stillages the doors pack into.
func StillagesNeeded(doors int) int {
	if doors <= 0 {
		return 0
	}
	n := doors / DoorsPerStillage
	if doors%DoorsPerStillage != 0 {
		n++
	}
	return n
}

func (c *ratioCalculator) Calculate(spec VehicleSpec, in LoadInput) (Report, error) {
	if err := ValidateSpec(spec); err != nil {
		return Report{}, err
	}
	if err := ValidateInput(in); err != nil {
		return Report{}, err
	}

	se := StillageEquivalent(in.Doors, in.Pallets)
	rep := Report{
		StillageEquivalent:   se,
		FloorUtilisationPct:  100 * se / spec.FloorCapacityStillages,
		CubeUtilisationPct:   100 * se * spec.CubePerStillage / spec.CubeCapacity,
		WeightUtilisationPct: 100 * se * spec.WeightPerStillage / spec.WeightCapacity,

		StillagesNeeded:         StillagesNeeded(in.Doors),
		LargePalletsUsed:        se * PalletsPerStillage,
		FloorCapacityPallets:    spec.FloorCapacityStillages * PalletsPerStillage,
		FloorRemainingStillages: spec.FloorCapacityStillages - se,
	}
	rep.OverCapacity = rep.FloorUtilisationPct > 100 ||
		rep.CubeUtilisationPct > 100 ||
		rep.WeightUtilisationPct > 100

	return rep, nil
}

// ValidateSpec checks that every capacity field of spec is a positive finite number.
func ValidateSpec(spec VehicleSpec) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"floor capacity", spec.FloorCapacityStillages},
		{"cube capacity", spec.CubeCapacity},
		{"weight capacity", spec.WeightCapacity},
		{"cube per stillage", spec.CubePerStillage},
		{"weight per stillage", spec.WeightPerStillage},
	}
	for _, f := range fields {
		if !positiveFinite(f.value) {
			return fmt.Errorf("%w: %s for %q must be positive, got %v", ErrConfiguration, f.name, spec.Name, f.value)
		}
	}
	return nil
}

// ValidateInput checks that door and pallet counts are non-negative.
func ValidateInput(in LoadInput) error {
	if in.Doors < 0 {
		return fmt.Errorf("%w: doors must be a non-negative integer, got %d", ErrInvalidInput, in.Doors)
	}
	if in.Pallets < 0 || math.IsNaN(in.Pallets) || math.IsInf(in.Pallets, 0) {
		return fmt.Errorf("%w: pallets must be a non-negative number, got %v", ErrInvalidInput, in.Pallets)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
