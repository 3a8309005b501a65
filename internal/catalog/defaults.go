package catalog

import "github.com/eugenenazirov/wagon-calculator/internal/calculator"

// defaultEntries is the built-in sample catalog used when no catalog file or
// inline vehicles are configured. Floor capacity is declared in 2.8m large pallets.
var defaultEntries = []Entry{
	{
		Name:                 "Standard wagon",
		FloorCapacityPallets: 26,
		CubeCapacity:         170,
		WeightCapacity:       28000,
		CubePerStillage:      14,
		WeightPerStillage:    650,
	},
	{
		Name:                 "Pocket wagon",
		FloorCapacityPallets: 32,
		CubeCapacity:         200,
		WeightCapacity:       33000,
		CubePerStillage:      14,
		WeightPerStillage:    650,
	},
	{
		Name:                 "Curtainsider wagon",
		FloorCapacityPallets: 38,
		CubeCapacity:         240,
		WeightCapacity:       40000,
		CubePerStillage:      14,
		WeightPerStillage:    650,
	},
}

// DefaultVehicles returns a copy of the built-in vehicle specifications.
func DefaultVehicles() []calculator.VehicleSpec {
	specs, err := Specs(defaultEntries)
	if err != nil {
		panic(err)
	}
	return specs
}
