package calculator

// VehicleSpec describes the capacity profile of a single wagon type.
// CubePerStillage and WeightPerStillage are the volume and mass one
// stillage-equivalent is assumed to occupy on this vehicle type.
type VehicleSpec struct {
	Name                   string  `json:"name"`
	FloorCapacityStillages float64 `json:"floorCapacityStillages"`
	CubeCapacity           float64 `json:"cubeCapacity"`
	WeightCapacity         float64 `json:"weightCapacity"`
	CubePerStillage        float64 `json:"cubePerStillage"`
	WeightPerStillage      float64 `json:"weightPerStillage"`
}

// LoadInput is the load placed on a vehicle. Zero values are valid.
type LoadInput struct {
	Doors   int     `json:"doors"`
	Pallets float64 `json:"pallets"`
}

// Report is the utilisation of a vehicle for a given load. Percentages are
// unrounded; rounding belongs to the presentation layer.
type Report struct {
	StillageEquivalent   float64 `json:"stillageEquivalent"`
	FloorUtilisationPct  float64 `json:"floorUtilisationPct"`
	CubeUtilisationPct   float64 `json:"cubeUtilisationPct"`
	WeightUtilisationPct float64 `json:"weightUtilisationPct"`

	StillagesNeeded         int     `json:"stillagesNeeded"`
	LargePalletsUsed        float64 `json:"largePalletsUsed"`
	FloorCapacityPallets    float64 `json:"floorCapacityPallets"`
	FloorRemainingStillages float64 `json:"floorRemainingStillages"`
	OverCapacity            bool    `json:"overCapacity"`
}

// Calculator describes the behaviour required from a utilisation calculator.
type Calculator interface {
	Calculate(spec VehicleSpec, in LoadInput) (Report, error)
}
