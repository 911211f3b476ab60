package footprint

import (
	"maps"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

// Emission factors in kg CO2e per unit.
const (
	ElectricityFactor = 0.5    // per kWh
	GasFactor         = 2.0    // per cubic meter
	MeatFactor        = 27.0   // per kg
	VegetarianFactor  = 2.0    // per meal
	LandfillFactor    = 0.5    // per kg
	RecycledFactor    = -0.2   // per kg, carbon saved
	WaterFactor       = 0.0003 // per liter

	DefaultRenewableFactor = -0.5
)

var transportFactors = map[models.TransportMode]float64{
	models.TransportModeCar:         0.192,
	models.TransportModeBus:         0.089,
	models.TransportModeTrain:       0.041,
	models.TransportModeBike:        0,
	models.TransportModeWalk:        0,
	models.TransportModeMotorcycle:  0.113,
	models.TransportModeFlight:      0.255,
	models.TransportModeElectricCar: 0.053,
}

var renewableFactors = map[models.EnergySource]float64{
	models.EnergySourceSolar:      -0.5,
	models.EnergySourceWind:       -0.5,
	models.EnergySourceHydro:      -0.5,
	models.EnergySourceGeothermal: -0.5,
	models.EnergySourceBiomass:    -0.3,
	models.EnergySourceTidal:      -0.5,
}

type FactorTable struct {
	Transportation map[models.TransportMode]float64 `json:"transportation"`
	Energy         map[string]float64               `json:"energy"`
	Food           map[string]float64               `json:"food"`
	Waste          map[string]float64               `json:"waste"`
	Water          map[string]float64               `json:"water"`
	Renewable      map[models.EnergySource]float64  `json:"renewable"`
}

// Factors returns a copy of the emission factor tables for display.
func Factors() FactorTable {
	return FactorTable{
		Transportation: maps.Clone(transportFactors),
		Energy:         map[string]float64{"electricity": ElectricityFactor, "gas": GasFactor},
		Food:           map[string]float64{"meat": MeatFactor, "vegetarian": VegetarianFactor},
		Waste:          map[string]float64{"landfill": LandfillFactor, "recycled": RecycledFactor},
		Water:          map[string]float64{"usage": WaterFactor},
		Renewable:      maps.Clone(renewableFactors),
	}
}

func TransportFactor(mode models.TransportMode) float64 {
	return transportFactors[mode]
}

func RenewableFactor(source models.EnergySource) float64 {
	if f, ok := renewableFactors[source]; ok {
		return f
	}
	return DefaultRenewableFactor
}
