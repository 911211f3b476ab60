package footprint

import (
	"math"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

// CalculateCarbonEmissions derives kg CO2e for an activity from the fields
// relevant to its type. Fields belonging to other types are ignored, absent
// fields contribute nothing and the result never goes below zero.
func CalculateCarbonEmissions(a *models.Activity) float64 {
	if a == nil {
		return 0
	}

	var emissions float64
	switch a.ActivityType {
	case models.ActivityTypeTransportation:
		emissions = TransportFactor(a.TransportMode) * a.Distance
	case models.ActivityTypeEnergy:
		emissions = ElectricityFactor*a.ElectricityUsage + GasFactor*a.GasUsage
	case models.ActivityTypeFood:
		emissions = MeatFactor*a.MeatConsumption + VegetarianFactor*a.VegetarianMeals
	case models.ActivityTypeWaste:
		emissions = LandfillFactor*a.WasteGenerated + RecycledFactor*a.RecycledWaste
	case models.ActivityTypeWater:
		emissions = WaterFactor * a.WaterUsage
	}

	return math.Max(0, emissions)
}

// CalculateRenewableOffset reports avoided emissions as a positive credit.
func CalculateRenewableOffset(energyGenerated float64, source models.EnergySource) float64 {
	return math.Abs(RenewableFactor(source) * energyGenerated)
}

// CalculatePlasticImpact scores plastic usage, higher is worse.
func CalculatePlasticImpact(quantity float64, plasticType models.PlasticType, recycled bool) float64 {
	score := quantity * 10
	if !recycled {
		score *= 1.5
	}
	if plasticType == models.PlasticTypeSingleUse {
		score *= 2
	}
	return score
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
