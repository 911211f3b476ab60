package footprint

import "liyu1981.xyz/ecotrack-service/pkg/models"

type Option struct {
	Value          string   `json:"value"`
	Label          string   `json:"label"`
	Icon           string   `json:"icon,omitempty"`
	Description    string   `json:"description,omitempty"`
	Color          string   `json:"color,omitempty"`
	Recyclable     *bool    `json:"recyclable,omitempty"`
	EmissionFactor *float64 `json:"emissionFactor,omitempty"`
}

type ActivityTypeInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Modes       []Option `json:"modes,omitempty"`
	Fields      []string `json:"fields"`
}

type Catalogue struct {
	ActivityTypes   map[models.ActivityType]ActivityTypeInfo `json:"activityTypes"`
	EnergySources   []Option                                 `json:"energySources"`
	PlasticTypes    []Option                                 `json:"plasticTypes"`
	WasteCategories []Option                                 `json:"wasteCategories"`
	EmissionFactors FactorTable                              `json:"emissionFactors"`
}

func ptr[T any](v T) *T { return &v }

func transportOption(mode models.TransportMode, label, icon string) Option {
	return Option{Value: string(mode), Label: label, Icon: icon, EmissionFactor: ptr(TransportFactor(mode))}
}

// BuildCatalogue describes the accepted enumerations for form rendering.
func BuildCatalogue() Catalogue {
	return Catalogue{
		ActivityTypes: map[models.ActivityType]ActivityTypeInfo{
			models.ActivityTypeTransportation: {
				Name:        "Transportation",
				Description: "Track your travel emissions",
				Icon:        "🚗",
				Modes: []Option{
					transportOption(models.TransportModeCar, "Car", "🚗"),
					transportOption(models.TransportModeElectricCar, "Electric Car", "⚡"),
					transportOption(models.TransportModeBus, "Bus", "🚌"),
					transportOption(models.TransportModeTrain, "Train", "🚆"),
					transportOption(models.TransportModeMotorcycle, "Motorcycle", "🏍️"),
					transportOption(models.TransportModeBike, "Bicycle", "🚲"),
					transportOption(models.TransportModeWalk, "Walk", "🚶"),
					transportOption(models.TransportModeFlight, "Flight", "✈️"),
				},
				Fields: []string{"transportMode", "distance"},
			},
			models.ActivityTypeEnergy: {
				Name: "Energy", Description: "Log your energy consumption", Icon: "⚡",
				Fields: []string{"electricityUsage", "gasUsage"},
			},
			models.ActivityTypeFood: {
				Name: "Food", Description: "Track your dietary impact", Icon: "🍽️",
				Fields: []string{"meatConsumption", "vegetarianMeals"},
			},
			models.ActivityTypeWaste: {
				Name: "Waste", Description: "Monitor waste generation", Icon: "♻️",
				Fields: []string{"wasteGenerated", "recycledWaste"},
			},
			models.ActivityTypeWater: {
				Name: "Water", Description: "Track water usage", Icon: "💧",
				Fields: []string{"waterUsage"},
			},
		},
		EnergySources: []Option{
			{Value: "solar", Label: "Solar Power", Icon: "☀️", Description: "Photovoltaic solar panels"},
			{Value: "wind", Label: "Wind Power", Icon: "💨", Description: "Wind turbines"},
			{Value: "hydro", Label: "Hydroelectric", Icon: "💧", Description: "Water-powered generation"},
			{Value: "geothermal", Label: "Geothermal", Icon: "🌋", Description: "Earth heat energy"},
			{Value: "biomass", Label: "Biomass", Icon: "🌿", Description: "Organic matter energy"},
			{Value: "tidal", Label: "Tidal Power", Icon: "🌊", Description: "Ocean tidal energy"},
		},
		PlasticTypes: []Option{
			{Value: "PET", Label: "PET (1)", Description: "Polyethylene Terephthalate - bottles, containers", Recyclable: ptr(true)},
			{Value: "HDPE", Label: "HDPE (2)", Description: "High-Density Polyethylene - milk jugs, detergent bottles", Recyclable: ptr(true)},
			{Value: "PVC", Label: "PVC (3)", Description: "Polyvinyl Chloride - pipes, packaging", Recyclable: ptr(false)},
			{Value: "LDPE", Label: "LDPE (4)", Description: "Low-Density Polyethylene - bags, wraps", Recyclable: ptr(true)},
			{Value: "PP", Label: "PP (5)", Description: "Polypropylene - containers, straws", Recyclable: ptr(true)},
			{Value: "PS", Label: "PS (6)", Description: "Polystyrene - foam cups, packaging", Recyclable: ptr(false)},
			{Value: "single_use_plastic", Label: "Single-Use Plastic", Description: "Disposable plastics", Recyclable: ptr(false)},
			{Value: "microplastic", Label: "Microplastic", Description: "Plastic particles under 5mm", Recyclable: ptr(false)},
			{Value: "other", Label: "Other Plastics", Description: "Mixed or unknown plastics", Recyclable: ptr(false)},
		},
		WasteCategories: []Option{
			{Value: "recyclable", Label: "Recyclable", Icon: "♻️", Color: "#10b981", Description: "Can be recycled"},
			{Value: "biodegradable", Label: "Biodegradable", Icon: "🌱", Color: "#22c55e", Description: "Naturally decomposes"},
			{Value: "compostable", Label: "Compostable", Icon: "🌿", Color: "#84cc16", Description: "Can be composted"},
			{Value: "hazardous", Label: "Hazardous", Icon: "⚠️", Color: "#ef4444", Description: "Dangerous waste"},
			{Value: "electronic", Label: "Electronic", Icon: "📱", Color: "#3b82f6", Description: "E-waste"},
			{Value: "landfill", Label: "Landfill", Icon: "🗑️", Color: "#6b7280", Description: "General waste"},
		},
		EmissionFactors: Factors(),
	}
}
