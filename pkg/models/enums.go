package models

import (
	"slices"

	"liyu1981.xyz/ecotrack-service/pkg/common"
)

type ActivityType string

const (
	ActivityTypeTransportation ActivityType = "transportation"
	ActivityTypeEnergy         ActivityType = "energy"
	ActivityTypeFood           ActivityType = "food"
	ActivityTypeWaste          ActivityType = "waste"
	ActivityTypeWater          ActivityType = "water"
)

var AllActivityTypes = []ActivityType{
	ActivityTypeTransportation,
	ActivityTypeEnergy,
	ActivityTypeFood,
	ActivityTypeWaste,
	ActivityTypeWater,
}

func (t ActivityType) Valid() bool { return slices.Contains(AllActivityTypes, t) }

type TransportMode string

const (
	TransportModeCar         TransportMode = "car"
	TransportModeBus         TransportMode = "bus"
	TransportModeTrain       TransportMode = "train"
	TransportModeBike        TransportMode = "bike"
	TransportModeWalk        TransportMode = "walk"
	TransportModeMotorcycle  TransportMode = "motorcycle"
	TransportModeFlight      TransportMode = "flight"
	TransportModeElectricCar TransportMode = "electric_car"
)

var AllTransportModes = []TransportMode{
	TransportModeCar,
	TransportModeBus,
	TransportModeTrain,
	TransportModeBike,
	TransportModeWalk,
	TransportModeMotorcycle,
	TransportModeFlight,
	TransportModeElectricCar,
}

func (m TransportMode) Valid() bool { return slices.Contains(AllTransportModes, m) }

type EnergySource string

const (
	EnergySourceSolar      EnergySource = "solar"
	EnergySourceWind       EnergySource = "wind"
	EnergySourceHydro      EnergySource = "hydro"
	EnergySourceGeothermal EnergySource = "geothermal"
	EnergySourceBiomass    EnergySource = "biomass"
	EnergySourceTidal      EnergySource = "tidal"
)

var AllEnergySources = []EnergySource{
	EnergySourceSolar,
	EnergySourceWind,
	EnergySourceHydro,
	EnergySourceGeothermal,
	EnergySourceBiomass,
	EnergySourceTidal,
}

func (s EnergySource) Valid() bool { return slices.Contains(AllEnergySources, s) }

type InstallationType string

const (
	InstallationResidential InstallationType = "residential"
	InstallationCommercial  InstallationType = "commercial"
	InstallationIndustrial  InstallationType = "industrial"
	InstallationCommunity   InstallationType = "community"
)

var AllInstallationTypes = []InstallationType{
	InstallationResidential,
	InstallationCommercial,
	InstallationIndustrial,
	InstallationCommunity,
}

type PlasticType string

const (
	PlasticTypePET          PlasticType = "PET"
	PlasticTypeHDPE         PlasticType = "HDPE"
	PlasticTypePVC          PlasticType = "PVC"
	PlasticTypeLDPE         PlasticType = "LDPE"
	PlasticTypePP           PlasticType = "PP"
	PlasticTypePS           PlasticType = "PS"
	PlasticTypeOther        PlasticType = "other"
	PlasticTypeSingleUse    PlasticType = "single_use_plastic"
	PlasticTypeMicroplastic PlasticType = "microplastic"
)

var AllPlasticTypes = []PlasticType{
	PlasticTypePET,
	PlasticTypeHDPE,
	PlasticTypePVC,
	PlasticTypeLDPE,
	PlasticTypePP,
	PlasticTypePS,
	PlasticTypeOther,
	PlasticTypeSingleUse,
	PlasticTypeMicroplastic,
}

func (t PlasticType) Valid() bool { return slices.Contains(AllPlasticTypes, t) }

type PlasticItemType string

var AllPlasticItemTypes = []PlasticItemType{
	"bottle", "bag", "container", "packaging", "straw", "utensils", "other",
}

type PlasticSource string

var AllPlasticSources = []PlasticSource{
	"food_delivery", "grocery", "personal_care", "household", "beverage", "other",
}

type WasteCategory string

const (
	WasteCategoryRecyclable    WasteCategory = "recyclable"
	WasteCategoryBiodegradable WasteCategory = "biodegradable"
	WasteCategoryHazardous     WasteCategory = "hazardous"
	WasteCategoryLandfill      WasteCategory = "landfill"
	WasteCategoryCompostable   WasteCategory = "compostable"
	WasteCategoryElectronic    WasteCategory = "electronic"
)

var AllWasteCategories = []WasteCategory{
	WasteCategoryRecyclable,
	WasteCategoryBiodegradable,
	WasteCategoryCompostable,
	WasteCategoryHazardous,
	WasteCategoryElectronic,
	WasteCategoryLandfill,
}

func (c WasteCategory) Valid() bool { return slices.Contains(AllWasteCategories, c) }

type NotificationType string

const (
	NotificationTypeInfo        NotificationType = "info"
	NotificationTypeSuccess     NotificationType = "success"
	NotificationTypeWarning     NotificationType = "warning"
	NotificationTypeAchievement NotificationType = "achievement"
	NotificationTypeGoal        NotificationType = "goal"
	NotificationTypeTip         NotificationType = "tip"
	NotificationTypeAlert       NotificationType = "alert"
)

type NotificationCategory string

const (
	NotificationCategoryCarbon  NotificationCategory = "carbon"
	NotificationCategoryWaste   NotificationCategory = "waste"
	NotificationCategoryEnergy  NotificationCategory = "energy"
	NotificationCategoryPlastic NotificationCategory = "plastic"
	NotificationCategoryGeneral NotificationCategory = "general"
)

var AllNotificationCategories = []NotificationCategory{
	NotificationCategoryCarbon,
	NotificationCategoryWaste,
	NotificationCategoryEnergy,
	NotificationCategoryPlastic,
	NotificationCategoryGeneral,
}

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Values renders an enum list as plain strings, for validators.
func Values[T ~string](all []T) []string {
	return common.Mapper(all, func(v T) string { return string(v) })
}
