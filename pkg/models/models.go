package models

import "time"

type Activity struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       string       `gorm:"index:idx_activity_user_date,priority:1" json:"userId"`
	Date         time.Time    `gorm:"index:idx_activity_user_date,priority:2,sort:desc" json:"date"`
	ActivityType ActivityType `gorm:"type:varchar(20)" json:"activityType"`

	TransportMode    TransportMode `gorm:"type:varchar(20)" json:"transportMode,omitempty"`
	Distance         float64       `json:"distance,omitempty"`
	ElectricityUsage float64       `json:"electricityUsage,omitempty"`
	GasUsage         float64       `json:"gasUsage,omitempty"`
	MeatConsumption  float64       `json:"meatConsumption,omitempty"`
	VegetarianMeals  float64       `json:"vegetarianMeals,omitempty"`
	WasteGenerated   float64       `json:"wasteGenerated,omitempty"`
	RecycledWaste    float64       `json:"recycledWaste,omitempty"`
	WaterUsage       float64       `json:"waterUsage,omitempty"`

	// kg CO2e, always derived from the fields above
	CarbonEmissions float64   `json:"carbonEmissions"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type RenewableEnergy struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	UserID           string           `gorm:"index:idx_renewable_user_date,priority:1" json:"userId"`
	Date             time.Time        `gorm:"index:idx_renewable_user_date,priority:2,sort:desc" json:"date"`
	EnergySource     EnergySource     `gorm:"type:varchar(20)" json:"energySource"`
	EnergyGenerated  float64          `json:"energyGenerated"`
	EnergyUsed       float64          `json:"energyUsed,omitempty"`
	Location         string           `json:"location,omitempty"`
	InstallationType InstallationType `gorm:"type:varchar(20)" json:"installationType,omitempty"`
	SystemCapacity   float64          `json:"systemCapacity,omitempty"`
	CarbonOffset     float64          `json:"carbonOffset"`
	Cost             float64          `json:"cost,omitempty"`
	Savings          float64          `json:"savings,omitempty"`
	Description      string           `json:"description,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type PlasticUsage struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	UserID              string          `gorm:"index:idx_plastic_user_date,priority:1" json:"userId"`
	Date                time.Time       `gorm:"index:idx_plastic_user_date,priority:2,sort:desc" json:"date"`
	PlasticType         PlasticType     `gorm:"type:varchar(30)" json:"plasticType"`
	ItemType            PlasticItemType `gorm:"type:varchar(20)" json:"itemType,omitempty"`
	Quantity            float64         `json:"quantity"`
	Weight              float64         `json:"weight,omitempty"`
	Recycled            bool            `json:"recycled"`
	Reused              bool            `json:"reused"`
	Source              PlasticSource   `gorm:"type:varchar(20)" json:"source,omitempty"`
	AlternativeUsed     string          `json:"alternativeUsed,omitempty"`
	EnvironmentalImpact float64         `json:"environmentalImpact"`
	Description         string          `json:"description,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type Notification struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	UserID    string               `gorm:"index:idx_notification_user_read,priority:1" json:"userId"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Type      NotificationType     `gorm:"type:varchar(20);default:info" json:"type"`
	Category  NotificationCategory `gorm:"type:varchar(20);default:general" json:"category"`
	IsRead    bool                 `gorm:"index:idx_notification_user_read,priority:2;default:false" json:"isRead"`
	Priority  NotificationPriority `gorm:"type:varchar(10);default:medium" json:"priority"`
	ActionURL string               `json:"actionUrl,omitempty"`
	Icon      string               `json:"icon,omitempty"`
	CreatedAt time.Time            `gorm:"index" json:"createdAt"`
}

// WasteType is reference data used by the waste classifier.
type WasteType struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	Name                 string        `gorm:"uniqueIndex" json:"name" yaml:"name"`
	Category             WasteCategory `gorm:"type:varchar(20)" json:"category" yaml:"category"`
	Description          string        `json:"description,omitempty" yaml:"description"`
	Keywords             []string      `gorm:"serializer:json" json:"keywords" yaml:"keywords"`
	DisposalInstructions string        `json:"disposalInstructions,omitempty" yaml:"disposalInstructions"`
	EnvironmentalImpact  string        `json:"environmentalImpact,omitempty" yaml:"environmentalImpact"`
	RecyclingTips        string        `json:"recyclingTips,omitempty" yaml:"recyclingTips"`
	DecompositionTime    string        `json:"decompositionTime,omitempty" yaml:"decompositionTime"`
	Examples             []string      `gorm:"serializer:json" json:"examples" yaml:"examples"`
	CreatedAt            time.Time     `json:"createdAt" yaml:"-"`
}

// Profile holds per-user goals used by the summaries.
type Profile struct {
	UserID               string    `gorm:"primaryKey" json:"userId"`
	CarbonFootprintGoal  float64   `json:"carbonFootprintGoal"`
	PlasticReductionGoal float64   `json:"plasticReductionGoal"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
