package footprint

import (
	"sort"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

const TipsGeneral = "general"

type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
	Category    string `json:"category"`
}

var tipCatalogue = map[string][]Tip{
	string(models.ActivityTypeTransportation): {
		{"Use Public Transportation", "Take the bus or train instead of driving alone. You could reduce emissions by up to 45%.", ImpactHigh, "transportation"},
		{"Bike or Walk for Short Trips", "For trips under 5km, consider biking or walking. Zero emissions and great for your health!", ImpactHigh, "transportation"},
		{"Carpool with Others", "Share rides with colleagues or friends to reduce your carbon footprint per person.", ImpactMedium, "transportation"},
		{"Consider an Electric Vehicle", "Electric cars produce 72% less CO2 than traditional vehicles over their lifetime.", ImpactHigh, "transportation"},
	},
	string(models.ActivityTypeEnergy): {
		{"Switch to LED Bulbs", "LED bulbs use 75% less energy and last 25 times longer than traditional bulbs.", ImpactMedium, "energy"},
		{"Unplug Unused Electronics", "Phantom power from unused devices can account for 10% of your electricity bill.", ImpactLow, "energy"},
		{"Use Energy-Efficient Appliances", "Look for ENERGY STAR certified appliances to reduce consumption by 10-50%.", ImpactHigh, "energy"},
		{"Adjust Your Thermostat", "Lower heating by 1°C to save 10% on energy bills and reduce emissions.", ImpactHigh, "energy"},
		{"Install Solar Panels", "Generate clean, renewable energy and reduce your carbon footprint to near zero.", ImpactHigh, "energy"},
	},
	string(models.ActivityTypeFood): {
		{"Reduce Meat Consumption", "Try Meatless Mondays! Reducing meat by one day per week can save 1,600 lbs of CO2 per year.", ImpactHigh, "food"},
		{"Buy Local and Seasonal", "Local produce requires less transportation, reducing associated carbon emissions.", ImpactMedium, "food"},
		{"Reduce Food Waste", "30% of food is wasted. Plan meals and use leftovers to minimize waste.", ImpactMedium, "food"},
		{"Grow Your Own Food", "Start a small garden for herbs and vegetables. Zero food miles!", ImpactMedium, "food"},
	},
	string(models.ActivityTypeWaste): {
		{"Recycle Properly", "Recycling one ton of paper saves 17 trees and 7,000 gallons of water.", ImpactHigh, "waste"},
		{"Compost Organic Waste", "Composting reduces methane emissions from landfills and creates nutrient-rich soil.", ImpactHigh, "waste"},
		{"Reduce Single-Use Items", "Use reusable bags, bottles, and containers instead of disposable ones.", ImpactMedium, "waste"},
		{"Buy Products with Less Packaging", "Choose bulk items and products with minimal or recyclable packaging.", ImpactMedium, "waste"},
	},
	string(models.ActivityTypeWater): {
		{"Fix Leaking Faucets", "A dripping tap can waste 15 liters per day. Fix leaks promptly.", ImpactMedium, "water"},
		{"Take Shorter Showers", "Reduce shower time by 2 minutes to save 10 gallons of water.", ImpactMedium, "water"},
		{"Install Water-Efficient Fixtures", "Low-flow showerheads and faucets can reduce water use by 50%.", ImpactHigh, "water"},
		{"Collect Rainwater", "Use rainwater for gardening and reduce treated water consumption.", ImpactMedium, "water"},
	},
	TipsGeneral: {
		{"Offset Your Carbon Footprint", "Support verified carbon offset projects like reforestation and renewable energy.", ImpactHigh, "general"},
		{"Educate Others", "Share your knowledge about sustainability with family and friends.", ImpactMedium, "general"},
		{"Support Sustainable Businesses", "Choose companies committed to environmental responsibility.", ImpactMedium, "general"},
	},
}

// TipsFor returns the tips for an activity type, or the general tips.
func TipsFor(activityType string) []Tip {
	tips, ok := tipCatalogue[activityType]
	if !ok {
		tips = tipCatalogue[TipsGeneral]
	}
	return append([]Tip(nil), tips...)
}

// PersonalizedTips picks two tips for each of the two highest-emitting
// activity types in recent, followed by two general tips.
func PersonalizedTips(recent []models.Activity) []Tip {
	byType := map[models.ActivityType]float64{}
	for _, a := range recent {
		byType[a.ActivityType] += a.CarbonEmissions
	}

	types := make([]models.ActivityType, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if byType[types[i]] != byType[types[j]] {
			return byType[types[i]] > byType[types[j]]
		}
		return types[i] < types[j]
	})
	if len(types) > 2 {
		types = types[:2]
	}

	var tips []Tip
	for _, t := range types {
		tips = append(tips, firstN(TipsFor(string(t)), 2)...)
	}
	return append(tips, firstN(TipsFor(TipsGeneral), 2)...)
}

func firstN(tips []Tip, n int) []Tip {
	if len(tips) > n {
		return tips[:n]
	}
	return tips
}
