package footprint

import (
	"strings"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	SourceDatabase  = "database"
	SourceRuleBased = "rule-based"
)

type Classification struct {
	Name                string               `json:"name,omitempty"`
	WasteDescription    string               `json:"wasteDescription,omitempty"`
	Category            models.WasteCategory `json:"category"`
	Confidence          Confidence           `json:"confidence"`
	Instructions        string               `json:"instructions"`
	EnvironmentalImpact string               `json:"environmentalImpact"`
	Tips                string               `json:"tips"`
	DecompositionTime   string               `json:"decompositionTime,omitempty"`
	Examples            []string             `json:"examples,omitempty"`
	Source              string               `json:"-"`
}

type keywordFamily struct {
	keywords []string
	result   Classification
}

// Evaluated top to bottom; the first family with a matching keyword wins.
var keywordFamilies = []keywordFamily{
	{
		keywords: []string{"battery", "chemical", "paint", "oil", "medicine", "pesticide", "cleaner", "solvent"},
		result: Classification{
			Category:            models.WasteCategoryHazardous,
			Confidence:          ConfidenceHigh,
			Instructions:        "Take to hazardous waste collection facility. Do not dispose in regular trash.",
			EnvironmentalImpact: "High risk to environment and health if not disposed properly",
			Tips:                "Store safely until you can take to a proper collection point",
		},
	},
	{
		keywords: []string{"computer", "phone", "electronic", "cable", "charger", "device", "circuit"},
		result: Classification{
			Category:            models.WasteCategoryElectronic,
			Confidence:          ConfidenceHigh,
			Instructions:        "Take to e-waste recycling center or retailer take-back program.",
			EnvironmentalImpact: "Contains valuable materials and hazardous components",
			Tips:                "Consider donating if still functional. Many components can be recycled.",
		},
	},
	{
		keywords: []string{"compost", "coffee grounds", "tea bags", "eggshells", "yard waste"},
		result: Classification{
			Category:            models.WasteCategoryCompostable,
			Confidence:          ConfidenceHigh,
			Instructions:        "Add to compost bin or green waste collection.",
			EnvironmentalImpact: "Can create nutrient-rich soil. Reduces methane from landfills.",
			Tips:                "Start a home compost bin to reduce waste and create free fertilizer!",
		},
	},
	{
		keywords: []string{"food", "fruit", "vegetable", "organic", "plant", "leaves", "garden", "wood"},
		result: Classification{
			Category:            models.WasteCategoryBiodegradable,
			Confidence:          ConfidenceHigh,
			Instructions:        "Compost if possible, otherwise green waste bin.",
			EnvironmentalImpact: "Will decompose naturally but better composted to avoid methane",
			Tips:                "Separate from other waste to prevent contamination",
		},
	},
	{
		keywords: []string{"plastic bottle", "glass", "paper", "cardboard", "aluminum", "can", "metal", "newspaper", "magazine", "bottle"},
		result: Classification{
			Category:            models.WasteCategoryRecyclable,
			Confidence:          ConfidenceMedium,
			Instructions:        "Rinse clean and place in recycling bin. Check local recycling guidelines.",
			EnvironmentalImpact: "Recycling saves energy and raw materials",
			Tips:                "Clean containers recycle better. Remove caps and labels when possible.",
		},
	},
}

var landfillFallback = Classification{
	Category:            models.WasteCategoryLandfill,
	Confidence:          ConfidenceLow,
	Instructions:        "Place in general waste bin. Consider if this can be reduced, reused, or recycled.",
	EnvironmentalImpact: "Will sit in landfill for many years",
	Tips:                "Try to reduce consumption of items that cannot be recycled or composted",
}

// Classify maps a free-text description onto a waste category using the
// keyword families. Descriptions matching several families get only the
// highest-priority one.
func Classify(description string) Classification {
	text := strings.ToLower(description)

	result := landfillFallback
	for _, family := range keywordFamilies {
		if containsAny(text, family.keywords) {
			result = family.result
			break
		}
	}

	result.WasteDescription = description
	result.Source = SourceRuleBased
	return result
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// MatchReference returns the first entry whose name or one of whose keywords
// contains the description, ignoring case. The description is matched
// literally.
func MatchReference(description string, entries []models.WasteType) *models.WasteType {
	needle := strings.ToLower(strings.TrimSpace(description))
	if needle == "" {
		return nil
	}

	for i := range entries {
		if strings.Contains(strings.ToLower(entries[i].Name), needle) {
			return &entries[i]
		}
		for _, k := range entries[i].Keywords {
			if strings.Contains(strings.ToLower(k), needle) {
				return &entries[i]
			}
		}
	}
	return nil
}

func FromReference(wt *models.WasteType) Classification {
	return Classification{
		Name:                wt.Name,
		Category:            wt.Category,
		Confidence:          ConfidenceHigh,
		Instructions:        wt.DisposalInstructions,
		EnvironmentalImpact: wt.EnvironmentalImpact,
		Tips:                wt.RecyclingTips,
		DecompositionTime:   wt.DecompositionTime,
		Examples:            wt.Examples,
		Source:              SourceDatabase,
	}
}

// ClassifyWithReference tries the reference entries first and falls back to
// the keyword families.
func ClassifyWithReference(description string, entries []models.WasteType) Classification {
	if wt := MatchReference(description, entries); wt != nil {
		return FromReference(wt)
	}
	return Classify(description)
}
