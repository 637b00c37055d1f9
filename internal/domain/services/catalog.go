package services

import (
	"fmt"
	"strings"
)

// BudgetTier selects a price band for offline product recommendations.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

type catalogKey struct {
	category string
	concern  string
	tier     BudgetTier
}

// productCatalog is the offline recommendation table keyed by
// (category, concern, budget tier). Absence of a key means "no
// recommendation", not an error.
var productCatalog = map[catalogKey]string{
	{"shampoo", "dry", BudgetLow}:        "SheaMoisture Coconut & Hibiscus Curl & Shine Shampoo",
	{"shampoo", "dry", BudgetMedium}:     "Briogeo Don't Despair, Repair! Super Moisture Shampoo",
	{"shampoo", "dry", BudgetHigh}:       "Oribe Gold Lust Repair & Restore Shampoo",
	{"shampoo", "damaged", BudgetLow}:    "Pantene Pro-V Repair and Protect Shampoo",
	{"shampoo", "damaged", BudgetMedium}: "Olaplex No. 4 Bond Maintenance Shampoo",
	{"shampoo", "damaged", BudgetHigh}:   "Kerastase Resistance Bain Extentioniste Shampoo",

	{"conditioner", "dry", BudgetLow}:        "Garnier Fructis Hydrating Treat Conditioner",
	{"conditioner", "dry", BudgetMedium}:     "Briogeo Don't Despair, Repair! Deep Conditioning Mask",
	{"conditioner", "dry", BudgetHigh}:       "Oribe Gold Lust Repair & Restore Conditioner",
	{"conditioner", "damaged", BudgetLow}:    "Dove Intensive Repair Conditioner",
	{"conditioner", "damaged", BudgetMedium}: "Olaplex No. 5 Bond Maintenance Conditioner",
	{"conditioner", "damaged", BudgetHigh}:   "Kerastase Resistance Fondant Extentioniste",

	{"treatment", "dry", BudgetMedium}:     "SheaMoisture Manuka Honey & Mafura Oil Intensive Hydration Masque",
	{"treatment", "damaged", BudgetMedium}: "Olaplex No. 3 Hair Perfector",
	{"treatment", "damaged", BudgetHigh}:   "K18 Leave-In Molecular Repair Mask",
}

var catalogCategories = []string{"shampoo", "conditioner", "treatment"}

// RecommendProducts looks up one product per (category, concern) pair at the
// requested budget tier and formats the matches as a bulleted block. An empty
// result yields an explanatory sentence rather than an error.
func RecommendProducts(concerns []string, tier BudgetTier) string {
	if tier == "" {
		tier = BudgetMedium
	}

	var recommendations []string
	for _, category := range catalogCategories {
		for _, concern := range concerns {
			product, ok := productCatalog[catalogKey{category, strings.ToLower(concern), tier}]
			if !ok {
				continue
			}
			recommendations = append(recommendations,
				fmt.Sprintf("- %s: %s (for %s)", capitalize(category), product, strings.ToLower(concern)))
		}
	}

	if len(recommendations) == 0 {
		return "No specific product recommendations available based on current analysis."
	}

	return "Recommended Products:\n" + strings.Join(recommendations, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
