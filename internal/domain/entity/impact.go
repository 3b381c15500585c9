// Package entity contains the core business objects of the project.
package entity

import "strings"

// EcoImpact is the environmental footprint avoided by re-selling one item of
// a given category. It is computed once at listing time and the snapshot is
// what gets credited to the ledgers when the sale completes.
type EcoImpact struct {
	CO2   float64 `json:"co2"`   // Kilograms of CO2.
	Water float64 `json:"water"` // Litres of water.
	Waste float64 `json:"waste"` // Kilograms of waste.
}

// impactByCategory holds the per-category impact constants. Values are shared
// with the product seeding data and the frontend display copy.
var impactByCategory = map[string]EcoImpact{
	"electronics": {CO2: 50.0, Water: 100.0, Waste: 1.5},
	"clothing":    {CO2: 15.0, Water: 2000.0, Waste: 0.5},
	"books":       {CO2: 2.0, Water: 20.0, Waste: 0.5},
	"home":        {CO2: 25.0, Water: 50.0, Waste: 10.0},
	"accessories": {CO2: 5.0, Water: 10.0, Waste: 0.2},
	"other":       {CO2: 10.0, Water: 30.0, Waste: 1.0},
}

// ImpactForCategory returns the impact snapshot for a category, falling back
// to the "other" bucket for unknown or empty categories.
func ImpactForCategory(category string) EcoImpact {
	if impact, ok := impactByCategory[strings.ToLower(category)]; ok {
		return impact
	}

	return impactByCategory["other"]
}
