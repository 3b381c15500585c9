// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A record is created (or refreshed)
// whenever someone completes a federated login; the email is the stable join
// key across logins.
type User struct {
	ID        uuid.UUID    `json:"id"`           // The unique identifier for the user record.
	Email     string       `json:"email"`        // The user's email, the primary lookup key after login.
	Name      string       `json:"name"`         // The user's display name, refreshed on every login.
	Provider  ProviderType `json:"provider"`     // The federated provider that vouched for this identity.
	Impact    ImpactStats  `json:"impact_stats"` // Running eco-impact ledger, mutated only via atomic increments.
	CreatedAt time.Time    `json:"created_at"`   // Set once on first login, never overwritten by later logins.
	UpdatedAt time.Time    `json:"updated_at"`   // Timestamp of the last profile refresh or ledger credit.
}

// ImpactStats is the per-user eco-impact ledger. Every field only ever grows:
// selling credits the recycled counters, buying credits the purchased counter,
// and both share the co2/water/waste deltas of the product involved.
type ImpactStats struct {
	CO2Saved       float64 `json:"co2_saved"`       // Kilograms of CO2 kept out of the atmosphere.
	WaterSaved     float64 `json:"water_saved"`     // Litres of water saved.
	WasteSaved     float64 `json:"waste_saved"`     // Kilograms of landfill waste avoided.
	ItemsRecycled  int     `json:"items_recycled"`  // Number of items this user has sold on.
	ItemsPurchased int     `json:"items_purchased"` // Number of second-hand items this user has bought.
}

// Add returns the ledger with an impact snapshot applied. Exactly one of the
// item counters is bumped depending on which side of the sale the user is on.
func (s ImpactStats) Add(impact EcoImpact, asSeller bool) ImpactStats {
	s.CO2Saved += impact.CO2
	s.WaterSaved += impact.Water
	s.WasteSaved += impact.Waste
	if asSeller {
		s.ItemsRecycled++
	} else {
		s.ItemsPurchased++
	}

	return s
}
