// Package entity contains the core business objects of the project.
package entity

// ProviderType represents the federated identity provider that established a
// user's identity.
type ProviderType string

const (
	// ProviderTypeGoogle indicates the identity was asserted by Google Sign-In.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeOAuth is the fallback recorded when a token carries no
	// explicit provider claim.
	ProviderTypeOAuth ProviderType = "oauth"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a valid value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeGoogle, ProviderTypeOAuth:
		return true
	default:
		return false
	}
}
