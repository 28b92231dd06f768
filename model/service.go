package model

import "time"

// Service is a marketplace listing as stored and returned to callers.
// Title, Description, Category and Location are the text fields the
// relevance engine matches against; Rating feeds the bounded scoring
// boost and may be absent (zero).
type Service struct {
	ID             string    `json:"id"`
	ProviderID     string    `json:"provider_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	Price          float64   `json:"price"`
	Rating         float64   `json:"rating"`
	ApprovalStatus string    `json:"approval_status,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RatingOrZero returns the listing's rating clamped to a usable value.
// Negative or NaN-ish inputs come from untrusted upstream data and
// must not reduce a score.
func (s Service) RatingOrZero() float64 {
	if s.Rating != s.Rating || s.Rating < 0 { // NaN or negative
		return 0
	}
	return s.Rating
}

// Bookable reports whether a listing may appear in search candidates:
// approved and not explicitly deactivated. A nil IsActive counts as
// active, matching how partially-migrated rows arrive from the backend.
func (s Service) Bookable() bool {
	if s.ApprovalStatus != "" && s.ApprovalStatus != "approved" {
		return false
	}
	return s.IsActive == nil || *s.IsActive
}
