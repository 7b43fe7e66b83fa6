package entity

import "time"

// MembershipType determines access duration and bandwidth tier.
type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipVIP     MembershipType = "vip"
)

// Member is a gym member record. Created and updated by the external
// member-management system; read-only here.
type Member struct {
	ID               string         `json:"id"`
	GymID            string         `json:"gym_id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	PasswordHash     string         `json:"-"`
	MembershipType   MembershipType `json:"membership_type"`
	MembershipActive bool           `json:"membership_active"`
	MembershipExpiry time.Time      `json:"membership_expiry"`
}

// CanAuthenticate reports whether the membership is active and unexpired.
// A member failing this check must never be granted network access.
func (m *Member) CanAuthenticate(now time.Time) bool {
	return m.MembershipActive && m.MembershipExpiry.After(now)
}
