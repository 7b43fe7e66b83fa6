package entity

import "time"

// UsageRecord is the billing entry appended after each successful
// authentication. Append-only; failures here never fail the login.
type UsageRecord struct {
	ID              string         `json:"id"`
	GymID           string         `json:"gym_id"`
	MemberID        string         `json:"member_id"`
	SessionID       string         `json:"session_id"`
	Tier            MembershipType `json:"tier"`
	DurationMinutes int            `json:"duration_minutes"`
	CreatedAt       time.Time      `json:"created_at"`
}
