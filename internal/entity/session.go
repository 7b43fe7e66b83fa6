// Package entity defines the domain model owned by the portal.
package entity

import "time"

// SessionStatus is the lifecycle state of a captive portal session.
type SessionStatus string

const (
	// SessionActive covers both the pre-auth bootstrap window (UserID empty)
	// and the authorized phase (UserID bound).
	SessionActive       SessionStatus = "active"
	SessionExpired      SessionStatus = "expired"
	SessionDisconnected SessionStatus = "disconnected"
)

// DataUsage holds best-effort traffic counters read from the router, in MB.
type DataUsage struct {
	DownloadMB float64 `json:"download_mb"`
	UploadMB   float64 `json:"upload_mb"`
}

// PortalSession binds one device to at most one member on one gym's network.
// Owned exclusively by the session store; nothing else mutates it.
type PortalSession struct {
	ID          string         `json:"id"`
	GymID       string         `json:"gym_id"`
	UserID      string         `json:"user_id"`
	MACAddress  string         `json:"mac_address"`
	IPAddress   string         `json:"ip_address"`
	UserAgent   string         `json:"user_agent"`
	RedirectURL string         `json:"redirect_url,omitempty"`
	Tier        MembershipType `json:"tier,omitempty"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     time.Time      `json:"end_time"`
	DataUsed    DataUsage      `json:"data_used"`
	Status      SessionStatus  `json:"status"`
}

// IsPreAuth reports whether login has not completed yet.
func (s *PortalSession) IsPreAuth() bool {
	return s.UserID == ""
}

// IsExpired reports whether the session has outlived its end time.
func (s *PortalSession) IsExpired(now time.Time) bool {
	return now.After(s.EndTime)
}

// TimeRemaining returns whole minutes left before expiry, never negative.
func (s *PortalSession) TimeRemaining(now time.Time) int {
	if now.After(s.EndTime) {
		return 0
	}

	return int(s.EndTime.Sub(now).Minutes())
}

// Expire marks the session timed out in place. The record stays in the
// store so a final status check can report the expiry reason.
func (s *PortalSession) Expire() {
	s.Status = SessionExpired
}

// Disconnect marks an explicit logout.
func (s *PortalSession) Disconnect() {
	s.Status = SessionDisconnected
}
