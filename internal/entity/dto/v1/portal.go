// Package dto defines the v1 request/response shapes of the portal API.
package dto

import "time"

// Stable machine-readable error codes. The portal UI keys its copy off
// these; the accompanying messages are localizable and non-technical.
const (
	CodeMissingParams      = "MISSING_PARAMS"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeAuthFailed         = "AUTH_FAILED"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeNoSession          = "NO_SESSION"
)

// BootstrapRequest are the query parameters the router appends on redirect.
type BootstrapRequest struct {
	MACAddress  string `form:"mac" binding:"required"`
	IPAddress   string `form:"ip" binding:"required"`
	UserAgent   string `form:"userAgent"`
	RedirectURL string `form:"redirectUrl"`
}

// AuthRequest -.
// SessionID may be omitted in the body; the handler falls back to the
// portal session cookie.
type AuthRequest struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	GymCode   string `json:"gymCode"`
}

// LogoutRequest -.
// SessionID may be omitted; the handler falls back to the portal session cookie.
type LogoutRequest struct {
	SessionID string `json:"sessionId"`
}

// MemberInfo is the subset of the member record echoed back after login.
type MemberInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipType string `json:"membershipType"`
}

// SessionInfo -.
type SessionInfo struct {
	SessionID       string    `json:"sessionId"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	DownloadMbps    int       `json:"downloadMbps"`
	UploadMbps      int       `json:"uploadMbps"`
}

// AuthResponse -.
type AuthResponse struct {
	Success     bool         `json:"success"`
	RedirectURL string       `json:"redirectUrl,omitempty"`
	Member      *MemberInfo  `json:"memberInfo,omitempty"`
	Session     *SessionInfo `json:"sessionInfo,omitempty"`
	Error       string       `json:"error,omitempty"`
	Code        string       `json:"code,omitempty"`
}

// DataUsage mirrors the router counters in MB.
type DataUsage struct {
	DownloadMB float64 `json:"downloadMB"`
	UploadMB   float64 `json:"uploadMB"`
}

// SessionStatusResponse -.
// TimeRemaining is always present: a valid session in its final minute
// reports 0, which is distinct from the field being absent.
type SessionStatusResponse struct {
	Valid         bool       `json:"valid"`
	TimeRemaining int        `json:"timeRemaining"`
	DataUsage     *DataUsage `json:"dataUsage,omitempty"`
	Error         string     `json:"error,omitempty"`
	Code          string     `json:"code,omitempty"`
}

// LogoutResponse -.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// GymInfo is the branding block rendered on the login page.
type GymInfo struct {
	Name           string `json:"name"`
	LogoURL        string `json:"logoUrl"`
	WelcomeMessage string `json:"welcomeMessage"`
}

// AdminSession is the admin-facing view of an active session.
type AdminSession struct {
	ID            string     `json:"id"`
	GymID         string     `json:"gymId"`
	UserID        string     `json:"userId"`
	MACAddress    string     `json:"macAddress"`
	IPAddress     string     `json:"ipAddress"`
	Tier          string     `json:"tier,omitempty"`
	Status        string     `json:"status"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	TimeRemaining int        `json:"timeRemaining"`
	DataUsage     *DataUsage `json:"dataUsage,omitempty"`
}
