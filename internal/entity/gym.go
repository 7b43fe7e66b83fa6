package entity

// Gym holds the tenant display info shown on the login page. Branding is
// managed elsewhere; the portal only reads it and applies defaults when
// the record is missing.
type Gym struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	LogoURL        string `json:"logo_url"`
	WelcomeMessage string `json:"welcome_message"`
}
