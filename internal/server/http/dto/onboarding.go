package dto

// OnboardingRequest is the business profile submission. SkipOnboarding
// is a pointer so a missing value can be told apart from false; it is
// only consulted in demo mode.
type OnboardingRequest struct {
	BusinessName   string `json:"business_name"`
	SkipOnboarding *bool  `json:"skip_onboarding,omitempty"`
}

// RedirectResponse tells the client where to navigate next.
type RedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// AccountResponse exposes the locally tracked connected account state.
type AccountResponse struct {
	AccountID        string `json:"account_id"`
	BusinessName     string `json:"business_name"`
	Status           string `json:"status"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}
