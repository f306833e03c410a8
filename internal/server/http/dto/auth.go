package dto

// AuthRequest describes email/password payload for register and login.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is returned after successful registration or login.
type UserResponse struct {
	Email     string `json:"email"`
	AccountID string `json:"account_id"`
}

// SessionResponse describes the authenticated session.
type SessionResponse struct {
	Email     string `json:"email"`
	AccountID string `json:"account_id"`
	DemoMode  bool   `json:"demo_mode"`
}

// DemoEmailResponse carries the generated placeholder registration address.
type DemoEmailResponse struct {
	Email string `json:"email"`
}
