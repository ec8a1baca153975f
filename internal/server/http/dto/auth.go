package dto

// AuthRequest describes email/password payload. AdminSecret, when it matches
// the configured secret, grants the admin claim at registration.
type AuthRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	AdminSecret string `json:"admin_secret,omitempty"`
}
