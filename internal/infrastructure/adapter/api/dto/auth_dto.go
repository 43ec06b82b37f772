package dto

// RegisterRequest represents the API request for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the API request for authenticating a user
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}
