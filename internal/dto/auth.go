package dto

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleExchangeRequest carries the authorization code from the frontend's
// Google sign-in flow.
type GoogleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginResponse defines a successful authentication result. The refresh token
// travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
