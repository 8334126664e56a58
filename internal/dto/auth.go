package dto

import "unicode/utf8"

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6

// RegisterRequest represents the request to register a user or an admin
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the RegisterRequest
func (r *RegisterRequest) Validate() (bool, string) {
	if r.Username == "" || r.Password == "" || utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return false, "Username and password (min 6 characters) are required"
	}
	return true, ""
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() (bool, string) {
	if r.Username == "" || r.Password == "" {
		return false, "Username and password are required"
	}
	return true, ""
}

// RegisterResponse is returned by both registration endpoints
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResponse is the public view of the authenticated user
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
