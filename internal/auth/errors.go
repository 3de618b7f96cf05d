package auth

import "errors"

// Sentinel errors for the login flow; handlers map these to status codes.
// Unknown email and wrong password stay distinguishable server-side while
// both surface as 401 to the client.
var (
	ErrEmailPasswordRequired = errors.New("Email and password are required")
	ErrInvalidEmail          = errors.New("No account found for this email")
	ErrIncorrectPassword     = errors.New("Incorrect password")
	ErrNotAuthenticated      = errors.New("Not authenticated")
)
