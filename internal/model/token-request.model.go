package model

// TokenRequest is the body of POST /api/auth/token.
type TokenRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
