package model

// Identity is the authenticated user a token is issued for.
type Identity struct {
	ID        int
	Login     string
	FirstName string
	LastName  string
	Email     string
}
