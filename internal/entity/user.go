package entity

// User is the authenticated account that owns contacts, tasks and
// follow-ups. Tokens are minted by the hosted auth provider; this service
// only validates them, so the identity stays minimal.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
