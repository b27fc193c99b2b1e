package model

import "time"

// User is the local mirror of an identity-provider account.
// The ID is minted by the provider and opaque to this service.
type User struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Identity is the payload the external provider hands back on login.
type Identity struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}
