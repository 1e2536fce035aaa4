// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an institutional account. Identity fields are immutable after
// registration; PasswordHash never leaves the service layer.
type User struct {
	ID              string
	Email           string
	Phone           string
	FirstName       string
	LastName        string
	PasswordHash    string
	InstitutionalID string
	TermsAccepted   bool
	CreatedAt       time.Time
}

// FullName is the display name shown to the user after login.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
