package models

import "time"

// Session is the server-tracked proof that a browser agent authenticated
// as a given user. Remember is a per-session attribute selecting the
// extended lifetime.
type Session struct {
	ID        string
	UserID    string
	Remember  bool
	Expires   time.Time
	CreatedAt time.Time
}
