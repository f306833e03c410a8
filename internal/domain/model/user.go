package model

import "time"

// User is a registered platform user. AccountID links the user to a
// connected account at the payments platform once one has been created.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	AccountID    string
	CreatedAt    time.Time
}
