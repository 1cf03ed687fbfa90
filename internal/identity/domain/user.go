package domain

import "time"

type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordDigest string
	EmailVerified  bool
	CreatedAt      time.Time
}
