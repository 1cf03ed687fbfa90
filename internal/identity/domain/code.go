package domain

import "time"

// CodePurpose selects one of the two one-time-code ledgers. The ledgers have
// identical shape but live in separate tables so a verification code can never
// be replayed as a reset code.
type CodePurpose string

const (
	PurposeEmailVerification CodePurpose = "email_verification"
	PurposePasswordReset     CodePurpose = "password_reset"
)

// OneTimeCode is valid until its first successful consume or until expiry,
// whichever comes first. Rows are never deleted; expiry is evaluated lazily at
// consume time.
type OneTimeCode struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
}
