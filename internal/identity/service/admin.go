package service

import (
	"crypto/subtle"
)

// CheckAdminToken compares a caller-supplied admin token against the
// configured one in constant time. An empty configured token never matches,
// so an unset secret cannot open the admin surface.
func CheckAdminToken(supplied, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) == 1
}
