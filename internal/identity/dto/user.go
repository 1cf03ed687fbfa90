package dto

import (
	"github.com/avayezaryab/backend/internal/identity/domain"
)

type UserOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthOutput is returned by the operations that complete an authentication
// event. The token is an opaque bearer value; nothing validates it afterwards.
type AuthOutput struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
