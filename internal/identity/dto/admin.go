package dto

type AdminLoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
