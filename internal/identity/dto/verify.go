package dto

type VerifyEmailInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
