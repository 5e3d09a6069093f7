package models

// LoginRequest holds the login form fields.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_at"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest holds the registration form fields.
type RegisterRequest struct {
	Nickname        string `json:"nickname" validate:"required"`
	Email           string `json:"email" validate:"required,email_at"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	AcceptTerms     bool   `json:"accept_terms" validate:"accepted"`
}

// ResetEmailRequest starts the forgot-password flow.
type ResetEmailRequest struct {
	Email string `json:"email" validate:"required,email_at"`
}

// ValidationMessages overrides the generic missing-field message.
func (ResetEmailRequest) ValidationMessages() map[string]string {
	return map[string]string{"required": "Введите email"}
}

// ResetCodeRequest carries the six-digit confirmation code.
type ResetCodeRequest struct {
	Code string `json:"code" validate:"len=6"`
}

// NewPasswordRequest sets the password at the end of the reset flow.
type NewPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ValidationMessages overrides the generic missing-field message.
func (NewPasswordRequest) ValidationMessages() map[string]string {
	return map[string]string{"required": "Заполните оба поля"}
}
