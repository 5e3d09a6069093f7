package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/noosflare/pkg/errors"
)

type signupForm struct {
	Nickname string `json:"nickname" validate:"required"`
	Email    string `json:"email" validate:"required,email_at"`
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirm_password" validate:"required,eqfield=Password"`
	Terms    bool   `json:"accept_terms" validate:"accepted"`
}

type codeForm struct {
	Code string `json:"code" validate:"len=6"`
}

type emailForm struct {
	Email string `json:"email" validate:"required,email_at"`
}

func (emailForm) ValidationMessages() map[string]string {
	return map[string]string{"required": "Введите email"}
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	return appErr.Message
}

func TestCheckPassesValidPayload(t *testing.T) {
	v := New()
	err := v.Check(signupForm{Nickname: "neo", Email: "a@b.com", Password: "secret", Confirm: "secret", Terms: true})
	assert.NoError(t, err)
}

func TestCheckPrefersMissingFieldsOverMalformedOnes(t *testing.T) {
	v := New()
	msg := messageOf(t, v.Check(signupForm{Nickname: "neo", Email: "broken", Password: "", Confirm: "x"}))
	assert.Equal(t, MsgFillAllFields, msg)
}

func TestCheckMessagesInPriorityOrder(t *testing.T) {
	v := New()

	msg := messageOf(t, v.Check(signupForm{Nickname: "neo", Email: "broken", Password: "123", Confirm: "x"}))
	assert.Equal(t, MsgInvalidEmail, msg)

	msg = messageOf(t, v.Check(signupForm{Nickname: "neo", Email: "a@b.com", Password: "123", Confirm: "x"}))
	assert.Equal(t, "Пароль должен содержать минимум 6 символов", msg)

	msg = messageOf(t, v.Check(signupForm{Nickname: "neo", Email: "a@b.com", Password: "secret", Confirm: "secreT"}))
	assert.Equal(t, MsgPasswordMismatch, msg)

	msg = messageOf(t, v.Check(signupForm{Nickname: "neo", Email: "a@b.com", Password: "secret", Confirm: "secret"}))
	assert.Equal(t, MsgAcceptTerms, msg)
}

func TestCheckLengthMessage(t *testing.T) {
	v := New()
	assert.Equal(t, "Введите 6-значный код", messageOf(t, v.Check(codeForm{Code: "123"})))
	assert.Equal(t, "Введите 6-значный код", messageOf(t, v.Check(codeForm{})))
	assert.NoError(t, v.Check(codeForm{Code: "000000"}))
}

func TestCheckAppliesOverrides(t *testing.T) {
	v := New()
	assert.Equal(t, "Введите email", messageOf(t, v.Check(emailForm{})))
	assert.Equal(t, MsgInvalidEmail, messageOf(t, v.Check(emailForm{Email: "nope"})))
}
