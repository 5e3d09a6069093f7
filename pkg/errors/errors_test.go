package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneKeepsCodeAndMatchesTemplate(t *testing.T) {
	err := Clone(ErrValidation, "Введите корректный email")

	assert.Equal(t, ErrValidation.Code, err.Code)
	assert.Equal(t, "Введите корректный email", err.Message)
	assert.True(t, stdErrors.Is(err, ErrValidation))
	assert.False(t, stdErrors.Is(err, ErrIncorrectCode))
	assert.Equal(t, "validation failed", ErrValidation.Message)
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(cause, ErrInternal.Code, "failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: boom", err.Error())
	assert.Equal(t, "failed", Message(err))
}

func TestFromErrorNormalisesPlainErrors(t *testing.T) {
	assert.Nil(t, FromError(nil))

	appErr := FromError(stdErrors.New("plain"))
	require.NotNil(t, appErr)
	assert.Equal(t, ErrInternal.Code, appErr.Code)

	typed := Clone(ErrNotFound, "subject not found")
	assert.Same(t, typed, FromError(typed))
}
