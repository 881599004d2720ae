package apperrors_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	err := apperrors.NewAppError(500, "failed to save party", apperrors.ErrDuplicate)

	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.Equal(t, "failed to save party: resource already exists", err.Error())
}

func TestAppError_NoWrappedError(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", nil)
	assert.Equal(t, "bad input", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestNewValidationError(t *testing.T) {
	err := apperrors.NewValidationError("amount must be non-negative, got %s", "-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "amount must be non-negative, got -1")
}
