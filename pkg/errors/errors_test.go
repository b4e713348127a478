package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	typed := Clone(ErrNotFound, "student not found")
	got := FromError(fmt.Errorf("lookup: %w", typed))
	require.NotNil(t, got)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "student not found", got.Message)
}

func TestFromErrorHidesUnknownErrors(t *testing.T) {
	got := FromError(errors.New("connection refused"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, ErrInternal.Message, got.Message)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
}

func TestIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", Wrap(errors.New("pq"), ErrDuplicateKey.Code, ErrDuplicateKey.Status, "studentId already used"))
	assert.True(t, errors.Is(wrapped, ErrDuplicateKey))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}

func TestValidationCarriesDetails(t *testing.T) {
	err := Validation("invalid student payload", FieldError{Field: "studentId", Message: "is required"})
	assert.Equal(t, http.StatusBadRequest, err.Status)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "studentId", err.Details[0].Field)
	assert.Nil(t, ErrValidation.Details)
}
