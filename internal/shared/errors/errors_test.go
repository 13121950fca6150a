package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Codes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("name is required").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("plan not found").Code)
	assert.Equal(t, http.StatusConflict, NewConflictError("slot is still referenced").Code)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("cannot copy plan").Code)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("login required").Code)
}

func TestAppError_WrapsCause(t *testing.T) {
	cause := stderrors.New("FOREIGN KEY constraint failed")
	err := fmt.Errorf("failed to delete slot: %w", NewConflictError("slot is still referenced").WithCause(cause))

	assert.True(t, IsConflictError(err))
	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, IsForeignKeyError(err))
	assert.Equal(t, "conflict: slot is still referenced", GetAppError(err).Error())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'Kyrie' for key")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: slots.name_key")))
	assert.False(t, IsDuplicateError(stderrors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, IsForeignKeyError(stderrors.New("Error 1451: Cannot delete or update a parent row: a foreign key constraint fails")))
	assert.False(t, IsForeignKeyError(stderrors.New("record not found")))
	assert.False(t, IsForeignKeyError(nil))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsForbiddenError(NewForbiddenError("x")))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError("x")))
	assert.True(t, IsValidationError(NewValidationError("x")))
	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestStatusMapping(t *testing.T) {
	for errType, code := range statusByType {
		assert.Equal(t, code, StatusFor(errType))
		assert.Equal(t, errType, TypeForStatus(code))
	}
	assert.Equal(t, http.StatusInternalServerError, StatusFor("unknown"))
	assert.Equal(t, ErrorTypeInternal, TypeForStatus(http.StatusBadGateway))
	assert.Equal(t, "details", New(ErrorTypeConflict, "x", "details", "ignored").Details)
}
