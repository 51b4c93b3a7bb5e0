package errors_test

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalError_PreservesCause(t *testing.T) {
	err := errors.NewInternalError(sql.ErrConnDone)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, stderrors.Is(err, sql.ErrConnDone))
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Equal(t, "internal server error", err.Message, "cause is not leaked into the message")
}

func TestAs_FindsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("loading overview: %w", errors.NewNotFoundError("topic", "t1"))

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	_, ok = errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *errors.AppError
		code   string
		status int
	}{
		{errors.NewValidationError("date", "must be YYYY-MM-DD"), errors.ErrCodeValidation, http.StatusBadRequest},
		{errors.NewBadRequestError("missing user"), errors.ErrCodeBadRequest, http.StatusBadRequest},
		{errors.NewUnavailableError("queue full", nil), errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.status, tt.err.Status)
	}
}
