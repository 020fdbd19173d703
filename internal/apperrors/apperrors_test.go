package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusUnauthorized, StatusCode(Unauthorized("no session")))
	require.Equal(t, http.StatusForbidden, StatusCode(Forbidden("not your task")))
	require.Equal(t, http.StatusNotFound, StatusCode(NotFound("task not found")))
	require.Equal(t, http.StatusConflict, StatusCode(InvalidState("task is not open")))
	require.Equal(t, http.StatusBadRequest, StatusCode(Validation("amount must be positive")))
	require.Equal(t, http.StatusServiceUnavailable, StatusCode(Unavailable("database down")))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("accepting bid: %w", InvalidState("bid is not pending"))
	require.Equal(t, KindInvalidState, KindOf(err))
	require.Equal(t, http.StatusConflict, StatusCode(err))
}
