package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorFormatting(t *testing.T) {
	t.Parallel()

	err := New("NOT_FOUND", "User not found", http.StatusNotFound)
	require.Equal(t, "NOT_FOUND: User not found", err.Error())

	var nilErr *APIError
	require.Equal(t, "", nilErr.Error())
	require.NoError(t, nilErr.Unwrap())
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Wrap(cause, "BAD_REQUEST", "Invalid body", http.StatusBadRequest)

	require.ErrorIs(t, err, cause)
	require.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	require.Contains(t, err.Error(), "boom")

	var target *APIError
	require.True(t, errors.As(error(err), &target))
	require.Equal(t, "Invalid body", target.Message)
}

func TestUnprocessableUsesCauseAsMessage(t *testing.T) {
	t.Parallel()

	err := Unprocessable(errors.New("email: must be a valid email address."))
	require.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
	require.Equal(t, "email: must be a valid email address.", err.Message)
}
