package tests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	serr "github.com/IvanChernomyrdin/go-aquamate/internal/shared/errors"
)

func TestDomainError_UnwrapsToKind(t *testing.T) {
	err := fmt.Errorf("get user: %w", serr.ErrUserNotFound)

	require.True(t, errors.Is(err, serr.ErrNotFound))
	require.True(t, errors.Is(err, serr.ErrUserNotFound))
	require.False(t, errors.Is(err, serr.ErrInvalidInput))
	require.Equal(t, "get user: user not found", err.Error())

	var de *serr.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "user not found", de.Error())
}

func TestMissingFieldError(t *testing.T) {
	err := &serr.MissingFieldError{Field: "water_amount"}

	require.Equal(t, "missing required field: water_amount", err.Error())
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"not found", serr.ErrStampNotFound, serr.ErrNotFound},
		{"already replied", serr.ErrAlreadyReplied, serr.ErrInvalidInput},
		{"missing field", &serr.MissingFieldError{Field: "lat"}, serr.ErrInvalidInput},
		{"bad json", fmt.Errorf("%w: unexpected EOF", serr.ErrBadJSON), serr.ErrBadJSON},
		{"media type", serr.ErrUnsupportedMediaType, serr.ErrUnsupportedMediaType},
		{"internal domain", serr.ErrSendStampFailed, serr.ErrInternal},
		{"unknown", errors.New("connection refused"), serr.ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serr.Kind(tc.err))
		})
	}
}
