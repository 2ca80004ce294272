package payment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaymentErrors_AreWrapFriendly(t *testing.T) {
	err := fmt.Errorf("record rejected: %w", ErrInvalidAmount)
	require.True(t, errors.Is(err, ErrInvalidAmount))

	err = fmt.Errorf("record rejected: %w", ErrInvalidMethod)
	require.True(t, errors.Is(err, ErrInvalidMethod))
	require.False(t, errors.Is(err, ErrInvalidAmount))
}
