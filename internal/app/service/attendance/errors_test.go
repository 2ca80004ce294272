package attendance

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionErrors_AreWrapFriendly(t *testing.T) {
	err := fmt.Errorf("check-in rejected: %w", ErrAlreadyCheckedIn)
	require.True(t, errors.Is(err, ErrAlreadyCheckedIn))

	err = fmt.Errorf("%w: session already closed", ErrNotFound)
	require.True(t, errors.Is(err, ErrNotFound))
	require.False(t, errors.Is(err, ErrNoOpenSession))
}
