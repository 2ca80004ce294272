package member

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitpro/gym/internal/models"
)

func TestValidateRequired(t *testing.T) {
	require.NoError(t, validateRequired("Jane Doe", "555-0100"))

	var verr *ValidationError

	err := validateRequired("", "555-0100")
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)

	err = validateRequired("   ", "555-0100")
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)

	err = validateRequired("Jane Doe", "")
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "phone", verr.Field)
}

func TestErrNotFound_IsWrapFriendly(t *testing.T) {
	err := errors.Join(errors.New("lookup failed"), ErrNotFound)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestMemberCascade_CoversChildRecords(t *testing.T) {
	cascade := memberCascade()
	require.Len(t, cascade, 2)

	var hasSessions, hasPayments bool
	for _, record := range cascade {
		switch record.(type) {
		case *models.AttendanceSession:
			hasSessions = true
		case *models.Payment:
			hasPayments = true
		case *models.MemberLog:
			t.Fatal("change log must survive member deletion")
		}
	}
	require.True(t, hasSessions)
	require.True(t, hasPayments)
}
