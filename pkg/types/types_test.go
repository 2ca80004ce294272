package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemberStatus_Valid(t *testing.T) {
	require.True(t, MemberStatusActive.Valid())
	require.True(t, MemberStatusExpired.Valid())
	require.False(t, MemberStatus("Suspended").Valid())
	require.False(t, MemberStatus("").Valid())
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodBankTransfer,
		PaymentMethodOther,
	} {
		require.True(t, m.Valid(), string(m))
	}
	require.False(t, PaymentMethod("Bitcoin").Valid())
	require.False(t, PaymentMethod("").Valid())
}

func TestDefaultMembershipPlans(t *testing.T) {
	plans := DefaultMembershipPlans()
	require.Len(t, plans, 3)

	byName := map[string]int{}
	for _, p := range plans {
		byName[p.Name] = p.DurationMonths
	}
	require.Equal(t, 1, byName["Basic"])
	require.Equal(t, 3, byName["Standard"])
	require.Equal(t, 12, byName["Premium"])
}
