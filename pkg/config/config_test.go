package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitpro/gym/pkg/types"
)

func TestGetMembershipPlan(t *testing.T) {
	cfg := &Config{MembershipPlans: types.DefaultMembershipPlans()}

	plan := cfg.GetMembershipPlan("Standard")
	require.NotNil(t, plan)
	require.Equal(t, 3, plan.DurationMonths)

	require.Nil(t, cfg.GetMembershipPlan("Platinum"))
	require.Nil(t, cfg.GetMembershipPlan(""))
}

func TestNew_DefaultsPlansWhenUnconfigured(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.MembershipPlans)
	require.NotNil(t, cfg.GetMembershipPlan("Basic"))
}
