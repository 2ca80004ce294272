package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitpro/gym/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func planNamed(name string) *types.MembershipPlan {
	for _, p := range types.DefaultMembershipPlans() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func TestComputeExpiry_PerPlan(t *testing.T) {
	join := date(2024, time.January, 1)
	cases := []struct {
		plan string
		want time.Time
	}{
		{"Basic", date(2024, time.February, 1)},
		{"Standard", date(2024, time.April, 1)},
		{"Premium", date(2025, time.January, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.plan, func(t *testing.T) {
			require.Equal(t, tc.want, ComputeExpiry(join, planNamed(tc.plan)))
		})
	}
}

func TestComputeExpiry_ClampsMonthEnd(t *testing.T) {
	got := ComputeExpiry(date(2024, time.January, 31), planNamed("Basic"))
	require.Equal(t, date(2024, time.February, 29), got)
}

func TestComputeExpiry_IgnoresClock(t *testing.T) {
	join := time.Date(2024, time.March, 10, 22, 45, 0, 0, time.UTC)
	require.Equal(t, date(2024, time.April, 10), ComputeExpiry(join, planNamed("Basic")))
}

func TestDeriveStatus(t *testing.T) {
	today := date(2024, time.June, 15)
	cases := []struct {
		name   string
		expiry time.Time
		want   types.MemberStatus
	}{
		{"future expiry", date(2024, time.July, 1), types.MemberStatusActive},
		{"expires today", today, types.MemberStatusActive},
		{"expired yesterday", date(2024, time.June, 14), types.MemberStatusExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DeriveStatus(tc.expiry, today))
		})
	}
}

func TestDeriveStatus_ComparesDatesNotClocks(t *testing.T) {
	expiry := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)
	require.Equal(t, types.MemberStatusActive, DeriveStatus(expiry, now))
}

func TestRatchetExpiry(t *testing.T) {
	expiry := date(2024, time.June, 15)
	cases := []struct {
		name        string
		due         time.Time
		want        time.Time
		wantChanged bool
	}{
		{"earlier due is a no-op", date(2024, time.June, 1), expiry, false},
		{"equal due is a no-op", date(2024, time.June, 15), expiry, false},
		{"later due raises expiry", date(2024, time.September, 15), date(2024, time.September, 15), true},
		{"next day raises expiry", date(2024, time.June, 16), date(2024, time.June, 16), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := ratchetExpiry(expiry, tc.due)
			require.Equal(t, tc.wantChanged, changed)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRatchetExpiry_IgnoresClock(t *testing.T) {
	expiry := date(2024, time.June, 15)
	due := time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)
	got, changed := ratchetExpiry(expiry, due)
	require.False(t, changed)
	require.Equal(t, expiry, got)
}

func TestResolveUpdateStatus(t *testing.T) {
	now := date(2024, time.June, 15)
	cases := []struct {
		name          string
		requested     types.MemberStatus
		stored        types.MemberStatus
		expiry        time.Time
		expiryChanged bool
		want          types.MemberStatus
	}{
		{"explicit value wins", types.MemberStatusExpired, types.MemberStatusActive, date(2024, time.July, 1), true, types.MemberStatusExpired},
		{"omitted keeps stored", "", types.MemberStatusExpired, date(2024, time.July, 1), false, types.MemberStatusExpired},
		{"omitted with new future expiry re-derives", "", types.MemberStatusExpired, date(2024, time.July, 1), true, types.MemberStatusActive},
		{"omitted with new past expiry re-derives", "", types.MemberStatusActive, date(2024, time.May, 1), true, types.MemberStatusExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, resolveUpdateStatus(tc.requested, tc.stored, tc.expiry, tc.expiryChanged, now))
		})
	}
}
