package tool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{5000, "50.00"},
		{13550, "135.50"},
		{5, "0.05"},
		{0, "0.00"},
		{-1250, "-12.50"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatCents(tc.cents))
	}
}

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"50.00", 5000},
		{"50", 5000},
		{"50.5", 5050},
		{" 135.00 ", 13500},
		{"0.05", 5},
		{"-12.50", -1250},
	}
	for _, tc := range cases {
		got, err := ParseAmountCents(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseAmountCents_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "50.005", "50.x"} {
		_, err := ParseAmountCents(in)
		require.Error(t, err, in)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	got, err := ParseAmountCents(FormatCents(4800))
	require.NoError(t, err)
	require.Equal(t, int64(4800), got)
}
