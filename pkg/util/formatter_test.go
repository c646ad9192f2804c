package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatValueFactor(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{2.0, "A", "2.000 A"},
		{0.0, "A", "0.000 A"},
		{0.002, "A", "2.000 mA"},
		{-0.002, "A", "-2.000 mA"},
		{3.3e-6, "A", "3.300 uA"},
		{5e-9, "V", "5.000 nV"},
		{7e-12, "V", "7.000 pV"},
		{12.5, "V", "12.500 V"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatValueFactor(tc.value, tc.unit), "value %g", tc.value)
	}
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, -1.5, Min(-1.5, 0.0))
	require.Equal(t, "b", Max("a", "b"))
}
