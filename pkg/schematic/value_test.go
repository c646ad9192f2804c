package schematic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	cases := []struct {
		label string
		want  float64
		unit  Unit
	}{
		{"10V", 10, UnitVolt},
		{"-5V", -5, UnitVolt},
		{".5V", 0.5, UnitVolt},
		{"4.7kΩ", 4700, UnitOhm},
		{"470 ohm", 470, UnitOhm},
		{"1 kOhm", 1000, UnitOhm},
		{"2M", 2e6, UnitNone},
		{"100m", 0.1, UnitNone},
		{"10mV", 0.01, UnitVolt},
		{"1.5e3", 1500, UnitNone},
		{"100", 100, UnitNone},
		{"3A", 3, UnitAmp},
	}
	for _, tc := range cases {
		v, ok := ParseLabel(tc.label)
		require.True(t, ok, "label %q should parse", tc.label)
		require.InDelta(t, tc.want, v.Magnitude, 1e-9, "label %q", tc.label)
		require.Equal(t, tc.unit, v.Unit, "label %q", tc.label)
	}
}

func TestParseLabelLeadingNumberFallback(t *testing.T) {
	v, ok := ParseLabel("9 V battery")
	require.True(t, ok)
	require.InDelta(t, 9.0, v.Magnitude, 1e-9)
	require.Equal(t, UnitNone, v.Unit)
}

func TestParseLabelRejectsNonNumeric(t *testing.T) {
	for _, label := range []string{"", "   ", "abc", "Ω", "k10"} {
		_, ok := ParseLabel(label)
		require.False(t, ok, "label %q should not parse", label)
	}
}
