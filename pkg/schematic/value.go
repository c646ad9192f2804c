package schematic

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit is the advisory unit suffix of a parsed label. It never changes the
// magnitude; callers decide what the number means from the element kind.
type Unit int

const (
	UnitNone Unit = iota
	UnitVolt
	UnitOhm
	UnitAmp
)

// Value is the structured result of parsing an element label such as
// "10V" or "4.7kΩ".
type Value struct {
	Magnitude float64
	Unit      Unit
}

var prefixMap = map[string]float64{
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"m": 1e-3,
}

var (
	labelRe   = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)\s*(k|K|M|m)?\s*(V|v|Ω|[Oo]hms?|A|a)?$`)
	leadingRe = regexp.MustCompile(`^[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)
)

// ParseLabel parses the label micro-format: optional sign, decimal number,
// optional metric prefix (k/K, M, m), optional unit suffix. When the strict
// grammar does not match, any leading number is accepted with no prefix or
// unit applied. The second result is false only when no number is present;
// callers fall back to per-kind defaults in that case.
func ParseLabel(label string) (Value, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return Value{}, false
	}

	if m := labelRe.FindStringSubmatch(s); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Value{}, false
		}
		if m[2] != "" {
			num *= prefixMap[m[2]]
		}
		return Value{Magnitude: num, Unit: unitOf(m[3])}, true
	}

	if m := leadingRe.FindString(s); m != "" {
		num, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Magnitude: num}, true
	}

	return Value{}, false
}

func unitOf(suffix string) Unit {
	switch suffix {
	case "V", "v":
		return UnitVolt
	case "A", "a":
		return UnitAmp
	case "":
		return UnitNone
	default:
		return UnitOhm
	}
}
