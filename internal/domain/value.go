package domain

import (
	"strconv"
	"strings"
)

// NumericValue attempts to interpret a measurement value as a single number.
// Composite string readings such as "120/80" do not parse and return ok=false.
func NumericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FormatValue renders a measurement value for display. Floats drop trailing
// zeros so a logged 70 reads "70", not "70.000000".
func FormatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case string:
		return x
	case nil:
		return ""
	default:
		f, ok := NumericValue(v)
		if ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return ""
	}
}

// Human returns the human-readable metric name, e.g. "blood_pressure" ->
// "blood pressure". The intent matcher looks for these names in chat text.
func (t MetricType) Human() string {
	return strings.ReplaceAll(string(t), "_", " ")
}
