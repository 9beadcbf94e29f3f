package exporter

import (
	"fmt"
	"strconv"
)

// formatFloat formats a float64 with the shortest exact representation,
// so whole minutes appear as "90" rather than "90.00"
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatValue formats a table cell for CSV output
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return formatInt(int64(val))
	case int64:
		return formatInt(val)
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}
