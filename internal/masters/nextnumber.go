package masters

import (
	"strconv"
	"strings"
)

// NextNumber returns one past the largest numeric value of number across
// records, or "1" when none is numeric. Blank and non-numeric values are
// skipped.
func NextNumber[T any](records []T, number func(T) string) string {
	var highest int64
	for _, r := range records {
		n, err := strconv.ParseInt(strings.TrimSpace(number(r)), 10, 64)
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return strconv.FormatInt(highest+1, 10)
}
