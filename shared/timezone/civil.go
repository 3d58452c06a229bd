package timezone

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var civilPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[ T](\d{2}):(\d{2}):(\d{2})$`)

// FormatError reports a civil-time string that does not match YYYY-MM-DD HH:mm:ss.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid civil time %q: expected YYYY-MM-DD HH:mm:ss", e.Value)
}

// ParseCivil reads a wall-clock string at the fixed UTC+9 offset and returns epoch milliseconds.
// Out-of-range fields roll over the same way time.Date normalizes them.
func ParseCivil(value string) (int64, error) {
	match := civilPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, &FormatError{Value: value}
	}

	fields := make([]int, len(match)-1)
	for i, raw := range match[1:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, &FormatError{Value: value}
		}

		fields[i] = n
	}

	year, month, day, hour, minute, second := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]
	offsetHours := int(civilOffset / time.Hour)

	return time.Date(year, time.Month(month), day, hour-offsetHours, minute, second, 0, time.UTC).UnixMilli(), nil
}

// ToEpochMillis normalizes a numeric epoch or a civil-time string into epoch milliseconds.
// Numbers pass through unchanged; strings must match the civil pattern.
func ToEpochMillis(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(math.Trunc(v)), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}

		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid epoch number %q: %w", v.String(), err)
		}

		return int64(math.Trunc(f)), nil
	case string:
		return ParseCivil(v)
	default:
		return 0, fmt.Errorf("unsupported timestamp type %T", value)
	}
}

// TruncateToMinute zeroes the seconds and milliseconds of an epoch value.
func TruncateToMinute(ms int64) int64 {
	const minute = int64(time.Minute / time.Millisecond)

	return ms - ((ms%minute)+minute)%minute
}
