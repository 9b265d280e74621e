package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var errNotANumber = errors.New("not a number")

// OptionalNumber accepts a JSON number, a numeric string, an empty string or
// null. Form inputs arrive as strings.
type OptionalNumber struct {
	value *float64
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		n.value = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			n.value = nil
			return nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return fmt.Errorf("%w: %q", errNotANumber, raw)
		}
		n.value = &parsed
		return nil
	}

	var parsed float64
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: %s", errNotANumber, data)
	}
	n.value = &parsed
	return nil
}

func (n OptionalNumber) Float() *float64 {
	if n.value == nil {
		return nil
	}
	value := *n.value
	return &value
}

// Int64 reports the value as a whole number. It is false when the value is
// absent or has a fractional part.
func (n OptionalNumber) Int64() (int64, bool) {
	if n.value == nil {
		return 0, false
	}
	value := *n.value
	if value != math.Trunc(value) || value >= math.MaxInt64 || value < math.MinInt64 {
		return 0, false
	}
	return int64(value), true
}

func (n OptionalNumber) IsSet() bool {
	return n.value != nil
}

// ParseDateParam accepts YYYY-MM-DD or an RFC 3339 timestamp. Blank input
// yields nil.
func ParseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ParseIDParam accepts any integer. Ids that cannot exist are left to the
// lookup to report as not found.
func ParseIDParam(value string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return parsed, nil
}
