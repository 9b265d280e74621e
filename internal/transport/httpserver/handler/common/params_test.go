package common

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalNumber(t *testing.T) {
	cases := []struct {
		raw   string
		isSet bool
		want  float64
	}{
		{`12.5`, true, 12.5},
		{`"12.5"`, true, 12.5},
		{`" 7 "`, true, 7},
		{`""`, false, 0},
		{`null`, false, 0},
	}

	for _, tc := range cases {
		var n OptionalNumber
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &n), tc.raw)
		assert.Equal(t, tc.isSet, n.IsSet(), tc.raw)
		if tc.isSet {
			assert.InDelta(t, tc.want, *n.Float(), 1e-9, tc.raw)
		} else {
			assert.Nil(t, n.Float(), tc.raw)
		}
	}
}

func TestOptionalNumberRejects(t *testing.T) {
	for _, raw := range []string{`"abc"`, `true`, `"NaN"`, `{}`} {
		var n OptionalNumber
		assert.Error(t, json.Unmarshal([]byte(raw), &n), raw)
	}
}

func TestOptionalNumberAbsentField(t *testing.T) {
	var body struct {
		Budget OptionalNumber `json:"budget"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.False(t, body.Budget.IsSet())
}

func TestOptionalNumberInt64(t *testing.T) {
	var n OptionalNumber
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &n))
	got, ok := n.Int64()
	assert.True(t, ok)
	assert.EqualValues(t, 42, got)

	require.NoError(t, json.Unmarshal([]byte(`1.5`), &n))
	_, ok = n.Int64()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`9223372036854775808`), &n))
	_, ok = n.Int64()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`-9223372036854775808`), &n))
	got, ok = n.Int64()
	assert.True(t, ok)
	assert.EqualValues(t, math.MinInt64, got)
}

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", got.Format("2006-01-02"))

	got, err = ParseDateParam("2024-06-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	got, err = ParseDateParam("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDateParam("06/01/2024")
	assert.Error(t, err)
}

func TestParseIDParam(t *testing.T) {
	for raw, want := range map[string]int64{"17": 17, "0": 0, "-3": -3} {
		id, err := ParseIDParam(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, id, raw)
	}

	for _, raw := range []string{"", "abc", "1.5", "99999999999999999999"} {
		_, err := ParseIDParam(raw)
		assert.Error(t, err, raw)
	}
}
