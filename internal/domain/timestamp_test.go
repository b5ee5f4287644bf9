package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_AcceptsZonedAndZoneless(t *testing.T) {
	want := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	for _, in := range []string{
		`"2025-01-15T10:30:00Z"`,
		`"2025-01-15T12:30:00+02:00"`,
		`"2025-01-15T10:30:00"`,
		`"2025-01-15T10:30:00.000"`,
		`"2025-01-15 10:30:00"`,
	} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.True(t, want.Equal(ts.Time), in)
	}
}

func TestTimestamp_EmptyAndInvalid(t *testing.T) {
	var h Hotel
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"createdAt":null}`), &h))
	assert.True(t, h.CreatedAt.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"createdAt":""}`), &h))
	assert.True(t, h.CreatedAt.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"createdAt":"yesterday"}`), &h))
}

func TestTimestamp_MarshalRoundTrip(t *testing.T) {
	u := User{ID: 2, CreatedAt: Timestamp{time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)}}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"createdAt":"2025-01-15T10:30:00Z"`)

	var back User
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, u.CreatedAt.Equal(back.CreatedAt.Time))
}
