package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRFC3339DateJSON(t *testing.T) {
	d := RFC3339Date{Time: time.Date(2009, 11, 17, 8, 30, 0, 0, time.UTC)}

	data, err := json.Marshal(struct {
		At RFC3339Date `json:"at"`
	}{d})
	require.NoError(t, err)
	assert.Equal(t, `{"at":"2009-11-17T08:30:00Z"}`, string(data))

	tests := []struct {
		in   string
		want time.Time
	}{
		{in: `"2009-11-17T08:30:00Z"`, want: d.Time},
		{in: `"2009-11-17"`, want: time.Date(2009, 11, 17, 0, 0, 0, 0, time.UTC)},
		{in: `""`, want: time.Time{}},
	}

	for _, tt := range tests {
		var got RFC3339Date
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.True(t, tt.want.Equal(got.Time), tt.in)
	}

	var bad RFC3339Date
	assert.Error(t, json.Unmarshal([]byte(`"17/11/2009"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}
