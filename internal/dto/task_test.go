package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{
			name: "date only is start of day",
			in:   `"2024-01-02"`,
			want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local),
		},
		{
			name: "naive local datetime",
			in:   `"2024-01-02T14:30:00"`,
			want: time.Date(2024, 1, 2, 14, 30, 0, 0, time.Local),
		},
		{
			name:    "null",
			in:      `null`,
			wantNil: true,
		},
		{
			name:    "empty string",
			in:      `"  "`,
			wantNil: true,
		},
		{
			name:    "garbage",
			in:      `"tomorrow"`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lt LocalTime
			err := json.Unmarshal([]byte(tt.in), &lt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, lt.Ptr())
				return
			}
			require.NotNil(t, lt.Ptr())
			assert.True(t, tt.want.Equal(*lt.Ptr()))
		})
	}
}

func TestLocalTimeUnmarshalRFC3339KeepsInstant(t *testing.T) {
	var lt LocalTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-02T14:30:00+02:00"`), &lt))
	require.NotNil(t, lt.Ptr())
	want := time.Date(2024, 1, 2, 14, 30, 0, 0, time.FixedZone("", 2*3600))
	assert.True(t, want.Equal(*lt.Ptr()))
}
