package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	Interval Duration `json:"interval" yaml:"interval"`
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string", `{"interval":"15s"}`, 15 * time.Second, false},
		{"compound string", `{"interval":"1m30s"}`, 90 * time.Second, false},
		{"nanoseconds", `{"interval":1000000000}`, time.Second, false},
		{"bad string", `{"interval":"soon"}`, 0, true},
		{"bad type", `{"interval":true}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h holder
			err := json.Unmarshal([]byte(tt.in), &h)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Interval.Duration)
		})
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("interval: 2m\n"), &h))
	assert.Equal(t, 2*time.Minute, h.Interval.Duration)

	require.NoError(t, yaml.Unmarshal([]byte("interval: 500\n"), &h))
	assert.Equal(t, 500*time.Nanosecond, h.Interval.Duration)

	require.Error(t, yaml.Unmarshal([]byte("interval: later\n"), &h))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(holder{Interval: Duration{3 * time.Second}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"interval":"3s"}`, string(b))
}
