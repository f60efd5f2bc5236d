package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationSecondsUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second},
	}
	for _, tc := range cases {
		var d durationSeconds
		require.NoError(t, d.UnmarshalEnvironment(tc.raw))
		require.Equal(t, tc.want, d.Duration())
	}

	var d durationSeconds
	require.Error(t, d.UnmarshalEnvironment("soon"))
}

func TestHTTPTimeoutsFitServer(t *testing.T) {
	httpCfg := HTTPConfig{
		ReadTimeout:  durationSeconds(10 * time.Second),
		WriteTimeout: durationSeconds(10 * time.Second),
		IdleTimeout:  durationSeconds(60 * time.Second),
	}

	server := &http.Server{
		ReadTimeout:  httpCfg.ReadTimeout.Duration(),
		WriteTimeout: httpCfg.WriteTimeout.Duration(),
		IdleTimeout:  httpCfg.IdleTimeout.Duration(),
	}
	require.Equal(t, 10*time.Second, server.ReadTimeout)
	require.Equal(t, 10*time.Second, server.WriteTimeout)
	require.Equal(t, 60*time.Second, server.IdleTimeout)
}
