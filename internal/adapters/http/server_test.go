package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpAdapter "github.com/nbertram/kauffman/internal/adapters/http"
	"github.com/nbertram/kauffman/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpAdapter.NewHandler(logging.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSimulate(t *testing.T) {
	srv := newServer(t)

	body := `{"nodes": 10, "edges": 30, "steps": 20, "disturbances": 2, "seed": 5}`
	resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result httpAdapter.SimulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, int64(5), result.Seed)
	assert.GreaterOrEqual(t, result.Stats.TotalEdges, 30)
	require.Len(t, result.Frames, 21)
	for _, frame := range result.Frames {
		assert.Len(t, frame, 10)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	srv := newServer(t)
	body := `{"nodes": 8, "edges": 20, "steps": 15, "seed": 99}`

	fetch := func() httpAdapter.SimulateResponse {
		resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var result httpAdapter.SimulateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		return result
	}
	assert.Equal(t, fetch(), fetch())
}

func TestSimulate_BadRequests(t *testing.T) {
	srv := newServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"nodes":`},
		{"unknown key", `{"nodes": 5, "edges": 5, "steps": 10, "bogus": 1}`},
		{"zero nodes", `{"nodes": 0, "edges": 5, "steps": 10}`},
		{"edge budget exceeded", `{"nodes": 4, "edges": 17, "steps": 10}`},
		{"too many disturbances", `{"nodes": 4, "edges": 4, "steps": 10, "disturbances": 10}`},
		{"oversized run", `{"nodes": 100000, "edges": 0, "steps": 100000}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t)

	// Drive one run so the counters move.
	body := `{"nodes": 6, "edges": 12, "steps": 10, "seed": 3}`
	resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kauffman_transitions_total 10")
}
