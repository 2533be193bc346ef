//go:build e2e

package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs a built binary (E2E_BIN, default bin/uptime-report at the repo root) against a stub API.
// Build it first: go build -o bin/uptime-report ./cmd/uptime-report

func binPath(t *testing.T) string {
	t.Helper()
	p := getenv("E2E_BIN", "../../bin/uptime-report")
	if _, err := os.Stat(p); err != nil {
		t.Skipf("binary %s not found: %v", p, err)
	}
	return p
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func stubAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/checks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer e2e" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"checks":[{"id":2,"name":"Beta"},{"id":1,"name":"Alpha"}]}`))
	})
	mux.HandleFunc("/summary.performance/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":{"weeks":[{"uptime":500000,"downtime":1200,"unmonitored":0},{"uptime":500000,"downtime":0,"unmonitored":300}]}}`))
	})
	mux.HandleFunc("/summary.performance/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":{"weeks":[{"uptime":604800,"downtime":0,"unmonitored":0}]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binPath(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append([]string{"PATH=" + os.Getenv("PATH")}, env...)
	var out bytes.Buffer
	cmd.Stdout = &out
	err := cmd.Run()
	return out.String(), err
}

func TestReport(t *testing.T) {
	srv := stubAPI(t)
	out, err := run(t,
		[]string{"PINGDOM_API_KEY=e2e", "PINGDOM_API_URL=" + srv.URL, "FETCH_PACING=1ms"},
		"--start-date", "01/01/2024", "--end-date", "12/31/2024",
	)
	require.NoError(t, err)
	assert.Equal(t,
		"Calculating uptime from 2024-01-01 to 2024-12-31\n"+
			"Alpha, 99.8802%, 20 mins\n"+
			"Beta, 100.0%, 0 mins\n",
		out)
}

func TestUsageExitsZero(t *testing.T) {
	out, err := run(t, nil, "--start-date", "01/01/2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "uptime-report"))
	assert.Contains(t, out, "PINGDOM_API_KEY")
}

func TestMissingAPIKeyFails(t *testing.T) {
	_, err := run(t, nil, "-s", "01/01/2024", "-e", "01/02/2024")
	var ee *exec.ExitError
	require.ErrorAs(t, err, &ee)
	assert.NotZero(t, ee.ExitCode())
}
