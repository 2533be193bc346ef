package uptime_report

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NordCoder/uptime-report/internal/domain/summary"
	"github.com/NordCoder/uptime-report/internal/repository/pingdom"
	"github.com/NordCoder/uptime-report/internal/services/uptime-report/repo"
)

func newPingdomStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/checks", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"checks":[{"id":2,"name":"Beta"},{"id":1,"name":"Alpha"},{"id":3,"name":"Gamma"}]}`))
	})
	mux.HandleFunc("/summary.performance/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":{"weeks":[
			{"uptime":500000,"downtime":1200,"unmonitored":0},
			{"uptime":500000,"downtime":0,"unmonitored":300}]}}`))
	})
	mux.HandleFunc("/summary.performance/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":{"weeks":[{"uptime":604800,"downtime":0,"unmonitored":0}]}}`))
	})
	mux.HandleFunc("/summary.performance/3", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestUC(base string) *Usecase {
	cl := pingdom.New(pingdom.Config{BaseURL: base, APIKey: "k", Timeout: 2 * time.Second})
	runner := NewRunner(zap.NewNop(), repo.Summaries{C: cl}, RunnerConfig{Concurrency: 10, Pacing: time.Millisecond})
	return NewUC(repo.Checks{C: cl}, runner)
}

func TestReport_EndToEnd(t *testing.T) {
	srv := newPingdomStub(t)
	uc := newTestUC(srv.URL)

	stats, err := uc.Report(context.Background(), summary.DateRange{From: 1704067200, To: 1735603200})
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Alpha", stats[0].Name)
	assert.Equal(t, "Beta", stats[1].Name)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, stats))
	assert.Equal(t, "Alpha, 99.8802%, 20 mins\nBeta, 100.0%, 0 mins\n", buf.String())
}

func TestReport_ListFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestUC(srv.URL).Report(context.Background(), summary.DateRange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, summary.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "list checks")
}

func TestReport_ListWithoutChecksArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	stats, err := newTestUC(srv.URL).Report(context.Background(), summary.DateRange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, summary.ErrDecode)
	assert.Nil(t, stats)
}
