package prometheus

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	requestDuration.Reset()
	requestsTotal.Reset()

	RecordRequest("tts.Synthesize", "200", 300*time.Millisecond)
	RecordRequest("tts.Synthesize", "200", time.Second)
	RecordRequest("tts.Synthesize", "401", 50*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(requestsTotal.WithLabelValues("tts.Synthesize", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(requestsTotal.WithLabelValues("tts.Synthesize", "401")))
	assert.Equal(t, 1, testutil.CollectAndCount(requestDuration))
}

func TestRecordRequestStartEnd(t *testing.T) {
	requestsInFlight.Set(0)

	RecordRequestStart()
	RecordRequestStart()
	assert.Equal(t, 2.0, testutil.ToFloat64(requestsInFlight))

	RecordRequestEnd()
	assert.Equal(t, 1.0, testutil.ToFloat64(requestsInFlight))
	RecordRequestEnd()
	assert.Equal(t, 0.0, testutil.ToFloat64(requestsInFlight))
}

func TestRecordSynthesis(t *testing.T) {
	charactersTotal.Reset()
	audioBytesTotal.Reset()

	RecordSynthesis("eleven_turbo_v2_5", 12, 4096)
	RecordSynthesis("", 5, 0)

	assert.Equal(t, 12.0, testutil.ToFloat64(charactersTotal.WithLabelValues("eleven_turbo_v2_5")))
	assert.Equal(t, 4096.0, testutil.ToFloat64(audioBytesTotal.WithLabelValues("eleven_turbo_v2_5")))
	assert.Equal(t, 5.0, testutil.ToFloat64(charactersTotal.WithLabelValues("default")))
	assert.Equal(t, 1, testutil.CollectAndCount(audioBytesTotal))
}

func TestRecorder(t *testing.T) {
	requestsTotal.Reset()
	requestsInFlight.Set(0)
	charactersTotal.Reset()

	r := NewRecorder()
	r.RequestStarted("user.GetUserInfo")
	assert.Equal(t, 1.0, testutil.ToFloat64(requestsInFlight))

	r.RequestFinished("user.GetUserInfo", "transport_error", 10*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(requestsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(requestsTotal.WithLabelValues("user.GetUserInfo", "transport_error")))

	r.Synthesized("m", 3, 9)
	assert.Equal(t, 3.0, testutil.ToFloat64(charactersTotal.WithLabelValues("m")))
}

func TestNewExporter(t *testing.T) {
	exporter := NewExporter(":0")
	require.NotNil(t, exporter.Registry())

	RecordRequest("voices.DeleteVoice", "204", time.Millisecond)

	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "elevenlabs_client_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestExporterWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	exporter := NewExporterWithRegistry(":0", reg)
	assert.Same(t, reg, exporter.Registry())

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "custom_total", Help: "custom"})
	require.NoError(t, exporter.Register(counter))
	assert.Error(t, exporter.Register(counter))
}

func TestExporterStartShutdown(t *testing.T) {
	exporter := NewExporterWithRegistry("127.0.0.1:0", prometheus.NewRegistry())

	errCh := make(chan error, 1)
	go func() {
		errCh <- exporter.Start()
	}()

	require.Eventually(t, func() bool {
		exporter.mu.Lock()
		defer exporter.mu.Unlock()
		return exporter.started
	}, time.Second, 10*time.Millisecond)

	// A second Start while running is a no-op.
	assert.NoError(t, exporter.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, exporter.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for exporter to stop")
	}
}

func TestExporterShutdownNotStarted(t *testing.T) {
	exporter := NewExporterWithRegistry(":0", prometheus.NewRegistry())
	assert.NoError(t, exporter.Shutdown(context.Background()))
}

func TestExporterHandler_EmptyRegistry(t *testing.T) {
	mux := http.NewServeMux()
	exporter := NewExporterWithRegistry(":0", prometheus.NewRegistry())
	mux.Handle("/metrics", exporter.Handler())

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, strings.Contains(string(body), "elevenlabs_"))
}
