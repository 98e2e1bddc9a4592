package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repstack/repcore/internal/app"
)

type fakeHost struct {
	core     *app.Core
	enqueued []app.Event
	closed   bool
}

func (f *fakeHost) Enqueue(ev app.Event) bool {
	if f.closed {
		return false
	}
	f.enqueued = append(f.enqueued, ev)
	f.core.Update(ev)
	return true
}

func (f *fakeHost) View() app.ViewModel { return f.core.View() }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, pingErr error) (*Server, *fakeHost) {
	t.Helper()
	host := &fakeHost{core: app.New(nil)}
	return New(host, fakePinger{err: pingErr}, nil, prometheus.NewRegistry()), host
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAPIHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Database)
}

func TestAPIHealth_DatabaseDown(t *testing.T) {
	s, _ := newTestServer(t, errors.New("no such file"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Contains(t, resp.Database, "no such file")
}

func TestView(t *testing.T) {
	s, host := newTestServer(t, nil)
	host.core.Update(app.StartWorkout())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/view", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var vm app.ViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.True(t, vm.WorkoutView.HasActiveWorkout)
}

func TestPostEvent(t *testing.T) {
	s, host := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"kind":"start_workout"}`))
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, host.enqueued, 1)
	assert.Equal(t, app.EventStartWorkout, host.enqueued[0].Kind)
}

func TestPostEvent_Invalid(t *testing.T) {
	s, _ := newTestServer(t, nil)

	for _, body := range []string{`{`, `{"rename":{"name":"x"}}`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestPostEvent_ShuttingDown(t *testing.T) {
	s, host := newTestServer(t, nil)
	host.closed = true

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"kind":"start_workout"}`))
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "repcore_test_total"})
	reg.MustRegister(counter)
	counter.Inc()

	host := &fakeHost{core: app.New(nil)}
	s := New(host, fakePinger{}, nil, reg)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "repcore_test_total 1")
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/view", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
