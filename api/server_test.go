package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"}))
	return NewApi(":0", t.TempDir(), reg).Handler()
}

func TestListCurves(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/curves", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "ease")
}

func TestSampleCurve(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/curves/linear?samples=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Name   string    `json:"name"`
		Values []float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "linear", body.Name)
	assert.Equal(t, []float64{0, 0.5, 1}, body.Values)
}

func TestSampleCurveErrors(t *testing.T) {
	h := newTestApi(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/curves/wobble", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/curves/ease?samples=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_total")
}
