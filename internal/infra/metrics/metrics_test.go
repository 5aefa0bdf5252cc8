package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransferCounters(t *testing.T) {
	m := New()

	m.TransferSucceeded(decimal.RequireFromString("23.39"))
	m.TransferSucceeded(decimal.NewFromInt(10))
	m.TransferFailed("validation")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transfersTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transfersTotal.WithLabelValues("validation")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.transfersTotal.WithLabelValues("storage")))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "/users", "201", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("POST", "/users", "201")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.TransferFailed("storage")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bank_transfers_total{result="storage"} 1`)
}
