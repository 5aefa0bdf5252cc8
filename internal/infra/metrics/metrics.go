package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics agrupa os coletores do serviço num Registry próprio
// (nada de registry global: testes criam instâncias isoladas).
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	transfersTotal  *prometheus.CounterVec
	transferAmount  prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP por método, rota e status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latência das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transfersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_transfers_total",
			Help: "Transferências por resultado (success, validation, storage).",
		}, []string{"result"}),
		transferAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_transfer_amount",
			Help:    "Valor das transferências concluídas.",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.transfersTotal,
		m.transferAmount,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) TransferSucceeded(amount decimal.Decimal) {
	m.transfersTotal.WithLabelValues("success").Inc()
	// float só para o histograma; o valor real nunca passa por float
	value, _ := amount.Float64()
	m.transferAmount.Observe(value)
}

func (m *Metrics) TransferFailed(reason string) {
	m.transfersTotal.WithLabelValues(reason).Inc()
}
