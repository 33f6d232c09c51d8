package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// TradeMetrics emits trading metrics to Prometheus
type TradeMetrics struct {
	ordersTotal       *prometheus.CounterVec
	orderDuration     *prometheus.HistogramVec
	settlementAmount  *prometheus.HistogramVec
	positionsSynced   prometheus.Counter
	syncFailuresTotal prometheus.Counter
}

// NewTradeMetrics registers the trading metrics on the default registry
func NewTradeMetrics() MetricsRecorderInterface {
	return newTradeMetrics(prometheus.DefaultRegisterer)
}

func newTradeMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &TradeMetrics{
		ordersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trade_orders_total",
				Help: "Total number of orders placed at execution backends",
			},
			[]string{"side", "backend", "status"},
		),
		orderDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trade_order_duration_milliseconds",
				Help:    "Order placement duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"backend"},
		),
		settlementAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trade_settlement_amount",
				Help:    "Settled cash amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"side"},
		),
		positionsSynced: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "position_valuations_synced_total",
				Help: "Total number of position valuations refreshed",
			},
		),
		syncFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "position_valuation_sync_failures_total",
				Help: "Total number of positions skipped during valuation sync",
			},
		),
	}
}

func (m *TradeMetrics) RecordOrder(side, backend, status string) {
	m.ordersTotal.WithLabelValues(side, backend, status).Inc()
}

func (m *TradeMetrics) ObserveOrderDuration(backend string, duration time.Duration) {
	m.orderDuration.WithLabelValues(backend).Observe(float64(duration.Milliseconds()))
}

func (m *TradeMetrics) ObserveSettlement(side string, amount decimal.Decimal) {
	m.settlementAmount.WithLabelValues(side).Observe(amount.InexactFloat64())
}

func (m *TradeMetrics) RecordSyncResult(synced, failed int) {
	m.positionsSynced.Add(float64(synced))
	m.syncFailuresTotal.Add(float64(failed))
}

// NoopMetrics discards every observation. Tests use it where metric output
// is irrelevant.
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) RecordOrder(side, backend, status string)              {}
func (m *NoopMetrics) ObserveOrderDuration(backend string, d time.Duration)  {}
func (m *NoopMetrics) ObserveSettlement(side string, amount decimal.Decimal) {}
func (m *NoopMetrics) RecordSyncResult(synced, failed int)                   {}
