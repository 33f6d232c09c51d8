package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeMetrics_RecordOrder(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newTradeMetrics(registry)

	metrics.RecordOrder("buy", "simulated", "filled")
	metrics.RecordOrder("buy", "simulated", "filled")
	metrics.RecordOrder("sell", "simulated", "error")

	tm := metrics.(*TradeMetrics)
	assert.Equal(t, float64(2),
		testutil.ToFloat64(tm.ordersTotal.WithLabelValues("buy", "simulated", "filled")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(tm.ordersTotal.WithLabelValues("sell", "simulated", "error")))
}

func TestTradeMetrics_RecordSyncResult(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newTradeMetrics(registry)

	metrics.RecordSyncResult(3, 1)
	metrics.RecordSyncResult(2, 0)

	tm := metrics.(*TradeMetrics)
	assert.Equal(t, float64(5), testutil.ToFloat64(tm.positionsSynced))
	assert.Equal(t, float64(1), testutil.ToFloat64(tm.syncFailuresTotal))
}

func TestTradeMetrics_Observations(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newTradeMetrics(registry)

	metrics.ObserveOrderDuration("simulated", 120*time.Millisecond)
	metrics.ObserveSettlement("buy", decimal.NewFromInt(70))

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["trade_order_duration_milliseconds"])
	assert.True(t, names["trade_settlement_amount"])
}
