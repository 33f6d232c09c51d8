package broker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend() *SimulatedBackend {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSimulatedBackend(decimal.NewFromInt(100000), logger)
}

func TestSimulatedBackend_CurrentPrice(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(220))

	price, err := b.CurrentPrice(context.Background(), "VTI")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(220)))
}

func TestSimulatedBackend_CurrentPrice_Unavailable(t *testing.T) {
	b := newTestBackend()

	_, err := b.CurrentPrice(context.Background(), "UNKNOWN")

	assert.ErrorIs(t, err, ErrPriceUnavailable)
}

func TestSimulatedBackend_ResolveQuantity(t *testing.T) {
	b := newTestBackend()

	qty, err := b.ResolveQuantity(decimal.NewFromInt(70), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(7)))

	// Fractional result truncated to four decimal places
	qty, err = b.ResolveQuantity(decimal.NewFromInt(100), decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromFloat(33.3333)))
}

func TestSimulatedBackend_ResolveQuantity_TooSmall(t *testing.T) {
	b := newTestBackend()

	_, err := b.ResolveQuantity(decimal.NewFromFloat(0.0001), decimal.NewFromInt(10))

	assert.ErrorIs(t, err, ErrQuantityTooSmall)
}

func TestSimulatedBackend_Buy(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	fill, err := b.Buy(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromInt(7),
	})
	require.NoError(t, err)

	assert.Equal(t, OrderStatusFilled, fill.Status)
	assert.Equal(t, SideBuy, fill.Side)
	assert.True(t, fill.FilledQty.Equal(decimal.NewFromInt(7)))
	assert.True(t, fill.FilledAvgPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, fill.Commission.IsZero())
	assert.True(t, fill.TotalCost().Equal(decimal.NewFromInt(70)))

	holding, err := b.Position(context.Background(), "VTI")
	require.NoError(t, err)
	require.NotNil(t, holding)
	assert.True(t, holding.Quantity.Equal(decimal.NewFromInt(7)))
}

func TestSimulatedBackend_Buy_FractionalQuantity(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	fill, err := b.Buy(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromFloat(6.3333),
	})
	require.NoError(t, err)
	assert.True(t, fill.FilledQty.Equal(decimal.NewFromFloat(6.3333)))
}

func TestSimulatedBackend_Buy_QuantityBelowMinimum(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	_, err := b.Buy(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromFloat(0.00001),
	})

	assert.ErrorIs(t, err, ErrQuantityTooSmall)
}

func TestSimulatedBackend_Buy_MissingSymbol(t *testing.T) {
	b := newTestBackend()

	_, err := b.Buy(context.Background(), OrderRequest{
		Quantity: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestSimulatedBackend_Buy_NoPrice(t *testing.T) {
	b := newTestBackend()

	_, err := b.Buy(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, ErrPriceUnavailable)
}

func TestSimulatedBackend_Buy_LimitPrice(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))
	limit := decimal.NewFromInt(9)

	fill, err := b.Buy(context.Background(), OrderRequest{
		Symbol:     "VTI",
		Quantity:   decimal.NewFromInt(7),
		OrderType:  OrderTypeLimit,
		LimitPrice: &limit,
	})
	require.NoError(t, err)
	assert.True(t, fill.FilledAvgPrice.Equal(limit))
}

func TestSimulatedBackend_Buy_IdempotentResubmission(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	req := OrderRequest{
		Symbol:        "VTI",
		Quantity:      decimal.NewFromInt(7),
		ClientOrderID: "POS-test-1",
	}

	first, err := b.Buy(context.Background(), req)
	require.NoError(t, err)

	// Resubmission with the same client order ID returns the original fill
	// and does not execute again, even at a new price.
	b.SetPrice("VTI", decimal.NewFromInt(15))
	second, err := b.Buy(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.OrderID, second.OrderID)
	assert.True(t, second.FilledAvgPrice.Equal(decimal.NewFromInt(10)))

	holding, err := b.Position(context.Background(), "VTI")
	require.NoError(t, err)
	require.NotNil(t, holding)
	assert.True(t, holding.Quantity.Equal(decimal.NewFromInt(7)))
}

func TestSimulatedBackend_Sell(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	_, err := b.Buy(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromInt(7),
	})
	require.NoError(t, err)

	b.SetPrice("VTI", decimal.NewFromInt(12))
	fill, err := b.Sell(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromInt(7),
	})
	require.NoError(t, err)

	assert.Equal(t, SideSell, fill.Side)
	assert.True(t, fill.NetProceeds().Equal(decimal.NewFromInt(84)))

	// Full liquidation removes the holding
	holding, err := b.Position(context.Background(), "VTI")
	require.NoError(t, err)
	assert.Nil(t, holding)
}

func TestSimulatedBackend_Sell_InsufficientPosition(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	_, err := b.Sell(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, ErrInsufficientPosition)
}

func TestSimulatedBackend_AccountTracksFills(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	_, err := b.Buy(context.Background(), OrderRequest{
		Symbol:   "VTI",
		Quantity: decimal.NewFromInt(7),
	})
	require.NoError(t, err)

	balance, err := b.AccountBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(99930)))

	account, err := b.Account(context.Background())
	require.NoError(t, err)
	assert.True(t, account.Equity.Equal(decimal.NewFromInt(100000)))
}

func TestSimulatedBackend_Orders(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))
	b.SetPrice("BND", decimal.NewFromInt(75))

	_, err := b.Buy(context.Background(), OrderRequest{Symbol: "VTI", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = b.Buy(context.Background(), OrderRequest{Symbol: "BND", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)

	orders, err := b.Orders(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	filled, err := b.Orders(context.Background(), OrderStatusFilled, 1)
	require.NoError(t, err)
	assert.Len(t, filled, 1)

	got, err := b.Order(context.Background(), orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, orders[0].ID, got.ID)

	_, err = b.Order(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSimulatedBackend_CancelOrder(t *testing.T) {
	b := newTestBackend()
	b.SetPrice("VTI", decimal.NewFromInt(10))

	fill, err := b.Buy(context.Background(), OrderRequest{Symbol: "VTI", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)

	// Simulated orders fill instantly, so cancel always reports too late
	err = b.CancelOrder(context.Background(), fill.OrderID)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	err = b.CancelOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestQuote_MidPrice(t *testing.T) {
	quote := Quote{
		BidPrice: decimal.NewFromInt(99),
		AskPrice: decimal.NewFromInt(101),
	}
	assert.True(t, quote.MidPrice().Equal(decimal.NewFromInt(100)))

	thin := Quote{LastPrice: decimal.NewFromInt(42)}
	assert.True(t, thin.MidPrice().Equal(decimal.NewFromInt(42)))
}
