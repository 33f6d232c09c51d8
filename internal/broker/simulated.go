package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinSimulatedQty is the smallest quantity the simulated backend fills.
var MinSimulatedQty = decimal.NewFromFloat(0.0001)

// book is the simulated backend's in-memory market state. All access goes
// through the owning backend's mutex; the maps are never shared out.
type book struct {
	prices         map[string]decimal.Decimal
	holdings       map[string]*Holding
	orders         map[string]*Order
	ordersByClient map[string]*Order
	cash           decimal.Decimal
}

func newBook(startingCash decimal.Decimal) *book {
	return &book{
		prices:         make(map[string]decimal.Decimal),
		holdings:       make(map[string]*Holding),
		orders:         make(map[string]*Order),
		ordersByClient: make(map[string]*Order),
		cash:           startingCash,
	}
}

// SimulatedBackend fills orders instantly at the last known price, accepts
// fractional quantities down to MinSimulatedQty and charges no commission.
// It keeps its own order and holding book but performs no settlement: cash
// movement against the deposit pool is the trading service's job.
type SimulatedBackend struct {
	mu     sync.Mutex
	book   *book
	logger *slog.Logger
}

// NewSimulatedBackend creates a simulated backend with the given starting
// cash in its internal account view
func NewSimulatedBackend(startingCash decimal.Decimal, logger *slog.Logger) *SimulatedBackend {
	return &SimulatedBackend{
		book:   newBook(startingCash),
		logger: logger,
	}
}

// Name identifies the backend
func (b *SimulatedBackend) Name() string {
	return ModeSimulated
}

// ResolveQuantity converts a cash amount into fractional shares, truncated
// to the book's quantity precision
func (b *SimulatedBackend) ResolveQuantity(amount, price decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price %s", ErrInvalidOrder, price)
	}

	qty := amount.Div(price).Truncate(4)
	if qty.LessThan(MinSimulatedQty) {
		return decimal.Zero, fmt.Errorf("%w: %s buys %s at %s", ErrQuantityTooSmall, amount, qty, price)
	}
	return qty, nil
}

// SetPrice feeds a market snapshot into the book. Tests and price feeds use
// this; there is no other price source in simulation.
func (b *SimulatedBackend) SetPrice(symbol string, price decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.book.prices[symbol] = price
}

// CurrentPrice returns the last known price for a symbol
func (b *SimulatedBackend) CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	price, ok := b.book.prices[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}
	return price, nil
}

// Buy fills a buy order instantly at the requested or last known price
func (b *SimulatedBackend) Buy(ctx context.Context, req OrderRequest) (*Fill, error) {
	return b.execute(ctx, req, SideBuy)
}

// Sell fills a sell order instantly, rejecting quantities beyond the holding
func (b *SimulatedBackend) Sell(ctx context.Context, req OrderRequest) (*Fill, error) {
	return b.execute(ctx, req, SideSell)
}

func (b *SimulatedBackend) execute(ctx context.Context, req OrderRequest, side string) (*Fill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidOrder)
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = OrderTypeMarket
	}
	if !IsValidOrderType(orderType) {
		return nil, fmt.Errorf("%w: order type %q", ErrInvalidOrder, req.OrderType)
	}

	if req.Quantity.LessThan(MinSimulatedQty) {
		return nil, fmt.Errorf("%w: %s is below %s", ErrQuantityTooSmall, req.Quantity, MinSimulatedQty)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Idempotent resubmission: a known client order ID returns the
	// original fill without executing again.
	if req.ClientOrderID != "" {
		if existing, ok := b.book.ordersByClient[req.ClientOrderID]; ok {
			return fillFromOrder(existing), nil
		}
	}

	price, ok := b.book.prices[req.Symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPriceUnavailable, req.Symbol)
	}
	if orderType == OrderTypeLimit && req.LimitPrice != nil {
		price = *req.LimitPrice
	}

	if side == SideSell {
		holding, held := b.book.holdings[req.Symbol]
		if !held || holding.Quantity.LessThan(req.Quantity) {
			return nil, fmt.Errorf("%w: %s %s", ErrInsufficientPosition, req.Quantity, req.Symbol)
		}
	}

	now := time.Now()
	order := &Order{
		ID:             uuid.New().String(),
		ClientOrderID:  req.ClientOrderID,
		Symbol:         req.Symbol,
		Side:           side,
		OrderType:      orderType,
		Status:         OrderStatusFilled,
		Quantity:       req.Quantity,
		FilledQty:      req.Quantity,
		FilledAvgPrice: price,
		Commission:     decimal.Zero,
		SubmittedAt:    now,
		FilledAt:       &now,
	}

	b.applyFill(order)

	b.book.orders[order.ID] = order
	if order.ClientOrderID != "" {
		b.book.ordersByClient[order.ClientOrderID] = order
	}

	b.logger.Debug("simulated fill",
		"symbol", order.Symbol,
		"side", order.Side,
		"qty", order.FilledQty.String(),
		"price", order.FilledAvgPrice.String())

	return fillFromOrder(order), nil
}

// applyFill updates the backend's own holding and cash book. This is
// bookkeeping of the backend's world view, not settlement.
func (b *SimulatedBackend) applyFill(order *Order) {
	gross := order.FilledAvgPrice.Mul(order.FilledQty)
	holding := b.book.holdings[order.Symbol]

	if order.Side == SideBuy {
		b.book.cash = b.book.cash.Sub(gross)
		if holding == nil {
			b.book.holdings[order.Symbol] = &Holding{
				Symbol:       order.Symbol,
				Quantity:     order.FilledQty,
				AvgEntry:     order.FilledAvgPrice,
				CurrentPrice: order.FilledAvgPrice,
				MarketValue:  gross,
			}
			return
		}

		oldCost := holding.AvgEntry.Mul(holding.Quantity)
		holding.Quantity = holding.Quantity.Add(order.FilledQty)
		holding.AvgEntry = oldCost.Add(gross).Div(holding.Quantity)
		holding.CurrentPrice = order.FilledAvgPrice
		holding.MarketValue = holding.CurrentPrice.Mul(holding.Quantity)
		return
	}

	b.book.cash = b.book.cash.Add(gross)
	holding.Quantity = holding.Quantity.Sub(order.FilledQty)
	holding.CurrentPrice = order.FilledAvgPrice
	holding.MarketValue = holding.CurrentPrice.Mul(holding.Quantity)
	if holding.Quantity.LessThan(MinSimulatedQty) {
		delete(b.book.holdings, order.Symbol)
	}
}

// AccountBalance returns the simulated cash balance
func (b *SimulatedBackend) AccountBalance(ctx context.Context) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.book.cash, nil
}

// Account returns the simulated account snapshot
func (b *SimulatedBackend) Account(ctx context.Context) (*AccountSnapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	equity := b.book.cash
	for _, holding := range b.book.holdings {
		equity = equity.Add(holding.MarketValue)
	}

	return &AccountSnapshot{
		AccountRef:  "simulated",
		Cash:        b.book.cash,
		Equity:      equity,
		BuyingPower: b.book.cash,
		Currency:    "USD",
	}, nil
}

// Positions returns all simulated holdings
func (b *SimulatedBackend) Positions(ctx context.Context) ([]Holding, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	holdings := make([]Holding, 0, len(b.book.holdings))
	for _, holding := range b.book.holdings {
		holdings = append(holdings, *holding)
	}

	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].Symbol < holdings[j].Symbol
	})

	return holdings, nil
}

// Position returns the simulated holding for one symbol, nil if none
func (b *SimulatedBackend) Position(ctx context.Context, symbol string) (*Holding, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	holding, ok := b.book.holdings[symbol]
	if !ok {
		return nil, nil
	}

	copied := *holding
	return &copied, nil
}

// Orders lists simulated orders, newest first
func (b *SimulatedBackend) Orders(ctx context.Context, status string, limit int) ([]Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders := make([]Order, 0, len(b.book.orders))
	for _, order := range b.book.orders {
		if status != "" && order.Status != status {
			continue
		}
		orders = append(orders, *order)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].SubmittedAt.After(orders[j].SubmittedAt)
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

// Order returns one simulated order by ID
func (b *SimulatedBackend) Order(ctx context.Context, orderID string) (*Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order, ok := b.book.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}

	copied := *order
	return &copied, nil
}

// CancelOrder cancels an unfilled order. Simulated orders fill instantly,
// so this only ever reports the order as already filled or missing.
func (b *SimulatedBackend) CancelOrder(ctx context.Context, orderID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	order, ok := b.book.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	if order.Status == OrderStatusFilled {
		return fmt.Errorf("%w: order %s already filled", ErrInvalidOrder, orderID)
	}

	order.Status = OrderStatusCanceled
	return nil
}

func fillFromOrder(order *Order) *Fill {
	filledAt := order.SubmittedAt
	if order.FilledAt != nil {
		filledAt = *order.FilledAt
	}

	return &Fill{
		OrderID:        order.ID,
		ClientOrderID:  order.ClientOrderID,
		Symbol:         order.Symbol,
		Side:           order.Side,
		OrderType:      order.OrderType,
		Status:         order.Status,
		FilledQty:      order.FilledQty,
		FilledAvgPrice: order.FilledAvgPrice,
		Commission:     order.Commission,
		FilledAt:       filledAt,
	}
}
