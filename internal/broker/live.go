package broker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// LiveConfig configures the live brokerage connection
type LiveConfig struct {
	BaseURL         string
	APIKey          string
	APISecret       string
	RequestTimeout  time.Duration
	OrdersPerSecond float64
}

// LiveBackend places orders against an external brokerage REST API. The
// brokerage accepts whole-share quantities only, reports its own commission
// on each fill and quotes mid-market pricing. Order submission is
// rate-limited and guarded by a circuit breaker; all calls carry the
// caller's context deadline.
type LiveBackend struct {
	client  *resty.Client
	limiter *rate.Limiter
	breaker *CircuitBreaker
	logger  *slog.Logger
}

// NewLiveBackend creates a live backend from config
func NewLiveBackend(cfg LiveConfig, logger *slog.Logger) *LiveBackend {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("APCA-API-KEY-ID", cfg.APIKey).
		SetHeader("APCA-API-SECRET-KEY", cfg.APISecret).
		SetHeader("Accept", "application/json")

	ordersPerSecond := cfg.OrdersPerSecond
	if ordersPerSecond <= 0 {
		ordersPerSecond = 2
	}

	return &LiveBackend{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(ordersPerSecond), 1),
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		logger:  logger,
	}
}

// Name identifies the backend
func (b *LiveBackend) Name() string {
	return ModeLive
}

// ResolveQuantity floors a cash amount to whole shares. The brokerage only
// fills whole-share quantities.
func (b *LiveBackend) ResolveQuantity(amount, price decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price %s", ErrInvalidOrder, price)
	}

	qty := amount.Div(price).Truncate(0)
	if qty.LessThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("%w: %s buys less than 1 share at %s", ErrQuantityTooSmall, amount, price)
	}
	return qty, nil
}

type quotePayload struct {
	Symbol string `json:"symbol"`
	Quote  struct {
		BidPrice decimal.Decimal `json:"bp"`
		AskPrice decimal.Decimal `json:"ap"`
		AsOf     time.Time       `json:"t"`
	} `json:"quote"`
}

type tradePayload struct {
	Trade struct {
		Price decimal.Decimal `json:"p"`
	} `json:"trade"`
}

type orderPayload struct {
	ID             string          `json:"id"`
	ClientOrderID  string          `json:"client_order_id"`
	Symbol         string          `json:"symbol"`
	Side           string          `json:"side"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Qty            decimal.Decimal `json:"qty"`
	FilledQty      decimal.Decimal `json:"filled_qty"`
	FilledAvgPrice decimal.Decimal `json:"filled_avg_price"`
	Commission     decimal.Decimal `json:"commission"`
	SubmittedAt    time.Time       `json:"submitted_at"`
	FilledAt       *time.Time      `json:"filled_at"`
}

type accountPayload struct {
	AccountNumber string          `json:"account_number"`
	Cash          decimal.Decimal `json:"cash"`
	Equity        decimal.Decimal `json:"equity"`
	BuyingPower   decimal.Decimal `json:"buying_power"`
	Currency      string          `json:"currency"`
}

type positionPayload struct {
	Symbol       string          `json:"symbol"`
	Qty          decimal.Decimal `json:"qty"`
	AvgEntry     decimal.Decimal `json:"avg_entry_price"`
	MarketValue  decimal.Decimal `json:"market_value"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// CurrentPrice returns the quote midpoint for a symbol
func (b *LiveBackend) CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var payload quotePayload
	resp, err := b.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&payload).Get(fmt.Sprintf("/v2/stocks/%s/quotes/latest", symbol))
	})
	if err != nil {
		return decimal.Zero, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}
	if resp.IsError() {
		return decimal.Zero, fmt.Errorf("quote request failed: %s", resp.Status())
	}

	quote := Quote{
		Symbol:   symbol,
		BidPrice: payload.Quote.BidPrice,
		AskPrice: payload.Quote.AskPrice,
		AsOf:     payload.Quote.AsOf,
	}

	if !quote.BidPrice.IsPositive() || !quote.AskPrice.IsPositive() {
		// Thin book: fall back to the last trade print.
		var trade tradePayload
		resp, err := b.do(ctx, func(req *resty.Request) (*resty.Response, error) {
			return req.SetResult(&trade).Get(fmt.Sprintf("/v2/stocks/%s/trades/latest", symbol))
		})
		if err != nil {
			return decimal.Zero, err
		}
		if resp.IsError() || !trade.Trade.Price.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
		}
		quote.LastPrice = trade.Trade.Price
	}

	return quote.MidPrice(), nil
}

// Buy places a whole-share buy order
func (b *LiveBackend) Buy(ctx context.Context, req OrderRequest) (*Fill, error) {
	return b.placeOrder(ctx, req, SideBuy)
}

// Sell places a whole-share sell order
func (b *LiveBackend) Sell(ctx context.Context, req OrderRequest) (*Fill, error) {
	return b.placeOrder(ctx, req, SideSell)
}

func (b *LiveBackend) placeOrder(ctx context.Context, req OrderRequest, side string) (*Fill, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidOrder)
	}

	if !req.Quantity.Equal(req.Quantity.Truncate(0)) {
		return nil, fmt.Errorf("%w: %s", ErrFractionalQuantity, req.Quantity)
	}
	if req.Quantity.LessThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s is below 1 share", ErrQuantityTooSmall, req.Quantity)
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = OrderTypeMarket
	}
	if !IsValidOrderType(orderType) {
		return nil, fmt.Errorf("%w: order type %q", ErrInvalidOrder, req.OrderType)
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("order rate limit wait failed: %w", err)
	}

	body := map[string]interface{}{
		"symbol":          req.Symbol,
		"side":            side,
		"type":            orderType,
		"qty":             req.Quantity.String(),
		"time_in_force":   "day",
		"client_order_id": req.ClientOrderID,
	}
	if orderType == OrderTypeLimit && req.LimitPrice != nil {
		body["limit_price"] = req.LimitPrice.String()
	}

	var payload orderPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(body).SetResult(&payload).Post("/v2/orders")
	})
	if err != nil {
		return nil, err
	}

	// The brokerage enforces the client order ID as an idempotency key; a
	// conflict means the order was already accepted, so fetch it instead.
	if resp.StatusCode() == http.StatusConflict && req.ClientOrderID != "" {
		return b.fillByClientOrderID(ctx, req.ClientOrderID)
	}
	if resp.StatusCode() == http.StatusUnprocessableEntity {
		return nil, fmt.Errorf("%w: %s", ErrOrderRejected, resp.String())
	}
	if resp.IsError() {
		return nil, fmt.Errorf("order submission failed: %s", resp.Status())
	}

	if payload.Status == OrderStatusRejected {
		return nil, fmt.Errorf("%w: order %s", ErrOrderRejected, payload.ID)
	}

	b.logger.Info("live order placed",
		"order_id", payload.ID,
		"symbol", payload.Symbol,
		"side", payload.Side,
		"qty", payload.Qty.String(),
		"status", payload.Status)

	return b.awaitFill(ctx, payload)
}

// awaitFill polls an accepted order until the backend reports it filled
func (b *LiveBackend) awaitFill(ctx context.Context, payload orderPayload) (*Fill, error) {
	for payload.Status != OrderStatusFilled {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("order %s not filled before deadline: %w", payload.ID, ctx.Err())
		case <-time.After(250 * time.Millisecond):
		}

		resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
			return r.SetResult(&payload).Get("/v2/orders/" + payload.ID)
		})
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("order poll failed: %s", resp.Status())
		}

		if payload.Status == OrderStatusRejected || payload.Status == OrderStatusCanceled {
			return nil, fmt.Errorf("%w: order %s ended %s", ErrOrderRejected, payload.ID, payload.Status)
		}
	}

	return fillFromPayload(payload), nil
}

func (b *LiveBackend) fillByClientOrderID(ctx context.Context, clientOrderID string) (*Fill, error) {
	var payload orderPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParam("client_order_id", clientOrderID).
			SetResult(&payload).
			Get("/v2/orders:by_client_order_id")
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("order lookup failed: %s", resp.Status())
	}

	return b.awaitFill(ctx, payload)
}

// AccountBalance returns the brokerage cash balance
func (b *LiveBackend) AccountBalance(ctx context.Context) (decimal.Decimal, error) {
	account, err := b.Account(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Cash, nil
}

// Account returns the brokerage account snapshot
func (b *LiveBackend) Account(ctx context.Context) (*AccountSnapshot, error) {
	var payload accountPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&payload).Get("/v2/account")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("account request failed: %s", resp.Status())
	}

	return &AccountSnapshot{
		AccountRef:  payload.AccountNumber,
		Cash:        payload.Cash,
		Equity:      payload.Equity,
		BuyingPower: payload.BuyingPower,
		Currency:    payload.Currency,
	}, nil
}

// Positions returns all holdings at the brokerage
func (b *LiveBackend) Positions(ctx context.Context) ([]Holding, error) {
	var payloads []positionPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&payloads).Get("/v2/positions")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("positions request failed: %s", resp.Status())
	}

	holdings := make([]Holding, len(payloads))
	for i, p := range payloads {
		holdings[i] = holdingFromPayload(p)
	}
	return holdings, nil
}

// Position returns the holding for one symbol, nil if none is held
func (b *LiveBackend) Position(ctx context.Context, symbol string) (*Holding, error) {
	var payload positionPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&payload).Get("/v2/positions/" + symbol)
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("position request failed: %s", resp.Status())
	}

	holding := holdingFromPayload(payload)
	return &holding, nil
}

// Orders lists placed orders, optionally filtered by status
func (b *LiveBackend) Orders(ctx context.Context, status string, limit int) ([]Order, error) {
	var payloads []orderPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		req := r.SetResult(&payloads)
		if status != "" {
			req = req.SetQueryParam("status", status)
		}
		if limit > 0 {
			req = req.SetQueryParam("limit", fmt.Sprintf("%d", limit))
		}
		return req.Get("/v2/orders")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("orders request failed: %s", resp.Status())
	}

	orders := make([]Order, len(payloads))
	for i, p := range payloads {
		orders[i] = orderFromPayload(p)
	}
	return orders, nil
}

// Order returns one order by backend order ID
func (b *LiveBackend) Order(ctx context.Context, orderID string) (*Order, error) {
	var payload orderPayload
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&payload).Get("/v2/orders/" + orderID)
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("order request failed: %s", resp.Status())
	}

	order := orderFromPayload(payload)
	return &order, nil
}

// CancelOrder cancels an unfilled order
func (b *LiveBackend) CancelOrder(ctx context.Context, orderID string) error {
	resp, err := b.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Delete("/v2/orders/" + orderID)
	})
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrOrderNotFound
	}
	if resp.IsError() {
		return fmt.Errorf("order cancel failed: %s", resp.Status())
	}
	return nil
}

// do runs one request through the circuit breaker
func (b *LiveBackend) do(ctx context.Context, fn func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if b.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}

	resp, err := fn(b.client.R().SetContext(ctx))
	if err != nil {
		b.breaker.RecordFailure()
		return nil, fmt.Errorf("brokerage request failed: %w", err)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		b.breaker.RecordFailure()
		return nil, fmt.Errorf("brokerage unavailable: %s", resp.Status())
	}

	b.breaker.RecordSuccess()
	return resp, nil
}

func fillFromPayload(p orderPayload) *Fill {
	filledAt := p.SubmittedAt
	if p.FilledAt != nil {
		filledAt = *p.FilledAt
	}

	return &Fill{
		OrderID:        p.ID,
		ClientOrderID:  p.ClientOrderID,
		Symbol:         p.Symbol,
		Side:           p.Side,
		OrderType:      p.Type,
		Status:         p.Status,
		FilledQty:      p.FilledQty,
		FilledAvgPrice: p.FilledAvgPrice,
		Commission:     p.Commission,
		FilledAt:       filledAt,
	}
}

func orderFromPayload(p orderPayload) Order {
	return Order{
		ID:             p.ID,
		ClientOrderID:  p.ClientOrderID,
		Symbol:         p.Symbol,
		Side:           p.Side,
		OrderType:      p.Type,
		Status:         p.Status,
		Quantity:       p.Qty,
		FilledQty:      p.FilledQty,
		FilledAvgPrice: p.FilledAvgPrice,
		Commission:     p.Commission,
		SubmittedAt:    p.SubmittedAt,
		FilledAt:       p.FilledAt,
	}
}

func holdingFromPayload(p positionPayload) Holding {
	return Holding{
		Symbol:       p.Symbol,
		Quantity:     p.Qty,
		AvgEntry:     p.AvgEntry,
		MarketValue:  p.MarketValue,
		CurrentPrice: p.CurrentPrice,
	}
}
