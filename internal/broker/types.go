package broker

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SideBuy  = "buy"
	SideSell = "sell"

	OrderTypeMarket = "market"
	OrderTypeLimit  = "limit"

	OrderStatusFilled   = "filled"
	OrderStatusAccepted = "accepted"
	OrderStatusCanceled = "canceled"
	OrderStatusRejected = "rejected"
)

// Quote is a market snapshot for one symbol
type Quote struct {
	Symbol    string          `json:"symbol"`
	BidPrice  decimal.Decimal `json:"bid_price"`
	AskPrice  decimal.Decimal `json:"ask_price"`
	LastPrice decimal.Decimal `json:"last_price"`
	AsOf      time.Time       `json:"as_of"`
}

// MidPrice returns the quote midpoint, falling back to the last trade when
// one side of the book is empty
func (q Quote) MidPrice() decimal.Decimal {
	if q.BidPrice.IsPositive() && q.AskPrice.IsPositive() {
		return q.BidPrice.Add(q.AskPrice).Div(decimal.NewFromInt(2))
	}
	return q.LastPrice
}

// OrderRequest describes an order to place. ClientOrderID is a
// caller-supplied idempotency key: resubmitting with the same key returns
// the original fill instead of executing again.
type OrderRequest struct {
	Symbol        string
	Side          string
	Quantity      decimal.Decimal
	OrderType     string
	LimitPrice    *decimal.Decimal
	ClientOrderID string
}

// Fill is a backend's report of an executed order
type Fill struct {
	OrderID        string          `json:"order_id"`
	ClientOrderID  string          `json:"client_order_id"`
	Symbol         string          `json:"symbol"`
	Side           string          `json:"side"`
	OrderType      string          `json:"order_type"`
	Status         string          `json:"status"`
	FilledQty      decimal.Decimal `json:"filled_qty"`
	FilledAvgPrice decimal.Decimal `json:"filled_avg_price"`
	Commission     decimal.Decimal `json:"commission"`
	FilledAt       time.Time       `json:"filled_at"`
}

// GrossAmount returns price x quantity before commission
func (f Fill) GrossAmount() decimal.Decimal {
	return f.FilledAvgPrice.Mul(f.FilledQty)
}

// TotalCost returns the cash required to settle a buy fill
func (f Fill) TotalCost() decimal.Decimal {
	return f.GrossAmount().Add(f.Commission)
}

// NetProceeds returns the cash released by a sell fill
func (f Fill) NetProceeds() decimal.Decimal {
	return f.GrossAmount().Sub(f.Commission)
}

// Order is the administrative view of a placed order
type Order struct {
	ID             string          `json:"id"`
	ClientOrderID  string          `json:"client_order_id"`
	Symbol         string          `json:"symbol"`
	Side           string          `json:"side"`
	OrderType      string          `json:"order_type"`
	Status         string          `json:"status"`
	Quantity       decimal.Decimal `json:"qty"`
	FilledQty      decimal.Decimal `json:"filled_qty"`
	FilledAvgPrice decimal.Decimal `json:"filled_avg_price"`
	Commission     decimal.Decimal `json:"commission"`
	SubmittedAt    time.Time       `json:"submitted_at"`
	FilledAt       *time.Time      `json:"filled_at,omitempty"`
}

// Holding is one security position held at the backend
type Holding struct {
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"qty"`
	AvgEntry     decimal.Decimal `json:"avg_entry_price"`
	MarketValue  decimal.Decimal `json:"market_value"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// AccountSnapshot is the backend's view of the trading account
type AccountSnapshot struct {
	AccountRef  string          `json:"account_ref"`
	Cash        decimal.Decimal `json:"cash"`
	Equity      decimal.Decimal `json:"equity"`
	BuyingPower decimal.Decimal `json:"buying_power"`
	Currency    string          `json:"currency"`
}

// IsValidSide checks if the order side is valid
func IsValidSide(side string) bool {
	return side == SideBuy || side == SideSell
}

// IsValidOrderType checks if the order type is valid
func IsValidOrderType(orderType string) bool {
	return orderType == OrderTypeMarket || orderType == OrderTypeLimit
}
