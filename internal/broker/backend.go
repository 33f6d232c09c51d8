package broker

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

const (
	ModeSimulated = "simulated"
	ModeLive      = "live"
)

var (
	ErrPriceUnavailable     = errors.New("no market snapshot for symbol")
	ErrInsufficientPosition = errors.New("sale quantity exceeds held quantity")
	ErrFractionalQuantity   = errors.New("backend does not accept fractional quantities")
	ErrQuantityTooSmall     = errors.New("order quantity below backend minimum")
	ErrInvalidOrder         = errors.New("invalid order request")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderRejected        = errors.New("order rejected by backend")
	ErrUnknownMode          = errors.New("unknown broker mode")
)

// ExecutionBackend abstracts order execution and market data. Backends only
// report fills; they never write ledgers or the deposit pool — settlement is
// owned exclusively by the trading service, for every backend.
type ExecutionBackend interface {
	// Name identifies the backend ("simulated" or "live")
	Name() string

	// CurrentPrice returns the execution-reference price for a symbol.
	// Fails with ErrPriceUnavailable if no market snapshot exists.
	CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)

	// ResolveQuantity converts a cash amount at a given price into the
	// quantity this backend is willing to fill. Fails with
	// ErrQuantityTooSmall when the amount buys less than the backend
	// minimum.
	ResolveQuantity(amount, price decimal.Decimal) (decimal.Decimal, error)

	// Buy places a buy order and returns the fill report
	Buy(ctx context.Context, req OrderRequest) (*Fill, error)

	// Sell places a sell order and returns the fill report
	Sell(ctx context.Context, req OrderRequest) (*Fill, error)

	// AccountBalance returns the cash balance held at the backend
	AccountBalance(ctx context.Context) (decimal.Decimal, error)

	// Account returns the backend's account snapshot
	Account(ctx context.Context) (*AccountSnapshot, error)

	// Positions returns all holdings at the backend
	Positions(ctx context.Context) ([]Holding, error)

	// Position returns the holding for one symbol, nil if none is held
	Position(ctx context.Context, symbol string) (*Holding, error)

	// Orders lists placed orders, optionally filtered by status
	Orders(ctx context.Context, status string, limit int) ([]Order, error)

	// Order returns one order by backend order ID
	Order(ctx context.Context, orderID string) (*Order, error)

	// CancelOrder cancels an unfilled order
	CancelOrder(ctx context.Context, orderID string) error
}
