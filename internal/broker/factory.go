package broker

import (
	"fmt"
	"log/slog"

	"stashvest/internal/config"

	"github.com/shopspring/decimal"
)

// New selects the concrete execution backend once at startup. Business
// logic receives the interface and never branches on the mode again.
func New(cfg *config.BrokerConfig, logger *slog.Logger) (ExecutionBackend, error) {
	switch cfg.Mode {
	case ModeSimulated:
		startingCash := decimal.NewFromFloat(cfg.SimulatedStartingCash)
		return NewSimulatedBackend(startingCash, logger), nil
	case ModeLive:
		return NewLiveBackend(LiveConfig{
			BaseURL:         cfg.BaseURL,
			APIKey:          cfg.APIKey,
			APISecret:       cfg.APISecret,
			RequestTimeout:  cfg.RequestTimeout,
			OrdersPerSecond: cfg.OrdersPerSecond,
		}, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
}
