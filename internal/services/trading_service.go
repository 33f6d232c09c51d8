package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stashvest/internal/broker"
	"stashvest/internal/config"
	"stashvest/internal/models"
	"stashvest/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidPositionState = errors.New("position is not in a state that allows this operation")
	ErrPositionLocked       = errors.New("position is under a manual hold")
	ErrLossSaleBlocked      = errors.New("selling at a loss is blocked")
	ErrNoSavingsToInvest    = errors.New("account has no monthly savings to invest")
)

// tradingService implements TradingServiceInterface
type tradingService struct {
	positions  repositories.PositionRepositoryInterface
	accounts   repositories.BudgetAccountRepositoryInterface
	pools      repositories.DepositAccountRepositoryInterface
	settlement repositories.SettlementRepositoryInterface
	backend    broker.ExecutionBackend
	metrics    MetricsRecorderInterface
	logger     *slog.Logger

	backendTimeout time.Duration
	lossGuard      bool
}

// NewTradingService creates a trading service. The execution backend is
// injected once here; nothing downstream ever asks which mode is running.
func NewTradingService(
	positions repositories.PositionRepositoryInterface,
	accounts repositories.BudgetAccountRepositoryInterface,
	pools repositories.DepositAccountRepositoryInterface,
	settlement repositories.SettlementRepositoryInterface,
	backend broker.ExecutionBackend,
	metrics MetricsRecorderInterface,
	cfg config.TradingConfig,
	logger *slog.Logger,
) TradingServiceInterface {
	return &tradingService{
		positions:      positions,
		accounts:       accounts,
		pools:          pools,
		settlement:     settlement,
		backend:        backend,
		metrics:        metrics,
		logger:         logger,
		backendTimeout: cfg.BackendTimeout,
		lossGuard:      cfg.LossGuard,
	}
}

// CreatePosition freezes the account's current monthly savings into a new
// pending position. The frozen amount never changes afterwards, even if the
// account's budget or spend counter moves before execution.
func (s *tradingService) CreatePosition(accountID uuid.UUID, symbol string) (*models.InvestmentPosition, error) {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		return nil, repositories.ErrAccountNotActive
	}

	savings := account.MonthlySavings()
	if !savings.IsPositive() {
		return nil, fmt.Errorf("%w: account %s", ErrNoSavingsToInvest, accountID)
	}

	position := &models.InvestmentPosition{
		AccountID:     accountID,
		OwnerID:       account.OwnerID,
		Symbol:        symbol,
		SavingsAmount: savings,
	}
	if err := s.positions.Create(position); err != nil {
		return nil, err
	}

	s.logger.Info("position created",
		"position_id", position.ID,
		"account_id", accountID,
		"symbol", symbol,
		"savings_amount", savings.String())

	return position, nil
}

// ExecuteInvestment runs a purchase in two phases. Phase one is backend I/O
// with no database locks held: price lookup, quantity resolution, order
// placement. Phase two is a single settlement transaction that debits the
// pool by the actual cost, commits the account's savings and persists the
// invested position. A commit failure leaves the position pending; the retry
// resubmits under the same client order ID and receives the original fill
// instead of a second one.
func (s *tradingService) ExecuteInvestment(ctx context.Context, positionID uuid.UUID) (*models.InvestmentPosition, error) {
	position, err := s.positions.GetByID(positionID)
	if err != nil {
		return nil, err
	}

	if !position.IsPending() {
		return nil, fmt.Errorf("%w: position %s is %s", ErrInvalidPositionState, position.ID, position.Status)
	}
	if !position.SavingsAmount.IsPositive() {
		// Nothing to invest, so the backend is never called.
		return nil, fmt.Errorf("%w: savings amount %s", ErrInvalidPositionState, position.SavingsAmount)
	}

	if _, err := s.pools.GetOrCreateForOwner(position.OwnerID, s.backend.Name()); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.backendTimeout)
	defer cancel()

	price, err := s.backend.CurrentPrice(callCtx, position.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to price %s: %w", position.Symbol, err)
	}

	quantity, err := s.backend.ResolveQuantity(position.SavingsAmount, price)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	fill, err := s.backend.Buy(callCtx, broker.OrderRequest{
		Symbol:        position.Symbol,
		Side:          broker.SideBuy,
		Quantity:      quantity,
		OrderType:     broker.OrderTypeMarket,
		ClientOrderID: position.OrderRef,
	})
	if err != nil {
		s.metrics.RecordOrder(broker.SideBuy, s.backend.Name(), "error")
		return nil, fmt.Errorf("buy order failed: %w", err)
	}
	s.metrics.RecordOrder(broker.SideBuy, s.backend.Name(), fill.Status)
	s.metrics.ObserveOrderDuration(s.backend.Name(), time.Since(started))

	if err := position.MarkInvested(fill.FilledAvgPrice, fill.FilledQty, fill.FilledAt); err != nil {
		return nil, err
	}

	cost := fill.TotalCost()
	if err := s.settlement.CommitInvestment(position, cost); err != nil {
		return nil, fmt.Errorf("failed to settle purchase of %s: %w", position.Symbol, err)
	}
	s.metrics.ObserveSettlement(broker.SideBuy, cost)

	s.logger.Info("investment executed",
		"position_id", position.ID,
		"symbol", position.Symbol,
		"shares", fill.FilledQty.String(),
		"price", fill.FilledAvgPrice.String(),
		"cost", cost.String(),
		"backend", s.backend.Name())

	return position, nil
}

// ExecuteSale liquidates an invested position: sell order first, then one
// settlement transaction crediting the pool and the source budget account
// with the net proceeds.
func (s *tradingService) ExecuteSale(ctx context.Context, positionID uuid.UUID) (*models.InvestmentPosition, error) {
	position, err := s.positions.GetByID(positionID)
	if err != nil {
		return nil, err
	}

	if position.IsLocked() {
		return nil, fmt.Errorf("%w: %s", ErrPositionLocked, position.LockReason)
	}
	if !position.IsInvested() || !position.CanSell {
		return nil, fmt.Errorf("%w: position %s is %s", ErrInvalidPositionState, position.ID, position.Status)
	}
	if s.lossGuard && !position.IsProfitable {
		return nil, fmt.Errorf("%w: position %s", ErrLossSaleBlocked, position.ID)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.backendTimeout)
	defer cancel()

	started := time.Now()
	fill, err := s.backend.Sell(callCtx, broker.OrderRequest{
		Symbol:        position.Symbol,
		Side:          broker.SideSell,
		Quantity:      position.Shares,
		OrderType:     broker.OrderTypeMarket,
		ClientOrderID: position.OrderRef + "-SELL",
	})
	if err != nil {
		s.metrics.RecordOrder(broker.SideSell, s.backend.Name(), "error")
		return nil, fmt.Errorf("sell order failed: %w", err)
	}
	s.metrics.RecordOrder(broker.SideSell, s.backend.Name(), fill.Status)
	s.metrics.ObserveOrderDuration(s.backend.Name(), time.Since(started))

	proceeds := fill.NetProceeds()
	if err := position.MarkSold(fill.FilledAvgPrice, fill.Commission, proceeds, fill.FilledAt); err != nil {
		return nil, err
	}

	if err := s.settlement.CommitSale(position, proceeds); err != nil {
		return nil, fmt.Errorf("failed to settle sale of %s: %w", position.Symbol, err)
	}
	s.metrics.ObserveSettlement(broker.SideSell, proceeds)

	s.logger.Info("sale executed",
		"position_id", position.ID,
		"symbol", position.Symbol,
		"shares", fill.FilledQty.String(),
		"price", fill.FilledAvgPrice.String(),
		"proceeds", proceeds.String(),
		"backend", s.backend.Name())

	return position, nil
}

// SyncPositions refreshes valuations for every open position of the owner.
// Pricing failures are tolerated per position: the failed one keeps its last
// valuation and the sweep moves on. Locked positions are not touched.
func (s *tradingService) SyncPositions(ctx context.Context, ownerID uuid.UUID) (*SyncReport, error) {
	positions, err := s.positions.GetInvestedByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{}
	for i := range positions {
		if err := ctx.Err(); err != nil {
			s.metrics.RecordSyncResult(report.Synced, report.Failed)
			return report, err
		}

		position := &positions[i]

		callCtx, cancel := context.WithTimeout(ctx, s.backendTimeout)
		price, err := s.backend.CurrentPrice(callCtx, position.Symbol)
		cancel()
		if err != nil {
			report.Failed++
			s.logger.Warn("valuation sync skipped position",
				"position_id", position.ID,
				"symbol", position.Symbol,
				"error", err)
			continue
		}

		position.UpdatePrice(price)
		if err := s.positions.UpdateValuation(position); err != nil {
			report.Failed++
			s.logger.Warn("valuation update failed",
				"position_id", position.ID,
				"symbol", position.Symbol,
				"error", err)
			continue
		}

		report.Synced++
	}

	s.metrics.RecordSyncResult(report.Synced, report.Failed)
	s.logger.Info("positions synced",
		"owner_id", ownerID,
		"synced", report.Synced,
		"failed", report.Failed)

	return report, nil
}

// GetPosition retrieves one position
func (s *tradingService) GetPosition(positionID uuid.UUID) (*models.InvestmentPosition, error) {
	return s.positions.GetByID(positionID)
}

// ListPositions retrieves all positions for an owner
func (s *tradingService) ListPositions(ownerID uuid.UUID) ([]models.InvestmentPosition, error) {
	return s.positions.GetByOwnerID(ownerID)
}

// LockPosition places a manual hold on an invested position
func (s *tradingService) LockPosition(positionID uuid.UUID, reason string) (*models.InvestmentPosition, error) {
	position, err := s.positions.GetByID(positionID)
	if err != nil {
		return nil, err
	}

	if err := position.Lock(reason); err != nil {
		return nil, fmt.Errorf("%w: position %s is %s", ErrInvalidPositionState, position.ID, position.Status)
	}
	if err := s.positions.Update(position); err != nil {
		return nil, err
	}

	s.logger.Info("position locked", "position_id", position.ID, "reason", reason)
	return position, nil
}

// UnlockPosition releases a manual hold
func (s *tradingService) UnlockPosition(positionID uuid.UUID) (*models.InvestmentPosition, error) {
	position, err := s.positions.GetByID(positionID)
	if err != nil {
		return nil, err
	}

	if err := position.Unlock(); err != nil {
		return nil, fmt.Errorf("%w: position %s is %s", ErrInvalidPositionState, position.ID, position.Status)
	}
	if err := s.positions.Update(position); err != nil {
		return nil, err
	}

	s.logger.Info("position unlocked", "position_id", position.ID)
	return position, nil
}
