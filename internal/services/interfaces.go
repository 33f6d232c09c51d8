package services

import (
	"context"
	"time"

	"stashvest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradingServiceInterface is the only component that settles money against
// fills. Execution backends report what happened at the market; every ledger
// entry and pool mutation flows through here.
type TradingServiceInterface interface {
	// CreatePosition freezes an account's current monthly savings into a
	// pending position for the given symbol
	CreatePosition(accountID uuid.UUID, symbol string) (*models.InvestmentPosition, error)

	// ExecuteInvestment converts a pending position's frozen savings into
	// shares: price lookup, order placement, then one settlement commit.
	ExecuteInvestment(ctx context.Context, positionID uuid.UUID) (*models.InvestmentPosition, error)

	// ExecuteSale liquidates an invested position and settles the net
	// proceeds back to the pool and the source budget account.
	ExecuteSale(ctx context.Context, positionID uuid.UUID) (*models.InvestmentPosition, error)

	// SyncPositions refreshes valuations for the owner's open positions.
	// One unpriceable symbol never aborts the rest of the batch.
	SyncPositions(ctx context.Context, ownerID uuid.UUID) (*SyncReport, error)

	GetPosition(positionID uuid.UUID) (*models.InvestmentPosition, error)
	ListPositions(ownerID uuid.UUID) ([]models.InvestmentPosition, error)

	// LockPosition places a manual hold on an invested position
	LockPosition(positionID uuid.UUID, reason string) (*models.InvestmentPosition, error)

	// UnlockPosition releases a manual hold
	UnlockPosition(positionID uuid.UUID) (*models.InvestmentPosition, error)
}

// BudgetServiceInterface manages budget accounts, their ledgers and the
// central deposit pool
type BudgetServiceInterface interface {
	CreateAccount(ownerID uuid.UUID, name, category string, monthlyBudget *decimal.Decimal) (*models.BudgetAccount, error)
	GetAccount(accountID uuid.UUID) (*models.BudgetAccount, error)
	ListAccounts(ownerID uuid.UUID) ([]models.BudgetAccount, error)
	DeactivateAccount(accountID uuid.UUID) error

	// Deposit credits a budget account
	Deposit(accountID uuid.UUID, amount decimal.Decimal, description string) (*models.LedgerEntry, error)

	// Withdraw debits a budget account without touching the spend counter
	Withdraw(accountID uuid.UUID, amount decimal.Decimal, description string) (*models.LedgerEntry, error)

	// RecordBankSpend debits a synced bank transaction and counts it
	// against the monthly budget
	RecordBankSpend(accountID uuid.UUID, amount decimal.Decimal, description string) (*models.LedgerEntry, error)

	// MonthlySavings reports the investable surplus for an account
	MonthlySavings(accountID uuid.UUID) (decimal.Decimal, error)

	GetLedger(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error)

	// FundPool credits external cash into the owner's deposit pool,
	// creating the pool on first use
	FundPool(ownerID uuid.UUID, amount decimal.Decimal, description string) (*models.DepositLedgerEntry, error)

	// WithdrawFromPool debits cash out of the owner's deposit pool
	WithdrawFromPool(ownerID uuid.UUID, amount decimal.Decimal, description string) (*models.DepositLedgerEntry, error)

	GetPool(ownerID uuid.UUID) (*models.DepositAccount, error)
	GetPoolLedger(accountID uuid.UUID, offset, limit int) ([]models.DepositLedgerEntry, int64, error)
}

// MetricsRecorderInterface abstracts trade metric emission so services can be
// tested without a Prometheus registry
type MetricsRecorderInterface interface {
	RecordOrder(side, backend, status string)
	ObserveOrderDuration(backend string, duration time.Duration)
	ObserveSettlement(side string, amount decimal.Decimal)
	RecordSyncResult(synced, failed int)
}

// SyncReport summarizes one valuation sweep
type SyncReport struct {
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}
