package repositories

import (
	"stashvest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetAccountRepositoryInterface defines the contract for budget account operations
type BudgetAccountRepositoryInterface interface {
	Create(account *models.BudgetAccount) error
	GetByID(id uuid.UUID) (*models.BudgetAccount, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.BudgetAccount, error)
	Update(account *models.BudgetAccount) error
	Deactivate(id uuid.UUID) error
	// ApplyEntry mutates the balance and appends exactly one ledger entry
	// inside a single database transaction with the account row locked.
	ApplyEntry(accountID uuid.UUID, kind, direction string, amount decimal.Decimal, description string) (*models.LedgerEntry, error)
	GetLedger(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error)
}

// DepositAccountRepositoryInterface defines the contract for the central cash pool
type DepositAccountRepositoryInterface interface {
	GetByOwnerID(ownerID uuid.UUID) (*models.DepositAccount, error)
	// GetOrCreateForOwner lazily creates the pool on first use
	GetOrCreateForOwner(ownerID uuid.UUID, brokerageRef string) (*models.DepositAccount, error)
	// ApplyEntry mutates the pool balance and appends exactly one deposit
	// ledger entry inside a single database transaction.
	ApplyEntry(ownerID uuid.UUID, kind, direction string, amount decimal.Decimal, description string) (*models.DepositLedgerEntry, error)
	GetLedger(accountID uuid.UUID, offset, limit int) ([]models.DepositLedgerEntry, int64, error)
}

// PositionRepositoryInterface defines the contract for investment position operations
type PositionRepositoryInterface interface {
	Create(position *models.InvestmentPosition) error
	GetByID(id uuid.UUID) (*models.InvestmentPosition, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.InvestmentPosition, error)
	GetInvestedByOwner(ownerID uuid.UUID) ([]models.InvestmentPosition, error)
	// GetOwnersWithOpenPositions lists owners holding at least one invested
	// position, for background valuation sweeps.
	GetOwnersWithOpenPositions() ([]uuid.UUID, error)
	Update(position *models.InvestmentPosition) error
	// UpdateValuation persists only the derived valuation fields; it never
	// touches purchase, sale or status columns.
	UpdateValuation(position *models.InvestmentPosition) error
}

// SettlementRepositoryInterface commits the cash side of a fill. Each commit
// is one database transaction covering the pool mutation, the budget account
// mutation, both ledger appends and the position update; any failure rolls
// the whole settlement back.
type SettlementRepositoryInterface interface {
	CommitInvestment(position *models.InvestmentPosition, cost decimal.Decimal) error
	CommitSale(position *models.InvestmentPosition, proceeds decimal.Decimal) error
}
