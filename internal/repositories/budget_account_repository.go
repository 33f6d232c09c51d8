package repositories

import (
	"errors"
	"fmt"

	"stashvest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNotActive  = errors.New("account is not active")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPositionNotFound  = errors.New("position not found")
)

// budgetAccountRepository implements BudgetAccountRepositoryInterface
type budgetAccountRepository struct {
	db *gorm.DB
}

// NewBudgetAccountRepository creates a new budget account repository
func NewBudgetAccountRepository(db *gorm.DB) BudgetAccountRepositoryInterface {
	return &budgetAccountRepository{db: db}
}

// Create creates a new budget account
func (r *budgetAccountRepository) Create(account *models.BudgetAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create budget account: %w", err)
	}
	return nil
}

// GetByID retrieves a budget account by ID
func (r *budgetAccountRepository) GetByID(id uuid.UUID) (*models.BudgetAccount, error) {
	account := &models.BudgetAccount{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get budget account: %w", err)
	}
	return account, nil
}

// GetByOwnerID retrieves all budget accounts for an owner
func (r *budgetAccountRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.BudgetAccount, error) {
	var accounts []models.BudgetAccount
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget accounts for owner: %w", err)
	}
	return accounts, nil
}

// Update updates a budget account
func (r *budgetAccountRepository) Update(account *models.BudgetAccount) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update budget account: %w", err)
	}
	return nil
}

// Deactivate soft-disables a budget account. Accounts are never hard-deleted.
func (r *budgetAccountRepository) Deactivate(id uuid.UUID) error {
	account, err := r.GetByID(id)
	if err != nil {
		return err
	}

	account.Deactivate()
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to deactivate budget account: %w", err)
	}
	return nil
}

// ApplyEntry mutates the account balance and appends the matching ledger
// entry under one transaction with the account row locked. Partial
// application of either half is impossible: any error rolls both back.
func (r *budgetAccountRepository) ApplyEntry(accountID uuid.UUID, kind, direction string, amount decimal.Decimal, description string) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry

	err := r.db.Transaction(func(tx *gorm.DB) error {
		account := &models.BudgetAccount{ID: accountID}

		// Row-level locking prevents concurrent balance modifications
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock budget account: %w", err)
		}

		if !account.Active {
			return ErrAccountNotActive
		}

		switch direction {
		case models.LedgerDirectionDebit:
			if account.Balance.LessThan(amount) {
				return ErrInsufficientFunds
			}
			account.Balance = account.Balance.Sub(amount)
			if kind == models.LedgerKindBankSync {
				// Synced bank spend counts against the monthly budget.
				account.MonthSpent = account.MonthSpent.Add(amount)
			}
		case models.LedgerDirectionCredit:
			account.Balance = account.Balance.Add(amount)
			if kind == models.LedgerKindDeposit || kind == models.LedgerKindBankSync {
				account.TotalDeposited = account.TotalDeposited.Add(amount)
			}
		default:
			return models.ErrInvalidLedgerDirection
		}

		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update budget account balance: %w", err)
		}

		entry = &models.LedgerEntry{
			AccountID:    accountID,
			Kind:         kind,
			Direction:    direction,
			Amount:       amount,
			BalanceAfter: account.Balance,
			Description:  description,
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// GetLedger retrieves ledger entries for an account, oldest first
func (r *budgetAccountRepository) GetLedger(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error) {
	var entries []models.LedgerEntry
	var total int64

	query := r.db.Model(&models.LedgerEntry{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	return entries, total, nil
}
