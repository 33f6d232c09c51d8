package repositories

import (
	"errors"
	"fmt"

	"stashvest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// depositAccountRepository implements DepositAccountRepositoryInterface
type depositAccountRepository struct {
	db *gorm.DB
}

// NewDepositAccountRepository creates a new deposit account repository
func NewDepositAccountRepository(db *gorm.DB) DepositAccountRepositoryInterface {
	return &depositAccountRepository{db: db}
}

// GetByOwnerID retrieves the central pool for an owner
func (r *depositAccountRepository) GetByOwnerID(ownerID uuid.UUID) (*models.DepositAccount, error) {
	var account models.DepositAccount
	if err := r.db.Where("owner_id = ?", ownerID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get deposit account: %w", err)
	}
	return &account, nil
}

// GetOrCreateForOwner returns the owner's pool, creating it empty on first use
func (r *depositAccountRepository) GetOrCreateForOwner(ownerID uuid.UUID, brokerageRef string) (*models.DepositAccount, error) {
	account, err := r.GetByOwnerID(ownerID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	account = &models.DepositAccount{
		OwnerID:             ownerID,
		BrokerageAccountRef: brokerageRef,
	}
	if err := r.db.Create(account).Error; err != nil {
		// Lost a create race: another request made the pool first.
		existing, getErr := r.GetByOwnerID(ownerID)
		if getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create deposit account: %w", err)
	}

	return account, nil
}

// ApplyEntry mutates the pool balance and appends the matching deposit
// ledger entry under one transaction with the pool row locked.
func (r *depositAccountRepository) ApplyEntry(ownerID uuid.UUID, kind, direction string, amount decimal.Decimal, description string) (*models.DepositLedgerEntry, error) {
	var entry *models.DepositLedgerEntry

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var account models.DepositAccount
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("owner_id = ?", ownerID).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock deposit account: %w", err)
		}

		switch direction {
		case models.LedgerDirectionDebit:
			if !account.CanCover(amount) {
				return ErrInsufficientFunds
			}
			if err := account.Debit(amount); err != nil {
				return err
			}
		case models.LedgerDirectionCredit:
			if err := account.Credit(amount); err != nil {
				return err
			}
		default:
			return models.ErrInvalidLedgerDirection
		}

		if err := tx.Save(&account).Error; err != nil {
			return fmt.Errorf("failed to update deposit account balance: %w", err)
		}

		entry = &models.DepositLedgerEntry{
			AccountID:    account.ID,
			Kind:         kind,
			Direction:    direction,
			Amount:       amount,
			BalanceAfter: account.Balance,
			Description:  description,
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append deposit ledger entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// GetLedger retrieves deposit ledger entries for a pool, oldest first
func (r *depositAccountRepository) GetLedger(accountID uuid.UUID, offset, limit int) ([]models.DepositLedgerEntry, int64, error) {
	var entries []models.DepositLedgerEntry
	var total int64

	query := r.db.Model(&models.DepositLedgerEntry{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count deposit ledger entries: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get deposit ledger entries: %w", err)
	}

	return entries, total, nil
}
