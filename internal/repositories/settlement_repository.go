package repositories

import (
	"errors"
	"fmt"

	"stashvest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// settlementRepository implements SettlementRepositoryInterface
type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *gorm.DB) SettlementRepositoryInterface {
	return &settlementRepository{db: db}
}

// CommitInvestment settles a purchase fill: the pool is debited by the
// actual cost exactly once, the source budget account commits its savings,
// one entry lands on each ledger and the position row is persisted — all
// inside a single transaction with row locks held on both accounts.
// Backend I/O happened before this call; no lock waits on the network.
func (r *settlementRepository) CommitInvestment(position *models.InvestmentPosition, cost decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		pool, err := lockPool(tx, position.OwnerID)
		if err != nil {
			return err
		}

		if !pool.CanCover(cost) {
			return ErrInsufficientFunds
		}
		if err := pool.Debit(cost); err != nil {
			return err
		}
		if err := tx.Save(pool).Error; err != nil {
			return fmt.Errorf("failed to debit deposit pool: %w", err)
		}

		poolEntry := &models.DepositLedgerEntry{
			AccountID:    pool.ID,
			Kind:         models.DepositLedgerKindInvestment,
			Direction:    models.LedgerDirectionDebit,
			Amount:       cost,
			BalanceAfter: pool.Balance,
			Description:  fmt.Sprintf("Buy %s x %s", position.Symbol, position.Shares),
			Reference:    position.OrderRef,
		}
		if err := tx.Create(poolEntry).Error; err != nil {
			return fmt.Errorf("failed to append deposit ledger entry: %w", err)
		}

		account, err := lockBudgetAccount(tx, position.AccountID)
		if err != nil {
			return err
		}

		if account.Balance.LessThan(position.SavingsAmount) {
			return ErrInsufficientFunds
		}
		account.Balance = account.Balance.Sub(position.SavingsAmount)
		account.PendingReward = account.PendingReward.Add(position.SavingsAmount)
		// Spending counter resets only here; there is no calendar rollover.
		account.MonthSpent = decimal.Zero
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update budget account: %w", err)
		}

		accountEntry := &models.LedgerEntry{
			AccountID:    account.ID,
			Kind:         models.LedgerKindInvestment,
			Direction:    models.LedgerDirectionDebit,
			Amount:       position.SavingsAmount,
			BalanceAfter: account.Balance,
			Description:  fmt.Sprintf("Savings invested in %s", position.Symbol),
			Reference:    position.OrderRef,
		}
		if err := tx.Create(accountEntry).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		if err := tx.Save(position).Error; err != nil {
			return fmt.Errorf("failed to persist position: %w", err)
		}

		return nil
	})
}

// CommitSale settles a sale fill: the pool is credited with the net
// proceeds exactly once, the proceeds flow back to the source budget
// account as realized reward and the committed capital is released.
func (r *settlementRepository) CommitSale(position *models.InvestmentPosition, proceeds decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		pool, err := lockPool(tx, position.OwnerID)
		if err != nil {
			return err
		}

		if err := pool.Credit(proceeds); err != nil {
			return err
		}
		if err := tx.Save(pool).Error; err != nil {
			return fmt.Errorf("failed to credit deposit pool: %w", err)
		}

		poolEntry := &models.DepositLedgerEntry{
			AccountID:    pool.ID,
			Kind:         models.DepositLedgerKindSale,
			Direction:    models.LedgerDirectionCredit,
			Amount:       proceeds,
			BalanceAfter: pool.Balance,
			Description:  fmt.Sprintf("Sell %s x %s", position.Symbol, position.Shares),
			Reference:    position.OrderRef,
		}
		if err := tx.Create(poolEntry).Error; err != nil {
			return fmt.Errorf("failed to append deposit ledger entry: %w", err)
		}

		account, err := lockBudgetAccount(tx, position.AccountID)
		if err != nil {
			return err
		}

		account.Balance = account.Balance.Add(proceeds)
		account.RealizedReward = account.RealizedReward.Add(proceeds)
		// Released capital is the original savings amount, not the
		// proceeds: PendingReward tracks capital committed to open
		// positions.
		account.PendingReward = account.PendingReward.Sub(position.SavingsAmount)
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update budget account: %w", err)
		}

		accountEntry := &models.LedgerEntry{
			AccountID:    account.ID,
			Kind:         models.LedgerKindSale,
			Direction:    models.LedgerDirectionCredit,
			Amount:       proceeds,
			BalanceAfter: account.Balance,
			Description:  fmt.Sprintf("Proceeds from %s sale", position.Symbol),
			Reference:    position.OrderRef,
		}
		if err := tx.Create(accountEntry).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		if err := tx.Save(position).Error; err != nil {
			return fmt.Errorf("failed to persist position: %w", err)
		}

		return nil
	})
}

func lockPool(tx *gorm.DB, ownerID uuid.UUID) (*models.DepositAccount, error) {
	var pool models.DepositAccount
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("owner_id = ?", ownerID).First(&pool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock deposit pool: %w", err)
	}
	return &pool, nil
}

func lockBudgetAccount(tx *gorm.DB, accountID uuid.UUID) (*models.BudgetAccount, error) {
	account := &models.BudgetAccount{ID: accountID}
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock budget account: %w", err)
	}

	if !account.Active {
		return nil, ErrAccountNotActive
	}

	return account, nil
}
