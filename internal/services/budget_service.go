package services

import (
	"errors"
	"fmt"
	"log/slog"

	"stashvest/internal/models"
	"stashvest/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// budgetService implements BudgetServiceInterface
type budgetService struct {
	accounts repositories.BudgetAccountRepositoryInterface
	pools    repositories.DepositAccountRepositoryInterface
	logger   *slog.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	accounts repositories.BudgetAccountRepositoryInterface,
	pools repositories.DepositAccountRepositoryInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		accounts: accounts,
		pools:    pools,
		logger:   logger,
	}
}

// CreateAccount creates a budget account for an owner
func (s *budgetService) CreateAccount(ownerID uuid.UUID, name, category string, monthlyBudget *decimal.Decimal) (*models.BudgetAccount, error) {
	account := &models.BudgetAccount{
		OwnerID:       ownerID,
		Name:          name,
		Category:      category,
		MonthlyBudget: monthlyBudget,
		Active:        true,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	s.logger.Info("budget account created",
		"account_id", account.ID,
		"owner_id", ownerID,
		"category", account.Category)

	return account, nil
}

// GetAccount retrieves one budget account
func (s *budgetService) GetAccount(accountID uuid.UUID) (*models.BudgetAccount, error) {
	return s.accounts.GetByID(accountID)
}

// ListAccounts retrieves all budget accounts for an owner
func (s *budgetService) ListAccounts(ownerID uuid.UUID) ([]models.BudgetAccount, error) {
	return s.accounts.GetByOwnerID(ownerID)
}

// DeactivateAccount soft-disables a budget account
func (s *budgetService) DeactivateAccount(accountID uuid.UUID) error {
	if err := s.accounts.Deactivate(accountID); err != nil {
		return err
	}

	s.logger.Info("budget account deactivated", "account_id", accountID)
	return nil
}

// Deposit credits a budget account and appends the deposit ledger entry
func (s *budgetService) Deposit(accountID uuid.UUID, amount decimal.Decimal, description string) (*models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return s.accounts.ApplyEntry(accountID, models.LedgerKindDeposit, models.LedgerDirectionCredit, amount, description)
}

// Withdraw debits a budget account. Withdrawals move cash out without
// counting as category spend.
func (s *budgetService) Withdraw(accountID uuid.UUID, amount decimal.Decimal, description string) (*models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return s.accounts.ApplyEntry(accountID, models.LedgerKindWithdrawal, models.LedgerDirectionDebit, amount, description)
}

// RecordBankSpend debits a transaction synced from the owner's bank and
// counts it against the account's monthly budget
func (s *budgetService) RecordBankSpend(accountID uuid.UUID, amount decimal.Decimal, description string) (*models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return s.accounts.ApplyEntry(accountID, models.LedgerKindBankSync, models.LedgerDirectionDebit, amount, description)
}

// MonthlySavings reports the account's investable surplus
func (s *budgetService) MonthlySavings(accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account.MonthlyBudget == nil {
		return decimal.Zero, models.ErrNoMonthlyBudget
	}

	return account.MonthlySavings(), nil
}

// GetLedger retrieves a budget account's ledger, oldest first
func (s *budgetService) GetLedger(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error) {
	return s.accounts.GetLedger(accountID, offset, limit)
}

// FundPool credits external cash into the owner's deposit pool, creating the
// pool on first use
func (s *budgetService) FundPool(ownerID uuid.UUID, amount decimal.Decimal, description string) (*models.DepositLedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	if _, err := s.pools.GetOrCreateForOwner(ownerID, ""); err != nil {
		return nil, err
	}

	entry, err := s.pools.ApplyEntry(ownerID, models.DepositLedgerKindFunding, models.LedgerDirectionCredit, amount, description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pool funded", "owner_id", ownerID, "amount", amount.String())
	return entry, nil
}

// WithdrawFromPool debits cash out of the owner's deposit pool
func (s *budgetService) WithdrawFromPool(ownerID uuid.UUID, amount decimal.Decimal, description string) (*models.DepositLedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	entry, err := s.pools.ApplyEntry(ownerID, models.DepositLedgerKindWithdrawal, models.LedgerDirectionDebit, amount, description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pool withdrawal", "owner_id", ownerID, "amount", amount.String())
	return entry, nil
}

// GetPool retrieves the owner's deposit pool
func (s *budgetService) GetPool(ownerID uuid.UUID) (*models.DepositAccount, error) {
	return s.pools.GetByOwnerID(ownerID)
}

// GetPoolLedger retrieves the pool's ledger, oldest first
func (s *budgetService) GetPoolLedger(accountID uuid.UUID, offset, limit int) ([]models.DepositLedgerEntry, int64, error) {
	return s.pools.GetLedger(accountID, offset, limit)
}
