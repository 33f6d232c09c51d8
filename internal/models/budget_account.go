package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetCategoryFood          = "food"
	BudgetCategoryTransport     = "transport"
	BudgetCategoryHousing       = "housing"
	BudgetCategoryLeisure       = "leisure"
	BudgetCategorySubscriptions = "subscriptions"
	BudgetCategoryOther         = "other"
)

var (
	ErrInvalidBalance     = errors.New("balance cannot be negative")
	ErrAccountInactive    = errors.New("budget account is not active")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoMonthlyBudget    = errors.New("budget account has no monthly budget configured")
	ErrInvalidBudgetLabel = errors.New("budget account name is required")
)

// BudgetAccount tracks a per-category spending budget for one owner. Its
// balance moves only through deposit/withdraw/invest operations, each of
// which appends exactly one LedgerEntry in the same database transaction.
type BudgetAccount struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name           string           `gorm:"type:varchar(100);not null" json:"name"`
	Category       string           `gorm:"type:varchar(50);not null;default:'other'" json:"category"`
	Balance        decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0" json:"balance"`
	TotalDeposited decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0" json:"total_deposited"`
	MonthlyBudget  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"monthly_budget,omitempty"`
	MonthSpent     decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0" json:"month_spent"`
	PendingReward  decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0" json:"pending_reward"`
	RealizedReward decimal.Decimal  `gorm:"type:decimal(20,6);not null;default:0" json:"realized_reward"`
	Active         bool             `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`

	// Associations
	LedgerEntries []LedgerEntry       `gorm:"foreignKey:AccountID" json:"-"`
	Positions     []InvestmentPosition `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for BudgetAccount
func (a *BudgetAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Category == "" {
		a.Category = BudgetCategoryOther
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for BudgetAccount
func (a *BudgetAccount) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the budget account fields
func (a *BudgetAccount) Validate() error {
	if a.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if a.Name == "" {
		return ErrInvalidBudgetLabel
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	if a.MonthlyBudget != nil && a.MonthlyBudget.LessThan(decimal.Zero) {
		return errors.New("monthly budget cannot be negative")
	}

	return nil
}

// MonthlySavings returns the unspent part of the monthly budget,
// max(monthlyBudget - monthSpent, 0). Accounts without a monthly budget
// have no savings to convert.
func (a *BudgetAccount) MonthlySavings() decimal.Decimal {
	if a.MonthlyBudget == nil {
		return decimal.Zero
	}
	savings := a.MonthlyBudget.Sub(a.MonthSpent)
	if savings.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return savings
}

// Debit reduces the balance, rejecting overdrafts
func (a *BudgetAccount) Debit(amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountInactive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit increases the balance
func (a *BudgetAccount) Credit(amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountInactive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Deactivate soft-disables the account. Budget accounts are never hard-deleted.
func (a *BudgetAccount) Deactivate() {
	a.Active = false
}

// TableName returns the table name for BudgetAccount
func (a *BudgetAccount) TableName() string {
	return "budget_accounts"
}
