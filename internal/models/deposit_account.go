package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepositAccount is the single central cash pool per owner that funds all
// security purchases and receives all sale proceeds. It is created lazily
// on the owner's first investment.
type DepositAccount struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	Balance             decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"balance"`
	TotalDeposited      decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"total_deposited"`
	TotalWithdrawn      decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"total_withdrawn"`
	BrokerageAccountRef string          `gorm:"type:varchar(100)" json:"brokerage_account_ref,omitempty"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	LedgerEntries []DepositLedgerEntry `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for DepositAccount
func (a *DepositAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
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

// BeforeUpdate hook for DepositAccount
func (a *DepositAccount) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the deposit account fields
func (a *DepositAccount) Validate() error {
	if a.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// CanCover reports whether the pool balance covers the planned cost
func (a *DepositAccount) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Debit reduces the pool balance, rejecting overdrafts
func (a *DepositAccount) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	a.TotalWithdrawn = a.TotalWithdrawn.Add(amount)
	return nil
}

// Credit increases the pool balance
func (a *DepositAccount) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	a.TotalDeposited = a.TotalDeposited.Add(amount)
	return nil
}

// TableName returns the table name for DepositAccount
func (a *DepositAccount) TableName() string {
	return "deposit_accounts"
}
