package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DepositLedgerKindFunding    = "funding"
	DepositLedgerKindInvestment = "investment"
	DepositLedgerKindSale       = "sale"
	DepositLedgerKindWithdrawal = "withdrawal"
)

// DepositLedgerEntry records one balance-affecting event on the central
// deposit pool. Same append-only discipline as LedgerEntry.
type DepositLedgerEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Kind         string          `gorm:"type:varchar(20);not null" json:"kind"`
	Direction    string          `gorm:"type:varchar(10);not null" json:"direction"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"amount"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"balance_after"`
	Description  string          `gorm:"type:text" json:"description"`
	Reference    string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Account DepositAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for DepositLedgerEntry
func (e *DepositLedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	if e.Reference == "" {
		e.Reference = GenerateLedgerReference()
	}

	return e.Validate()
}

// BeforeUpdate rejects any mutation of a persisted entry
func (e *DepositLedgerEntry) BeforeUpdate(tx *gorm.DB) error {
	return ErrLedgerEntryImmutable
}

// BeforeDelete rejects deletion of a persisted entry
func (e *DepositLedgerEntry) BeforeDelete(tx *gorm.DB) error {
	return ErrLedgerEntryImmutable
}

// Validate validates the deposit ledger entry fields
func (e *DepositLedgerEntry) Validate() error {
	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidDepositLedgerKind(e.Kind) {
		return ErrInvalidLedgerKind
	}

	if !IsValidLedgerDirection(e.Direction) {
		return ErrInvalidLedgerDirection
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidLedgerAmount
	}

	return nil
}

// IsCredit returns true if the entry increased the pool balance
func (e *DepositLedgerEntry) IsCredit() bool {
	return e.Direction == LedgerDirectionCredit
}

// SignedAmount returns the amount with the sign implied by the direction
func (e *DepositLedgerEntry) SignedAmount() decimal.Decimal {
	if e.IsCredit() {
		return e.Amount
	}
	return e.Amount.Neg()
}

// TableName returns the table name for DepositLedgerEntry
func (e *DepositLedgerEntry) TableName() string {
	return "deposit_ledger_entries"
}

// IsValidDepositLedgerKind checks if the entry kind is valid for the pool ledger
func IsValidDepositLedgerKind(kind string) bool {
	switch kind {
	case DepositLedgerKindFunding, DepositLedgerKindInvestment,
		DepositLedgerKindSale, DepositLedgerKindWithdrawal:
		return true
	default:
		return false
	}
}
