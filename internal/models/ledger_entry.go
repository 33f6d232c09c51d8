package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LedgerKindDeposit    = "deposit"
	LedgerKindWithdrawal = "withdrawal"
	LedgerKindReward     = "reward"
	LedgerKindInvestment = "investment"
	LedgerKindSale       = "sale"
	LedgerKindBankSync   = "bank_sync"

	LedgerDirectionCredit = "credit"
	LedgerDirectionDebit  = "debit"
)

var (
	ErrInvalidLedgerKind      = errors.New("invalid ledger entry kind")
	ErrInvalidLedgerDirection = errors.New("invalid ledger entry direction")
	ErrInvalidLedgerAmount    = errors.New("ledger entry amount must be positive")
	ErrLedgerEntryImmutable   = errors.New("ledger entries are append-only")
)

// LedgerEntry is an immutable record of one balance-affecting event on a
// budget account. Entries are only ever created, never updated or deleted;
// BalanceAfter snapshots the account balance at the moment the entry was
// written so the full history can be replayed for reconciliation.
type LedgerEntry struct {
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
	Account BudgetAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for LedgerEntry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
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
func (e *LedgerEntry) BeforeUpdate(tx *gorm.DB) error {
	return ErrLedgerEntryImmutable
}

// BeforeDelete rejects deletion of a persisted entry
func (e *LedgerEntry) BeforeDelete(tx *gorm.DB) error {
	return ErrLedgerEntryImmutable
}

// Validate validates the ledger entry fields
func (e *LedgerEntry) Validate() error {
	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidLedgerKind(e.Kind) {
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

// IsCredit returns true if the entry increased the balance
func (e *LedgerEntry) IsCredit() bool {
	return e.Direction == LedgerDirectionCredit
}

// SignedAmount returns the amount with the sign implied by the direction
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.IsCredit() {
		return e.Amount
	}
	return e.Amount.Neg()
}

// TableName returns the table name for LedgerEntry
func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsValidLedgerKind checks if the entry kind is valid
func IsValidLedgerKind(kind string) bool {
	switch kind {
	case LedgerKindDeposit, LedgerKindWithdrawal, LedgerKindReward,
		LedgerKindInvestment, LedgerKindSale, LedgerKindBankSync:
		return true
	default:
		return false
	}
}

// IsValidLedgerDirection checks if the entry direction is valid
func IsValidLedgerDirection(direction string) bool {
	switch direction {
	case LedgerDirectionCredit, LedgerDirectionDebit:
		return true
	default:
		return false
	}
}

// GenerateLedgerReference generates a unique ledger entry reference
func GenerateLedgerReference() string {
	return "LED-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}

// ReplayBalance replays a sequence of ledger entries on top of an initial
// balance. Used by reconciliation checks: the result must equal the
// account's running balance for every prefix of the history.
func ReplayBalance(initial decimal.Decimal, entries []LedgerEntry) decimal.Decimal {
	balance := initial
	for _, entry := range entries {
		balance = balance.Add(entry.SignedAmount())
	}
	return balance
}
