package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PositionStatusPending  = "pending"
	PositionStatusInvested = "invested"
	PositionStatusSold     = "sold"
	PositionStatusLocked   = "locked"
)

var (
	ErrInvalidPositionStatus     = errors.New("invalid position status")
	ErrInvalidPositionTransition = errors.New("invalid position status transition")
	ErrInvalidSavingsAmount      = errors.New("savings amount must be positive")
)

// MinFractionalQty is the smallest share quantity a fractional fill may carry.
var MinFractionalQty = decimal.NewFromFloat(0.0001)

// InvestmentPosition is one conversion of a monthly savings surplus into a
// security holding. SavingsAmount is frozen at creation; purchase and sale
// fields are written exclusively by the trading service; the derived
// valuation fields (CurrentValue, ReturnRate, IsProfitable, CanSell) are
// recomputed from prices and never set independently.
type InvestmentPosition struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Symbol        string          `gorm:"type:varchar(10);not null" json:"symbol"`
	SavingsAmount decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"savings_amount"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"purchase_price"`
	Shares        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"shares"`
	PurchaseDate  *time.Time      `json:"purchase_date,omitempty"`

	CurrentPrice decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"current_price"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"current_value"`
	ReturnRate   decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"return_rate"`
	IsProfitable bool            `gorm:"not null;default:false" json:"is_profitable"`
	CanSell      bool            `gorm:"not null;default:false" json:"can_sell"`

	SellPrice   decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"sell_price"`
	SellDate    *time.Time      `json:"sell_date,omitempty"`
	Commission  decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"commission"`
	NetProceeds decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"net_proceeds"`

	// OrderRef is the idempotency key handed to the execution backend, so a
	// retried submission cannot double-fill.
	OrderRef   string     `gorm:"type:varchar(100);uniqueIndex" json:"order_ref,omitempty"`
	LockReason string     `gorm:"type:text" json:"lock_reason,omitempty"`
	LockedAt   *time.Time `json:"locked_at,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Account BudgetAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for InvestmentPosition
func (p *InvestmentPosition) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Status == "" {
		p.Status = PositionStatusPending
	}

	if p.OrderRef == "" {
		p.OrderRef = "POS-" + p.ID.String()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for InvestmentPosition
func (p *InvestmentPosition) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the position fields
func (p *InvestmentPosition) Validate() error {
	if p.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if p.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if p.Symbol == "" {
		return errors.New("symbol is required")
	}

	if !IsValidPositionStatus(p.Status) {
		return ErrInvalidPositionStatus
	}

	return nil
}

// IsValidPositionStatus checks if the status is valid
func IsValidPositionStatus(status string) bool {
	switch status {
	case PositionStatusPending, PositionStatusInvested, PositionStatusSold, PositionStatusLocked:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if the position can move to a new status.
// The forward path is pending -> invested -> sold; locked is a manual hold
// that only applies to an invested position and only releases back to it.
func (p *InvestmentPosition) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		PositionStatusPending:  {PositionStatusInvested},
		PositionStatusInvested: {PositionStatusSold, PositionStatusLocked},
		PositionStatusLocked:   {PositionStatusInvested},
		PositionStatusSold:     {},
	}

	allowed, exists := validTransitions[p.Status]
	if !exists {
		return false
	}

	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

// MarkInvested records a purchase fill and moves the position to invested
func (p *InvestmentPosition) MarkInvested(price, shares decimal.Decimal, filledAt time.Time) error {
	if !p.CanTransitionTo(PositionStatusInvested) {
		return ErrInvalidPositionTransition
	}

	p.Status = PositionStatusInvested
	p.PurchasePrice = price
	p.Shares = shares
	p.PurchaseDate = &filledAt
	p.CurrentPrice = price
	p.Recompute()
	return nil
}

// MarkSold records a sale fill and moves the position to its terminal state
func (p *InvestmentPosition) MarkSold(price, commission, netProceeds decimal.Decimal, soldAt time.Time) error {
	if !p.CanTransitionTo(PositionStatusSold) {
		return ErrInvalidPositionTransition
	}

	p.Status = PositionStatusSold
	p.SellPrice = price
	p.SellDate = &soldAt
	p.Commission = commission
	p.NetProceeds = netProceeds
	p.CanSell = false
	return nil
}

// Lock places a manual operational hold on an invested position. Locked
// positions are skipped by sync and refused by sale until unlocked.
func (p *InvestmentPosition) Lock(reason string) error {
	if !p.CanTransitionTo(PositionStatusLocked) {
		return ErrInvalidPositionTransition
	}

	p.Status = PositionStatusLocked
	p.LockReason = reason
	now := time.Now()
	p.LockedAt = &now
	return nil
}

// Unlock releases a manual hold, returning the position to invested
func (p *InvestmentPosition) Unlock() error {
	if p.Status != PositionStatusLocked {
		return ErrInvalidPositionTransition
	}

	p.Status = PositionStatusInvested
	p.LockReason = ""
	p.LockedAt = nil
	return nil
}

// Recompute re-derives the valuation fields from (PurchasePrice, Shares,
// CurrentPrice). Pure and idempotent: calling it twice with the same inputs
// yields the same outputs.
//
// CanSell is forced true on every recompute regardless of profitability.
// Loss-blocking is a separate, independently configured trading-service rule
// and is deliberately not folded into this flag.
func (p *InvestmentPosition) Recompute() {
	p.CurrentValue = p.CurrentPrice.Mul(p.Shares)
	cost := p.PurchasePrice.Mul(p.Shares)

	if cost.IsZero() {
		p.ReturnRate = decimal.Zero
	} else {
		p.ReturnRate = p.CurrentValue.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100))
	}

	p.IsProfitable = p.CurrentValue.GreaterThan(cost)
	p.CanSell = true
}

// UpdatePrice refreshes the market price and re-derives valuation fields
func (p *InvestmentPosition) UpdatePrice(price decimal.Decimal) {
	p.CurrentPrice = price
	p.Recompute()
}

// IsPending returns true if the position has not been executed yet
func (p *InvestmentPosition) IsPending() bool {
	return p.Status == PositionStatusPending
}

// IsInvested returns true if the position holds shares
func (p *InvestmentPosition) IsInvested() bool {
	return p.Status == PositionStatusInvested
}

// IsLocked returns true if the position is under a manual hold
func (p *InvestmentPosition) IsLocked() bool {
	return p.Status == PositionStatusLocked
}

// TableName returns the table name for InvestmentPosition
func (p *InvestmentPosition) TableName() string {
	return "investment_positions"
}
