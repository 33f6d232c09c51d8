package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntry_Validate(t *testing.T) {
	validAccountID := uuid.New()

	tests := []struct {
		name    string
		entry   LedgerEntry
		wantErr error
	}{
		{
			name: "valid deposit entry",
			entry: LedgerEntry{
				AccountID:    validAccountID,
				Kind:         LedgerKindDeposit,
				Direction:    LedgerDirectionCredit,
				Amount:       decimal.NewFromInt(100),
				BalanceAfter: decimal.NewFromInt(100),
			},
		},
		{
			name: "valid investment entry",
			entry: LedgerEntry{
				AccountID:    validAccountID,
				Kind:         LedgerKindInvestment,
				Direction:    LedgerDirectionDebit,
				Amount:       decimal.NewFromInt(70),
				BalanceAfter: decimal.NewFromInt(30),
			},
		},
		{
			name: "invalid kind",
			entry: LedgerEntry{
				AccountID: validAccountID,
				Kind:      "refund",
				Direction: LedgerDirectionCredit,
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: ErrInvalidLedgerKind,
		},
		{
			name: "invalid direction",
			entry: LedgerEntry{
				AccountID: validAccountID,
				Kind:      LedgerKindDeposit,
				Direction: "sideways",
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: ErrInvalidLedgerDirection,
		},
		{
			name: "zero amount",
			entry: LedgerEntry{
				AccountID: validAccountID,
				Kind:      LedgerKindDeposit,
				Direction: LedgerDirectionCredit,
				Amount:    decimal.Zero,
			},
			wantErr: ErrInvalidLedgerAmount,
		},
		{
			name: "negative amount",
			entry: LedgerEntry{
				AccountID: validAccountID,
				Kind:      LedgerKindDeposit,
				Direction: LedgerDirectionCredit,
				Amount:    decimal.NewFromInt(-5),
			},
			wantErr: ErrInvalidLedgerAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedgerEntry_Immutability(t *testing.T) {
	entry := LedgerEntry{
		AccountID: uuid.New(),
		Kind:      LedgerKindDeposit,
		Direction: LedgerDirectionCredit,
		Amount:    decimal.NewFromInt(100),
	}

	assert.ErrorIs(t, entry.BeforeUpdate(nil), ErrLedgerEntryImmutable)
	assert.ErrorIs(t, entry.BeforeDelete(nil), ErrLedgerEntryImmutable)
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	credit := LedgerEntry{Direction: LedgerDirectionCredit, Amount: decimal.NewFromInt(70)}
	debit := LedgerEntry{Direction: LedgerDirectionDebit, Amount: decimal.NewFromInt(70)}

	assert.True(t, credit.SignedAmount().Equal(decimal.NewFromInt(70)))
	assert.True(t, debit.SignedAmount().Equal(decimal.NewFromInt(-70)))
	assert.True(t, credit.IsCredit())
	assert.False(t, debit.IsCredit())
}

func TestGenerateLedgerReference(t *testing.T) {
	ref1 := GenerateLedgerReference()
	ref2 := GenerateLedgerReference()

	assert.True(t, strings.HasPrefix(ref1, "LED-"))
	assert.NotEqual(t, ref1, ref2)
}

func TestReplayBalance(t *testing.T) {
	entries := []LedgerEntry{
		{Direction: LedgerDirectionCredit, Amount: decimal.NewFromInt(100)},
		{Direction: LedgerDirectionDebit, Amount: decimal.NewFromInt(70)},
		{Direction: LedgerDirectionCredit, Amount: decimal.NewFromInt(84)},
	}

	result := ReplayBalance(decimal.Zero, entries)

	assert.True(t, result.Equal(decimal.NewFromInt(114)))
}

func TestReplayBalance_Empty(t *testing.T) {
	initial := decimal.NewFromInt(50)

	result := ReplayBalance(initial, nil)

	assert.True(t, result.Equal(initial))
}

func TestIsValidLedgerKind(t *testing.T) {
	for _, kind := range []string{
		LedgerKindDeposit, LedgerKindWithdrawal, LedgerKindReward,
		LedgerKindInvestment, LedgerKindSale, LedgerKindBankSync,
	} {
		assert.True(t, IsValidLedgerKind(kind), kind)
	}
	assert.False(t, IsValidLedgerKind("refund"))
	assert.False(t, IsValidLedgerKind(""))
}

func TestDepositLedgerEntry_Immutability(t *testing.T) {
	entry := DepositLedgerEntry{
		AccountID: uuid.New(),
		Kind:      DepositLedgerKindFunding,
		Direction: LedgerDirectionCredit,
		Amount:    decimal.NewFromInt(100),
	}

	require.NoError(t, entry.Validate())
	assert.ErrorIs(t, entry.BeforeUpdate(nil), ErrLedgerEntryImmutable)
	assert.ErrorIs(t, entry.BeforeDelete(nil), ErrLedgerEntryImmutable)
}

func TestDepositLedgerEntry_Validate_InvalidKind(t *testing.T) {
	entry := DepositLedgerEntry{
		AccountID: uuid.New(),
		Kind:      LedgerKindBankSync, // budget-ledger kind, not valid here
		Direction: LedgerDirectionCredit,
		Amount:    decimal.NewFromInt(10),
	}

	assert.ErrorIs(t, entry.Validate(), ErrInvalidLedgerKind)
}
