package services

import (
	"io"
	"log/slog"
	"testing"

	"stashvest/internal/models"
	"stashvest/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetServiceSuite defines the test suite for BudgetService
type BudgetServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	accounts *repository_mocks.MockBudgetAccountRepositoryInterface
	pools    *repository_mocks.MockDepositAccountRepositoryInterface
	service  BudgetServiceInterface
}

// SetupTest runs before each test in the suite
func (s *BudgetServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accounts = repository_mocks.NewMockBudgetAccountRepositoryInterface(s.ctrl)
	s.pools = repository_mocks.NewMockDepositAccountRepositoryInterface(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewBudgetService(s.accounts, s.pools, logger)
}

// TearDownTest runs after each test in the suite
func (s *BudgetServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetServiceSuite runs the test suite
func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) TestCreateAccount() {
	ownerID := uuid.New()
	budget := decimal.NewFromInt(500)

	s.accounts.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(account *models.BudgetAccount) error {
			s.Equal(ownerID, account.OwnerID)
			s.Equal("food budget", account.Name)
			s.Equal(models.BudgetCategoryFood, account.Category)
			s.True(account.Active)
			return nil
		})

	account, err := s.service.CreateAccount(ownerID, "food budget", models.BudgetCategoryFood, &budget)
	s.NoError(err)
	s.NotNil(account)
}

func (s *BudgetServiceSuite) TestDeposit() {
	accountID := uuid.New()
	amount := decimal.NewFromInt(100)

	s.accounts.EXPECT().ApplyEntry(accountID,
		models.LedgerKindDeposit, models.LedgerDirectionCredit, amount, "payday").
		Return(&models.LedgerEntry{Amount: amount}, nil)

	entry, err := s.service.Deposit(accountID, amount, "payday")
	s.NoError(err)
	s.True(entry.Amount.Equal(amount))
}

func (s *BudgetServiceSuite) TestDeposit_NonPositiveAmount() {
	_, err := s.service.Deposit(uuid.New(), decimal.Zero, "payday")
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.service.Deposit(uuid.New(), decimal.NewFromInt(-5), "payday")
	s.ErrorIs(err, ErrInvalidAmount)
}

func (s *BudgetServiceSuite) TestWithdraw() {
	accountID := uuid.New()
	amount := decimal.NewFromInt(40)

	s.accounts.EXPECT().ApplyEntry(accountID,
		models.LedgerKindWithdrawal, models.LedgerDirectionDebit, amount, "cash out").
		Return(&models.LedgerEntry{Amount: amount}, nil)

	_, err := s.service.Withdraw(accountID, amount, "cash out")
	s.NoError(err)
}

func (s *BudgetServiceSuite) TestRecordBankSpend() {
	accountID := uuid.New()
	amount := decimal.NewFromInt(60)

	s.accounts.EXPECT().ApplyEntry(accountID,
		models.LedgerKindBankSync, models.LedgerDirectionDebit, amount, "grocery store").
		Return(&models.LedgerEntry{Amount: amount}, nil)

	_, err := s.service.RecordBankSpend(accountID, amount, "grocery store")
	s.NoError(err)
}

func (s *BudgetServiceSuite) TestMonthlySavings() {
	accountID := uuid.New()
	budget := decimal.NewFromInt(500)
	s.accounts.EXPECT().GetByID(accountID).Return(&models.BudgetAccount{
		ID:            accountID,
		MonthlyBudget: &budget,
		MonthSpent:    decimal.NewFromInt(430),
	}, nil)

	savings, err := s.service.MonthlySavings(accountID)
	s.NoError(err)
	s.True(savings.Equal(decimal.NewFromInt(70)))
}

func (s *BudgetServiceSuite) TestMonthlySavings_NoBudgetConfigured() {
	accountID := uuid.New()
	s.accounts.EXPECT().GetByID(accountID).
		Return(&models.BudgetAccount{ID: accountID}, nil)

	_, err := s.service.MonthlySavings(accountID)
	s.ErrorIs(err, models.ErrNoMonthlyBudget)
}

func (s *BudgetServiceSuite) TestFundPool_CreatesPoolOnFirstUse() {
	ownerID := uuid.New()
	amount := decimal.NewFromInt(1000)

	s.pools.EXPECT().GetOrCreateForOwner(ownerID, "").
		Return(&models.DepositAccount{OwnerID: ownerID}, nil)
	s.pools.EXPECT().ApplyEntry(ownerID,
		models.DepositLedgerKindFunding, models.LedgerDirectionCredit, amount, "initial funding").
		Return(&models.DepositLedgerEntry{Amount: amount}, nil)

	entry, err := s.service.FundPool(ownerID, amount, "initial funding")
	s.NoError(err)
	s.True(entry.Amount.Equal(amount))
}

func (s *BudgetServiceSuite) TestFundPool_NonPositiveAmount() {
	_, err := s.service.FundPool(uuid.New(), decimal.Zero, "")
	s.ErrorIs(err, ErrInvalidAmount)
}

func (s *BudgetServiceSuite) TestWithdrawFromPool() {
	ownerID := uuid.New()
	amount := decimal.NewFromInt(250)

	s.pools.EXPECT().ApplyEntry(ownerID,
		models.DepositLedgerKindWithdrawal, models.LedgerDirectionDebit, amount, "payout").
		Return(&models.DepositLedgerEntry{Amount: amount}, nil)

	_, err := s.service.WithdrawFromPool(ownerID, amount, "payout")
	s.NoError(err)
}

func (s *BudgetServiceSuite) TestWithdrawFromPool_NonPositiveAmount() {
	_, err := s.service.WithdrawFromPool(uuid.New(), decimal.NewFromInt(-1), "")
	s.ErrorIs(err, ErrInvalidAmount)
}
