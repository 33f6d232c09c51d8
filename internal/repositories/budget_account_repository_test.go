package repositories

import (
	"testing"

	"stashvest/internal/database"
	"stashvest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetAccountRepositorySuite defines the test suite for BudgetAccountRepository
type BudgetAccountRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    BudgetAccountRepositoryInterface
	ownerID uuid.UUID
	account *models.BudgetAccount
}

// SetupTest runs before each test in the suite
func (s *BudgetAccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetAccountRepository(s.db.DB)
	s.ownerID = uuid.New()
	s.account = database.CreateTestBudgetAccount(s.T(), s.db, s.ownerID, 500)
}

// TearDownTest runs after each test in the suite
func (s *BudgetAccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBudgetAccountRepositorySuite runs the test suite
func TestBudgetAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetAccountRepositorySuite))
}

func (s *BudgetAccountRepositorySuite) TestCreate() {
	budget := decimal.NewFromInt(300)
	account := &models.BudgetAccount{
		OwnerID:       s.ownerID,
		Name:          "transport budget",
		Category:      models.BudgetCategoryTransport,
		MonthlyBudget: &budget,
		Active:        true,
	}

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
}

func (s *BudgetAccountRepositorySuite) TestGetByID() {
	found, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)
	s.Equal(s.account.ID, found.ID)
	s.Equal(s.account.Name, found.Name)
}

func (s *BudgetAccountRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *BudgetAccountRepositorySuite) TestGetByOwnerID() {
	database.CreateTestBudgetAccount(s.T(), s.db, s.ownerID, 200)
	database.CreateTestBudgetAccount(s.T(), s.db, uuid.New(), 100)

	accounts, err := s.repo.GetByOwnerID(s.ownerID)
	s.NoError(err)
	s.Len(accounts, 2)
}

func (s *BudgetAccountRepositorySuite) TestApplyEntry_Deposit() {
	entry, err := s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindDeposit, models.LedgerDirectionCredit,
		decimal.NewFromInt(100), "payday")
	s.NoError(err)
	s.NotNil(entry)
	s.True(entry.BalanceAfter.Equal(decimal.NewFromInt(100)))

	account, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)
	s.True(account.Balance.Equal(decimal.NewFromInt(100)))
	s.True(account.TotalDeposited.Equal(decimal.NewFromInt(100)))
}

func (s *BudgetAccountRepositorySuite) TestApplyEntry_InsufficientFunds() {
	_, err := s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindWithdrawal, models.LedgerDirectionDebit,
		decimal.NewFromInt(50), "overdraft attempt")
	s.ErrorIs(err, ErrInsufficientFunds)

	// The rejected debit left no ledger entry behind
	entries, total, err := s.repo.GetLedger(s.account.ID, 0, 10)
	s.NoError(err)
	s.Empty(entries)
	s.Zero(total)
}

func (s *BudgetAccountRepositorySuite) TestApplyEntry_BankSyncCountsAsSpend() {
	_, err := s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindDeposit, models.LedgerDirectionCredit,
		decimal.NewFromInt(200), "payday")
	s.NoError(err)

	_, err = s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindBankSync, models.LedgerDirectionDebit,
		decimal.NewFromInt(60), "grocery store")
	s.NoError(err)

	account, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)
	s.True(account.Balance.Equal(decimal.NewFromInt(140)))
	s.True(account.MonthSpent.Equal(decimal.NewFromInt(60)))
	s.True(account.MonthlySavings().Equal(decimal.NewFromInt(440)))
}

func (s *BudgetAccountRepositorySuite) TestApplyEntry_WithdrawalDoesNotCountAsSpend() {
	_, err := s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindDeposit, models.LedgerDirectionCredit,
		decimal.NewFromInt(200), "payday")
	s.NoError(err)

	_, err = s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindWithdrawal, models.LedgerDirectionDebit,
		decimal.NewFromInt(50), "cash out")
	s.NoError(err)

	account, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)
	s.True(account.MonthSpent.IsZero())
}

func (s *BudgetAccountRepositorySuite) TestApplyEntry_InactiveAccount() {
	s.NoError(s.repo.Deactivate(s.account.ID))

	_, err := s.repo.ApplyEntry(s.account.ID,
		models.LedgerKindDeposit, models.LedgerDirectionCredit,
		decimal.NewFromInt(100), "payday")
	s.ErrorIs(err, ErrAccountNotActive)
}

func (s *BudgetAccountRepositorySuite) TestApplyEntry_UnknownAccount() {
	_, err := s.repo.ApplyEntry(uuid.New(),
		models.LedgerKindDeposit, models.LedgerDirectionCredit,
		decimal.NewFromInt(100), "payday")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *BudgetAccountRepositorySuite) TestGetLedger_ReplayMatchesBalance() {
	amounts := []struct {
		kind      string
		direction string
		amount    int64
	}{
		{models.LedgerKindDeposit, models.LedgerDirectionCredit, 300},
		{models.LedgerKindBankSync, models.LedgerDirectionDebit, 45},
		{models.LedgerKindDeposit, models.LedgerDirectionCredit, 120},
		{models.LedgerKindWithdrawal, models.LedgerDirectionDebit, 80},
	}

	for _, a := range amounts {
		_, err := s.repo.ApplyEntry(s.account.ID, a.kind, a.direction,
			decimal.NewFromInt(a.amount), "")
		s.NoError(err)
	}

	entries, total, err := s.repo.GetLedger(s.account.ID, 0, 100)
	s.NoError(err)
	s.EqualValues(4, total)

	account, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)

	// Replaying the full history from zero reproduces the stored balance,
	// and every entry's running snapshot matches its own replay prefix.
	s.True(models.ReplayBalance(decimal.Zero, entries).Equal(account.Balance))
	for i, entry := range entries {
		s.True(models.ReplayBalance(decimal.Zero, entries[:i+1]).Equal(entry.BalanceAfter),
			"entry %d snapshot mismatch", i)
	}
}

func (s *BudgetAccountRepositorySuite) TestGetLedger_Pagination() {
	for i := 0; i < 5; i++ {
		_, err := s.repo.ApplyEntry(s.account.ID,
			models.LedgerKindDeposit, models.LedgerDirectionCredit,
			decimal.NewFromInt(10), "")
		s.NoError(err)
	}

	entries, total, err := s.repo.GetLedger(s.account.ID, 2, 2)
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(entries, 2)
}

func (s *BudgetAccountRepositorySuite) TestDeactivate() {
	err := s.repo.Deactivate(s.account.ID)
	s.NoError(err)

	account, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)
	s.False(account.Active)
}

func (s *BudgetAccountRepositorySuite) TestUpdate() {
	s.account.Name = "renamed budget"
	err := s.repo.Update(s.account)
	s.NoError(err)

	account, err := s.repo.GetByID(s.account.ID)
	s.NoError(err)
	s.Equal("renamed budget", account.Name)
}
