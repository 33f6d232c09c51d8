package database

import (
	"fmt"
	"testing"

	"stashvest/internal/config"
	"stashvest/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"investment_positions",
		"deposit_ledger_entries",
		"deposit_accounts",
		"ledger_entries",
		"budget_accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// CreateTestBudgetAccount creates a budget account with a monthly budget for tests
func CreateTestBudgetAccount(t *testing.T, db *DB, ownerID uuid.UUID, monthlyBudget float64) *models.BudgetAccount {
	t.Helper()

	budget := decimal.NewFromFloat(monthlyBudget)
	account := &models.BudgetAccount{
		OwnerID:       ownerID,
		Name:          gofakeit.NounAbstract() + " budget",
		Category:      models.BudgetCategoryOther,
		MonthlyBudget: &budget,
		Active:        true,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test budget account: %v", err)
	}

	return account
}

// CreateTestDepositAccount creates a funded central deposit account for tests
func CreateTestDepositAccount(t *testing.T, db *DB, ownerID uuid.UUID, balance float64) *models.DepositAccount {
	t.Helper()

	funded := decimal.NewFromFloat(balance)
	account := &models.DepositAccount{
		OwnerID:        ownerID,
		Balance:        funded,
		TotalDeposited: funded,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test deposit account: %v", err)
	}

	return account
}
