package database

import (
	"fmt"
	"log"
	"time"

	"stashvest/internal/config"
	"stashvest/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.BudgetAccount{},
		&models.LedgerEntry{},
		&models.DepositAccount{},
		&models.DepositLedgerEntry{},
		&models.InvestmentPosition{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_budget_accounts_owner_id ON budget_accounts(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_budget_accounts_active ON budget_accounts(active)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_account_id ON ledger_entries(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at ON ledger_entries(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_reference ON ledger_entries(reference)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_deposit_accounts_owner_id ON deposit_accounts(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_deposit_ledger_entries_account_id ON deposit_ledger_entries(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_deposit_ledger_entries_created_at ON deposit_ledger_entries(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_investment_positions_account_id ON investment_positions(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_investment_positions_owner_id ON investment_positions(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_investment_positions_status ON investment_positions(status)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_investment_positions_order_ref ON investment_positions(order_ref)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
