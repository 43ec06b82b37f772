package migration

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the schema version this binary expects
const CurrentSchemaVersion = "1.0.0"

// Manager handles database schema migrations
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Run applies all pending schema changes
func (m *Manager) Run() error {
	m.logger.Info("Running database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Transaction{},
		&model.MigrationVersion{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	if err := m.addCheckConstraints(); err != nil {
		return fmt.Errorf("failed to add check constraints: %w", err)
	}

	if err := m.addIndexes(); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	applied, err := m.isVersionApplied(CurrentSchemaVersion)
	if err != nil {
		return err
	}
	if !applied {
		if err := m.recordVersion(CurrentSchemaVersion, "initial schema with users, sessions and transactions"); err != nil {
			return err
		}
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// addCheckConstraints enforces amount and kind invariants at the store
// boundary so no write path can bypass them
func (m *Manager) addCheckConstraints() error {
	constraints := []struct {
		name       string
		definition string
	}{
		{
			name:       "chk_transactions_amount_non_negative",
			definition: "CHECK (amount_in_cents >= 0)",
		},
		{
			name:       "chk_transactions_kind",
			definition: "CHECK (kind IN ('income', 'expense'))",
		},
	}

	for _, constraint := range constraints {
		statement := fmt.Sprintf(`
			DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint WHERE conname = '%s'
				) THEN
					ALTER TABLE transactions ADD CONSTRAINT %s %s;
				END IF;
			END $$;
		`, constraint.name, constraint.name, constraint.definition)

		if err := m.db.Exec(statement).Error; err != nil {
			return fmt.Errorf("constraint %s: %w", constraint.name, err)
		}
	}
	return nil
}

// addIndexes creates indexes that AutoMigrate does not cover
func (m *Manager) addIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, date)",
	}
	for _, statement := range indexes {
		if err := m.db.Exec(statement).Error; err != nil {
			return fmt.Errorf("index creation failed: %w", err)
		}
	}
	return nil
}

func (m *Manager) isVersionApplied(version string) (bool, error) {
	var count int64
	if err := m.db.Model(&model.MigrationVersion{}).
		Where("version = ?", version).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query migration versions: %w", err)
	}
	return count > 0, nil
}

func (m *Manager) recordVersion(version, details string) error {
	record := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	if err := m.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record migration version: %w", err)
	}
	return nil
}
