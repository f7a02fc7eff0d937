package database

import (
	"database/sql"

	"yano-school/app/logger"
)

// RunMigrations bootstraps the schema and applies incremental updates.
// Every statement is idempotent so the runner is safe to execute on
// every start.
func RunMigrations(db *sql.DB) error {
	logger.Log.Info("running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS terms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session_id UUID NOT NULL REFERENCES sessions(id),
			name TEXT NOT NULL,
			ordinal INTEGER UNIQUE NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (session_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_no TEXT UNIQUE NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender TEXT,
			class_level TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_level TEXT NOT NULL,
			term_id UUID NOT NULL REFERENCES terms(id),
			purpose TEXT NOT NULL,
			amount BIGINT NOT NULL CHECK (amount >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (class_level, term_id, purpose)
		)`,

		`CREATE TABLE IF NOT EXISTS charges (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			purpose TEXT NOT NULL,
			amount BIGINT NOT NULL CHECK (amount >= 0),
			carried_over BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, term_id, purpose)
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			amount BIGINT NOT NULL CHECK (amount > 0),
			method VARCHAR(50) NOT NULL,
			description TEXT,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			voided_at TIMESTAMPTZ
		)`,

		`CREATE SEQUENCE IF NOT EXISTS receipt_no_seq START 1`,

		`CREATE TABLE IF NOT EXISTS receipts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			receipt_no BIGINT UNIQUE NOT NULL DEFAULT nextval('receipt_no_seq'),
			payment_id UUID UNIQUE NOT NULL REFERENCES payments(id),
			issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS carry_overs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			from_term_id UUID NOT NULL REFERENCES terms(id),
			to_term_id UUID NOT NULL REFERENCES terms(id),
			purpose TEXT NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, from_term_id, purpose)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_charges_term ON charges(term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_charges_student_term ON charges(student_id, term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_term ON payments(student_id, term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_term ON payments(term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_structures_term ON fee_structures(term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class_level ON students(class_level)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			logger.Log.Errorf("migration failed: %v", err)
			return err
		}
	}

	if err := addPaymentVoidedAtColumn(db); err != nil {
		return err
	}

	logger.Log.Info("database migrations completed successfully")
	return nil
}

// addPaymentVoidedAtColumn upgrades databases created before payment
// voiding existed.
func addPaymentVoidedAtColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'payments'
				AND column_name = 'voided_at'
			) THEN
				ALTER TABLE payments ADD COLUMN voided_at TIMESTAMPTZ;
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		logger.Log.Errorf("failed to run migration for voided_at column: %v", err)
		return err
	}
	return nil
}
