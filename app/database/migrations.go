package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Add scope column to fee_items if not exists
	err := addFeeItemScopeColumn(db)
	if err != nil {
		return err
	}

	// 2. Add applies_to_returnee column to requirements if not exists
	err = addRequirementReturneeColumn(db)
	if err != nil {
		return err
	}

	// 3. Add available_quantity column to books if not exists
	err = addBookAvailableQuantityColumn(db)
	if err != nil {
		return err
	}

	// 4. Add channel column to online_transactions if not exists
	err = addTransactionChannelColumn(db)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addFeeItemScopeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'fee_items'
				AND column_name = 'scope'
			) THEN
				ALTER TABLE fee_items ADD COLUMN scope VARCHAR(20) NOT NULL DEFAULT 'scoped';
				RAISE NOTICE 'Added scope column to fee_items';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for fee_items scope column: %v", err)
		return err
	}
	return nil
}

func addRequirementReturneeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'requirements'
				AND column_name = 'applies_to_returnee'
			) THEN
				ALTER TABLE requirements ADD COLUMN applies_to_returnee BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added applies_to_returnee column to requirements';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for applies_to_returnee column: %v", err)
		return err
	}
	return nil
}

func addBookAvailableQuantityColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'books'
				AND column_name = 'available_quantity'
			) THEN
				ALTER TABLE books ADD COLUMN available_quantity INTEGER NOT NULL DEFAULT 0;
				UPDATE books SET available_quantity = total_quantity;
				RAISE NOTICE 'Added available_quantity column to books';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for available_quantity column: %v", err)
		return err
	}
	return nil
}

func addTransactionChannelColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'online_transactions'
				AND column_name = 'channel'
			) THEN
				ALTER TABLE online_transactions ADD COLUMN channel VARCHAR(50);
				RAISE NOTICE 'Added channel column to online_transactions';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for channel column: %v", err)
		return err
	}
	return nil
}
