package database

import (
	"database/sql"
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CreateFeeItem adds a catalog line for a school year.
func CreateFeeItem(db *sql.DB, item *models.FeeItem) error {
	query := `INSERT INTO fee_items (name, price, school_year, scope, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, item.Name, item.Price, item.SchoolYear, string(item.Scope)).Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fee item: %v", err)
	}

	item.IsActive = true
	return nil
}

// GetFeeItemByID loads one fee item with its assignment rules.
func GetFeeItemByID(db *sql.DB, feeItemID string) (*models.FeeItem, error) {
	item := &models.FeeItem{}
	var scope string

	query := `SELECT id, name, price, school_year, scope, is_active, created_at, updated_at
			  FROM fee_items WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, feeItemID).Scan(
		&item.ID, &item.Name, &item.Price, &item.SchoolYear, &scope,
		&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Scope = models.FeeScope(scope)

	assignments, err := GetAssignmentsForFeeItem(db, feeItemID)
	if err == nil {
		item.Assignments = assignments
	}

	return item, nil
}

// UpdateFeeItem updates a fee item's name, price and scope.
func UpdateFeeItem(db *sql.DB, item *models.FeeItem) error {
	query := `UPDATE fee_items
			  SET name = $1, price = $2, scope = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`

	result, err := db.Exec(query, item.Name, item.Price, string(item.Scope), item.ID)
	if err != nil {
		return fmt.Errorf("failed to update fee item: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("fee item not found")
	}

	return nil
}

// SetFeeItemActive flips the soft activation flag. Fee items are never
// hard-deleted.
func SetFeeItemActive(db *sql.DB, feeItemID string, active bool) error {
	query := `UPDATE fee_items SET is_active = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`

	result, err := db.Exec(query, active, feeItemID)
	if err != nil {
		return fmt.Errorf("failed to update fee item: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("fee item not found")
	}

	return nil
}

// CreateFeeItemAssignment adds a scoping rule to a fee item.
func CreateFeeItemAssignment(db *sql.DB, assignment *models.FeeItemAssignment) error {
	var classification *string
	if assignment.Classification != nil {
		c := string(*assignment.Classification)
		classification = &c
	}

	query := `INSERT INTO fee_item_assignments (fee_item_id, school_year, classification, department_id, year_level_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		assignment.FeeItemID, assignment.SchoolYear, classification,
		assignment.DepartmentID, assignment.YearLevelID,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fee assignment: %v", err)
	}

	assignment.IsActive = true
	return nil
}

// GetAssignmentsForFeeItem lists a fee item's active assignment rules.
func GetAssignmentsForFeeItem(db *sql.DB, feeItemID string) ([]*models.FeeItemAssignment, error) {
	query := `SELECT a.id, a.fee_item_id, a.school_year, a.classification, a.department_id, a.year_level_id,
			  a.is_active, a.created_at, a.updated_at,
			  d.name as department_name, y.name as year_level_name
			  FROM fee_item_assignments a
			  LEFT JOIN departments d ON a.department_id = d.id
			  LEFT JOIN year_levels y ON a.year_level_id = y.id
			  WHERE a.fee_item_id = $1 AND a.deleted_at IS NULL
			  ORDER BY a.created_at`

	rows, err := db.Query(query, feeItemID)
	if err != nil {
		return []*models.FeeItemAssignment{}, err
	}
	defer rows.Close()

	var assignments []*models.FeeItemAssignment
	for rows.Next() {
		assignment := &models.FeeItemAssignment{}
		var classification *string
		var departmentName, yearLevelName *string

		err := rows.Scan(
			&assignment.ID, &assignment.FeeItemID, &assignment.SchoolYear,
			&classification, &assignment.DepartmentID, &assignment.YearLevelID,
			&assignment.IsActive, &assignment.CreatedAt, &assignment.UpdatedAt,
			&departmentName, &yearLevelName,
		)
		if err != nil {
			continue
		}

		if classification != nil {
			c := models.StudentType(*classification)
			assignment.Classification = &c
		}
		if departmentName != nil && assignment.DepartmentID != nil {
			assignment.Department = &models.Department{ID: *assignment.DepartmentID, Name: *departmentName}
		}
		if yearLevelName != nil && assignment.YearLevelID != nil {
			assignment.YearLevel = &models.YearLevel{ID: *assignment.YearLevelID, Name: *yearLevelName}
		}

		assignments = append(assignments, assignment)
	}

	if assignments == nil {
		assignments = []*models.FeeItemAssignment{}
	}

	return assignments, nil
}

// DeleteFeeItemAssignment soft deletes an assignment rule.
func DeleteFeeItemAssignment(db *sql.DB, assignmentID string) error {
	query := `UPDATE fee_item_assignments SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1`

	result, err := db.Exec(query, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete fee assignment: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("fee assignment not found")
	}

	return nil
}

// GetFeeStats returns high-level collection figures for the accounting page.
func GetFeeStats(db *sql.DB, schoolYear string) (map[string]interface{}, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM fee_items WHERE school_year = $1 AND deleted_at IS NULL) as total_items,
			(SELECT COUNT(*) FROM fee_items WHERE school_year = $1 AND is_active = true AND deleted_at IS NULL) as active_items,
			(SELECT COALESCE(SUM(p.amount), 0) FROM student_payments p
			 INNER JOIN student_fees sf ON p.student_fee_id = sf.id
			 WHERE sf.school_year = $1 AND p.deleted_at IS NULL) as ledger_collected,
			(SELECT COALESCE(SUM(amount), 0) FROM online_transactions
			 WHERE school_year = $1 AND status = 'verified' AND deleted_at IS NULL) as online_collected,
			(SELECT COUNT(*) FROM online_transactions
			 WHERE school_year = $1 AND status = 'pending' AND deleted_at IS NULL) as pending_transactions,
			(SELECT COUNT(*) FROM promissory_notes
			 WHERE school_year = $1 AND status = 'pending' AND deleted_at IS NULL) as pending_promissory
	`

	var totalItems, activeItems, pendingTransactions, pendingPromissory int
	var ledgerCollected, onlineCollected float64
	err := db.QueryRow(query, schoolYear).Scan(
		&totalItems, &activeItems, &ledgerCollected, &onlineCollected,
		&pendingTransactions, &pendingPromissory,
	)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_items":          totalItems,
		"active_items":         activeItems,
		"total_collected":      ledgerCollected + onlineCollected,
		"ledger_collected":     ledgerCollected,
		"online_collected":     onlineCollected,
		"pending_transactions": pendingTransactions,
		"pending_promissory":   pendingPromissory,
	}, nil
}
