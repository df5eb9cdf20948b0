package database

import (
	"database/sql"
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/services"
)

// GetStudentScope loads the classification triple the fee resolver matches
// against.
func GetStudentScope(db *sql.DB, studentID string) (services.StudentScope, error) {
	var scope services.StudentScope
	var studentType string

	query := `SELECT student_type, department_id, year_level_id
			  FROM students WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, studentID).Scan(&studentType, &scope.DepartmentID, &scope.YearLevelID)
	if err != nil {
		return scope, err
	}

	scope.Classification = models.StudentType(studentType)
	return scope, nil
}

// GetActiveAssignmentRules loads every active assignment rule for a school
// year, already joined to an active fee item.
func GetActiveAssignmentRules(db *sql.DB, schoolYear string) ([]services.AssignmentRule, error) {
	query := `SELECT a.fee_item_id, a.classification, a.department_id, a.year_level_id
			  FROM fee_item_assignments a
			  INNER JOIN fee_items fi ON a.fee_item_id = fi.id
			  WHERE a.school_year = $1 AND a.is_active = true AND a.deleted_at IS NULL
			  AND fi.is_active = true AND fi.deleted_at IS NULL`

	rows, err := db.Query(query, schoolYear)
	if err != nil {
		return []services.AssignmentRule{}, err
	}
	defer rows.Close()

	var rules []services.AssignmentRule
	for rows.Next() {
		var rule services.AssignmentRule
		var classification *string
		if err := rows.Scan(&rule.FeeItemID, &classification, &rule.DepartmentID, &rule.YearLevelID); err != nil {
			continue
		}
		if classification != nil {
			c := models.StudentType(*classification)
			rule.Classification = &c
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// GetAllScopeFeeItemIDs lists active fee items flagged scope='all' for a
// school year.
func GetAllScopeFeeItemIDs(db *sql.DB, schoolYear string) ([]string, error) {
	query := `SELECT id FROM fee_items
			  WHERE school_year = $1 AND scope = 'all' AND is_active = true AND deleted_at IS NULL`

	rows, err := db.Query(query, schoolYear)
	if err != nil {
		return []string{}, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GetFeeItemsForYear loads the fee catalog for a school year.
func GetFeeItemsForYear(db *sql.DB, schoolYear string) ([]*models.FeeItem, error) {
	query := `SELECT id, name, price, school_year, scope, is_active, created_at, updated_at
			  FROM fee_items
			  WHERE school_year = $1 AND deleted_at IS NULL
			  ORDER BY name`

	rows, err := db.Query(query, schoolYear)
	if err != nil {
		return []*models.FeeItem{}, err
	}
	defer rows.Close()

	var items []*models.FeeItem
	for rows.Next() {
		item := &models.FeeItem{}
		var scope string
		err := rows.Scan(
			&item.ID, &item.Name, &item.Price, &item.SchoolYear, &scope,
			&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			continue
		}
		item.Scope = models.FeeScope(scope)
		items = append(items, item)
	}

	if items == nil {
		items = []*models.FeeItem{}
	}

	return items, nil
}

// GetActiveGrantsForStudent loads grant awards for the discount aggregator.
func GetActiveGrantsForStudent(db *sql.DB, studentID string) ([]*models.GrantRecipient, error) {
	query := `SELECT id, grant_id, student_id, school_year, discount_amount, status, created_at, updated_at
			  FROM grant_recipients
			  WHERE student_id = $1 AND deleted_at IS NULL`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return []*models.GrantRecipient{}, err
	}
	defer rows.Close()

	var grants []*models.GrantRecipient
	for rows.Next() {
		grant := &models.GrantRecipient{}
		var status string
		err := rows.Scan(
			&grant.ID, &grant.GrantID, &grant.StudentID, &grant.SchoolYear,
			&grant.DiscountAmount, &status, &grant.CreatedAt, &grant.UpdatedAt,
		)
		if err != nil {
			continue
		}
		grant.Status = models.GrantStatus(status)
		grants = append(grants, grant)
	}

	return grants, nil
}

// GetLedgerPaymentsForStudent loads every cashier payment reachable through
// the student's fee ledger rows. No status filter: every recorded payment
// counts.
func GetLedgerPaymentsForStudent(db *sql.DB, studentID string) ([]*models.StudentPayment, error) {
	query := `SELECT p.id, p.student_fee_id, p.amount, p.payment_method, p.or_number, p.remarks,
			  p.received_by, p.paid_at, p.created_at, p.updated_at
			  FROM student_payments p
			  INNER JOIN student_fees sf ON p.student_fee_id = sf.id
			  WHERE sf.student_id = $1 AND p.deleted_at IS NULL AND sf.deleted_at IS NULL
			  ORDER BY p.paid_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return []*models.StudentPayment{}, err
	}
	defer rows.Close()

	var payments []*models.StudentPayment
	for rows.Next() {
		p := &models.StudentPayment{}
		err := rows.Scan(
			&p.ID, &p.StudentFeeID, &p.Amount, &p.PaymentMethod, &p.ORNumber, &p.Remarks,
			&p.ReceivedBy, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			continue
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// GetOnlineTransactionsForStudent loads a student's online submissions; the
// payment aggregator filters to verified ones.
func GetOnlineTransactionsForStudent(db *sql.DB, studentID string) ([]*models.OnlineTransaction, error) {
	query := `SELECT id, student_id, school_year, amount, reference_no, channel, status,
			  verified_by, verified_at, created_at, updated_at
			  FROM online_transactions
			  WHERE student_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return []*models.OnlineTransaction{}, err
	}
	defer rows.Close()

	var transactions []*models.OnlineTransaction
	for rows.Next() {
		tx := &models.OnlineTransaction{}
		var status string
		err := rows.Scan(
			&tx.ID, &tx.StudentID, &tx.SchoolYear, &tx.Amount, &tx.ReferenceNo, &tx.Channel,
			&status, &tx.VerifiedBy, &tx.VerifiedAt, &tx.CreatedAt, &tx.UpdatedAt,
		)
		if err != nil {
			continue
		}
		tx.Status = models.TransactionStatus(status)
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// GetPromissoryNotesForStudent loads a student's promissory notes; the
// balance pipeline filters to approved ones.
func GetPromissoryNotesForStudent(db *sql.DB, studentID string) ([]*models.PromissoryNote, error) {
	query := `SELECT id, student_id, school_year, amount, reason, due_date, status,
			  reviewed_by, reviewed_at, created_at, updated_at
			  FROM promissory_notes
			  WHERE student_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return []*models.PromissoryNote{}, err
	}
	defer rows.Close()

	var notes []*models.PromissoryNote
	for rows.Next() {
		note := &models.PromissoryNote{}
		var status string
		err := rows.Scan(
			&note.ID, &note.StudentID, &note.SchoolYear, &note.Amount, &note.Reason, &note.DueDate,
			&status, &note.ReviewedBy, &note.ReviewedAt, &note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			continue
		}
		note.Status = models.PromissoryStatus(status)
		notes = append(notes, note)
	}

	return notes, nil
}

// GetStudentBalanceSummary runs the full aggregation pipeline for one
// student and school year: fee catalog resolution, discount and payment
// totals, then balance and promissory coverage. A student with no matching
// rows comes back as an all-zero, fully-paid summary rather than an error.
func GetStudentBalanceSummary(db *sql.DB, studentID, schoolYear string) (services.BalanceSummary, error) {
	scope, err := GetStudentScope(db, studentID)
	if err != nil {
		return services.BalanceSummary{}, fmt.Errorf("failed to load student: %v", err)
	}

	rules, err := GetActiveAssignmentRules(db, schoolYear)
	if err != nil {
		return services.BalanceSummary{}, err
	}
	allScopeIDs, err := GetAllScopeFeeItemIDs(db, schoolYear)
	if err != nil {
		return services.BalanceSummary{}, err
	}
	items, err := GetFeeItemsForYear(db, schoolYear)
	if err != nil {
		return services.BalanceSummary{}, err
	}

	applicable := services.ResolveApplicableFeeItems(rules, allScopeIDs, scope)
	totalFees := services.TotalFees(items, applicable)

	grants, err := GetActiveGrantsForStudent(db, studentID)
	if err != nil {
		return services.BalanceSummary{}, err
	}
	totalDiscount := services.TotalActiveDiscount(grants)

	ledger, err := GetLedgerPaymentsForStudent(db, studentID)
	if err != nil {
		return services.BalanceSummary{}, err
	}
	online, err := GetOnlineTransactionsForStudent(db, studentID)
	if err != nil {
		return services.BalanceSummary{}, err
	}
	totalPaid := services.TotalPaid(ledger, online)

	notes, err := GetPromissoryNotesForStudent(db, studentID)
	if err != nil {
		return services.BalanceSummary{}, err
	}
	promissoryTotal := services.ApprovedPromissoryTotal(notes)

	return services.BuildBalanceSummary(studentID, schoolYear, totalFees, totalDiscount, totalPaid, promissoryTotal), nil
}
