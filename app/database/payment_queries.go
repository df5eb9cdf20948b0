package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CreateStudentPayment records a cashier payment in a transaction, creating
// the per-year StudentFee ledger row on first payment.
func CreateStudentPayment(db *sql.DB, studentID, schoolYear string, payment *models.StudentPayment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Find or create the student's ledger row for the year
	var studentFeeID string
	err = tx.QueryRow(`SELECT id FROM student_fees
					   WHERE student_id = $1 AND school_year = $2 AND deleted_at IS NULL`,
		studentID, schoolYear).Scan(&studentFeeID)
	if err == sql.ErrNoRows {
		err = tx.QueryRow(`INSERT INTO student_fees (student_id, school_year, created_at, updated_at)
						   VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
			studentID, schoolYear).Scan(&studentFeeID)
		if err != nil {
			return fmt.Errorf("failed to create student fee ledger: %v", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to find student fee ledger: %v", err)
	}

	// 2. Insert the payment
	query := `INSERT INTO student_payments (student_fee_id, amount, payment_method, or_number, remarks, received_by, paid_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), NOW())
			  RETURNING id, paid_at, created_at, updated_at`

	err = tx.QueryRow(query,
		studentFeeID, payment.Amount, payment.PaymentMethod,
		payment.ORNumber, payment.Remarks, payment.ReceivedBy,
	).Scan(&payment.ID, &payment.PaidAt, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}

	payment.StudentFeeID = studentFeeID
	return tx.Commit()
}

// CreateOnlineTransaction records a self-service payment submission as
// pending.
func CreateOnlineTransaction(db *sql.DB, transaction *models.OnlineTransaction) error {
	query := `INSERT INTO online_transactions (student_id, school_year, amount, reference_no, channel, proof_path, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		transaction.StudentID, transaction.SchoolYear, transaction.Amount,
		transaction.ReferenceNo, transaction.Channel, transaction.ProofPath,
	).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create online transaction: %v", err)
	}

	transaction.Status = models.TransactionPending
	return nil
}

// UpdateOnlineTransactionStatus moves a pending transaction to verified,
// failed or refunded. Only pending rows can be reviewed; a second review
// returns a not-found error instead of silently rewriting history.
func UpdateOnlineTransactionStatus(db *sql.DB, transactionID string, status models.TransactionStatus, reviewerID string) error {
	query := `UPDATE online_transactions
			  SET status = $1, verified_by = $2, verified_at = NOW(), updated_at = NOW()
			  WHERE id = $3 AND status = 'pending' AND deleted_at IS NULL`

	result, err := db.Exec(query, string(status), reviewerID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("pending transaction not found")
	}

	return nil
}

// GetOnlineTransactions lists submissions, optionally filtered by status.
func GetOnlineTransactions(db *sql.DB, schoolYear, status string) ([]*models.OnlineTransaction, error) {
	query := `SELECT t.id, t.student_id, t.school_year, t.amount, t.reference_no, t.channel, t.status,
			  t.verified_by, t.verified_at, t.created_at, t.updated_at,
			  s.first_name, s.last_name, s.student_no
			  FROM online_transactions t
			  INNER JOIN students s ON t.student_id = s.id
			  WHERE t.school_year = $1 AND t.deleted_at IS NULL`
	args := []interface{}{schoolYear}

	if status != "" {
		query += " AND t.status = $2"
		args = append(args, status)
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return []*models.OnlineTransaction{}, err
	}
	defer rows.Close()

	var transactions []*models.OnlineTransaction
	for rows.Next() {
		tx := &models.OnlineTransaction{}
		var txStatus string
		var firstName, lastName, studentNo string

		err := rows.Scan(
			&tx.ID, &tx.StudentID, &tx.SchoolYear, &tx.Amount, &tx.ReferenceNo, &tx.Channel,
			&txStatus, &tx.VerifiedBy, &tx.VerifiedAt, &tx.CreatedAt, &tx.UpdatedAt,
			&firstName, &lastName, &studentNo,
		)
		if err != nil {
			continue
		}

		tx.Status = models.TransactionStatus(txStatus)
		tx.Student = &models.Student{
			ID:        tx.StudentID,
			StudentNo: studentNo,
			FirstName: firstName,
			LastName:  lastName,
		}
		transactions = append(transactions, tx)
	}

	if transactions == nil {
		transactions = []*models.OnlineTransaction{}
	}

	return transactions, nil
}

// CreatePromissoryNote records a deferral request as pending.
func CreatePromissoryNote(db *sql.DB, note *models.PromissoryNote) error {
	query := `INSERT INTO promissory_notes (student_id, school_year, amount, reason, due_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, 'pending', NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		note.StudentID, note.SchoolYear, note.Amount, note.Reason, note.DueDate,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create promissory note: %v", err)
	}

	note.Status = models.PromissoryPending
	return nil
}

// ReviewPromissoryNote approves or declines a pending note.
func ReviewPromissoryNote(db *sql.DB, noteID string, status models.PromissoryStatus, reviewerID string) error {
	query := `UPDATE promissory_notes
			  SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
			  WHERE id = $3 AND status = 'pending' AND deleted_at IS NULL`

	result, err := db.Exec(query, string(status), reviewerID, noteID)
	if err != nil {
		return fmt.Errorf("failed to review promissory note: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("pending promissory note not found")
	}

	return nil
}

// GetPromissoryNotes lists notes for a school year, optionally by status.
func GetPromissoryNotes(db *sql.DB, schoolYear, status string) ([]*models.PromissoryNote, error) {
	query := `SELECT n.id, n.student_id, n.school_year, n.amount, n.reason, n.due_date, n.status,
			  n.reviewed_by, n.reviewed_at, n.created_at, n.updated_at,
			  s.first_name, s.last_name, s.student_no
			  FROM promissory_notes n
			  INNER JOIN students s ON n.student_id = s.id
			  WHERE n.school_year = $1 AND n.deleted_at IS NULL`
	args := []interface{}{schoolYear}

	if status != "" {
		query += " AND n.status = $2"
		args = append(args, status)
	}
	query += " ORDER BY n.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return []*models.PromissoryNote{}, err
	}
	defer rows.Close()

	var notes []*models.PromissoryNote
	for rows.Next() {
		note := &models.PromissoryNote{}
		var noteStatus string
		var firstName, lastName, studentNo string

		err := rows.Scan(
			&note.ID, &note.StudentID, &note.SchoolYear, &note.Amount, &note.Reason, &note.DueDate,
			&noteStatus, &note.ReviewedBy, &note.ReviewedAt, &note.CreatedAt, &note.UpdatedAt,
			&firstName, &lastName, &studentNo,
		)
		if err != nil {
			continue
		}

		note.Status = models.PromissoryStatus(noteStatus)
		note.Student = &models.Student{
			ID:        note.StudentID,
			StudentNo: studentNo,
			FirstName: firstName,
			LastName:  lastName,
		}
		notes = append(notes, note)
	}

	if notes == nil {
		notes = []*models.PromissoryNote{}
	}

	return notes, nil
}

// GetPaymentHistory returns a student's combined payment history for
// display: cashier payments first, then online submissions.
func GetPaymentHistory(db *sql.DB, studentID string) ([]map[string]interface{}, error) {
	history := make([]map[string]interface{}, 0)

	ledger, err := GetLedgerPaymentsForStudent(db, studentID)
	if err != nil {
		return history, err
	}
	for _, p := range ledger {
		entry := map[string]interface{}{
			"type":           "cashier",
			"amount":         p.Amount,
			"payment_method": p.PaymentMethod,
			"paid_at":        p.PaidAt.Format(time.RFC3339),
		}
		if p.ORNumber != nil {
			entry["or_number"] = *p.ORNumber
		}
		history = append(history, entry)
	}

	online, err := GetOnlineTransactionsForStudent(db, studentID)
	if err != nil {
		return history, err
	}
	for _, tx := range online {
		history = append(history, map[string]interface{}{
			"type":         "online",
			"amount":       tx.Amount,
			"reference_no": tx.ReferenceNo,
			"status":       string(tx.Status),
			"submitted_at": tx.CreatedAt.Format(time.RFC3339),
		})
	}

	return history, nil
}
