package database

import (
	"database/sql"
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CreateGuidanceRecord inserts a counseling/incident record as open.
func CreateGuidanceRecord(db *sql.DB, record *models.GuidanceRecord) error {
	query := `INSERT INTO guidance_records (student_id, record_type, summary, notes, status, counselor_id, recorded_at, follow_up_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, 'open', $5, NOW(), $6, NOW(), NOW())
			  RETURNING id, recorded_at, created_at, updated_at`

	err := db.QueryRow(query,
		record.StudentID, record.RecordType, record.Summary, record.Notes,
		record.CounselorID, record.FollowUpDate,
	).Scan(&record.ID, &record.RecordedAt, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create guidance record: %v", err)
	}

	record.Status = "open"
	return nil
}

// GetGuidanceRecords lists records, optionally filtered by student, type or
// status. Confidential notes are included; callers gate access by role.
func GetGuidanceRecords(db *sql.DB, studentID, recordType, status string) ([]*models.GuidanceRecord, error) {
	query := `SELECT g.id, g.student_id, g.record_type, g.summary, g.notes, g.status,
			  g.counselor_id, g.recorded_at, g.follow_up_date, g.created_at, g.updated_at,
			  s.first_name, s.last_name, s.student_no
			  FROM guidance_records g
			  INNER JOIN students s ON g.student_id = s.id
			  WHERE g.deleted_at IS NULL`
	args := []interface{}{}
	argCount := 0

	if studentID != "" {
		argCount++
		query += fmt.Sprintf(" AND g.student_id = $%d", argCount)
		args = append(args, studentID)
	}
	if recordType != "" {
		argCount++
		query += fmt.Sprintf(" AND g.record_type = $%d", argCount)
		args = append(args, recordType)
	}
	if status != "" {
		argCount++
		query += fmt.Sprintf(" AND g.status = $%d", argCount)
		args = append(args, status)
	}
	query += " ORDER BY g.recorded_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return []*models.GuidanceRecord{}, err
	}
	defer rows.Close()

	var records []*models.GuidanceRecord
	for rows.Next() {
		g := &models.GuidanceRecord{}
		var firstName, lastName, studentNo string

		err := rows.Scan(
			&g.ID, &g.StudentID, &g.RecordType, &g.Summary, &g.Notes, &g.Status,
			&g.CounselorID, &g.RecordedAt, &g.FollowUpDate, &g.CreatedAt, &g.UpdatedAt,
			&firstName, &lastName, &studentNo,
		)
		if err != nil {
			continue
		}

		g.Student = &models.Student{
			ID:        g.StudentID,
			StudentNo: studentNo,
			FirstName: firstName,
			LastName:  lastName,
		}
		records = append(records, g)
	}

	if records == nil {
		records = []*models.GuidanceRecord{}
	}

	return records, nil
}

// GetGuidanceRecordByID fetches one record.
func GetGuidanceRecordByID(db *sql.DB, recordID string) (*models.GuidanceRecord, error) {
	g := &models.GuidanceRecord{}
	query := `SELECT id, student_id, record_type, summary, notes, status, counselor_id, recorded_at, follow_up_date, created_at, updated_at
			  FROM guidance_records
			  WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, recordID).Scan(
		&g.ID, &g.StudentID, &g.RecordType, &g.Summary, &g.Notes, &g.Status,
		&g.CounselorID, &g.RecordedAt, &g.FollowUpDate, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// UpdateGuidanceRecord updates summary, notes, status and follow-up date.
func UpdateGuidanceRecord(db *sql.DB, record *models.GuidanceRecord) error {
	query := `UPDATE guidance_records
			  SET summary = $1, notes = $2, status = $3, follow_up_date = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		record.Summary, record.Notes, record.Status, record.FollowUpDate, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update guidance record: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("guidance record not found")
	}

	return nil
}

// DeleteGuidanceRecord soft-deletes a record.
func DeleteGuidanceRecord(db *sql.DB, recordID string) error {
	result, err := db.Exec(`UPDATE guidance_records SET deleted_at = NOW(), updated_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete guidance record: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("guidance record not found")
	}

	return nil
}
