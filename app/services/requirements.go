package services

import (
	"database/sql"
	"fmt"
	"log"
	"math"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CompletionSummary counts a student's requirement records by status. The
// field names are part of the front-end contract.
type CompletionSummary struct {
	Total      int `json:"total"`
	Approved   int `json:"approved"`
	Submitted  int `json:"submitted"`
	Pending    int `json:"pending"`
	Rejected   int `json:"rejected"`
	Overdue    int `json:"overdue"`
	Percentage int `json:"percentage"`
}

// ComputeCompletion counts rows by status and derives the completion
// percentage. An empty set yields all-zero counts and 0% rather than a
// division by zero.
func ComputeCompletion(rows []*models.StudentRequirement) CompletionSummary {
	summary := CompletionSummary{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case models.RequirementApproved:
			summary.Approved++
		case models.RequirementSubmitted:
			summary.Submitted++
		case models.RequirementPending:
			summary.Pending++
		case models.RequirementRejected:
			summary.Rejected++
		case models.RequirementOverdue:
			summary.Overdue++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = int(math.Round(float64(summary.Approved) / float64(summary.Total) * 100))
	}
	return summary
}

// AssignRequirementToExistingStudents creates a pending StudentRequirement
// row for every active student whose classification matches one of the
// requirement's applies_to flags. The NOT EXISTS guard makes the operation
// idempotent: re-running it for the same requirement creates no duplicates.
// A requirement with no flags set assigns to nobody; callers should surface
// that as a warning rather than treat it as an error.
func AssignRequirementToExistingStudents(db *sql.DB, requirement *models.Requirement) (int, error) {
	if !requirement.HasApplicability() {
		log.Printf("Requirement %s has no applicability flags, skipping auto-assignment", requirement.ID)
		return 0, nil
	}

	var types []string
	if requirement.AppliesToNew {
		types = append(types, string(models.NewEnrollee))
	}
	if requirement.AppliesToTransfer {
		types = append(types, string(models.Transferee))
	}
	if requirement.AppliesToReturnee {
		types = append(types, string(models.Returnee))
	}

	placeholders := ""
	args := []interface{}{requirement.ID}
	for i, t := range types {
		if i > 0 {
			placeholders += ","
		}
		placeholders += fmt.Sprintf("$%d", i+2)
		args = append(args, t)
	}

	query := fmt.Sprintf(`
		INSERT INTO student_requirements (student_id, requirement_id, status, created_at, updated_at)
		SELECT s.id, $1, 'pending', NOW(), NOW()
		FROM students s
		WHERE s.is_active = true
		AND s.deleted_at IS NULL
		AND s.student_type IN (%s)
		AND NOT EXISTS (
			SELECT 1 FROM student_requirements sr
			WHERE sr.student_id = s.id
			AND sr.requirement_id = $1
			AND sr.deleted_at IS NULL
		)`, placeholders)

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to auto-assign requirement: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(rows), nil
}
