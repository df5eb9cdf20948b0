package database

import (
	"database/sql"
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CreateRequirement inserts a catalog requirement.
func CreateRequirement(db *sql.DB, requirement *models.Requirement) error {
	query := `INSERT INTO requirements (name, description, applies_to_new, applies_to_transferee, applies_to_returnee, deadline, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		requirement.Name, requirement.Description,
		requirement.AppliesToNew, requirement.AppliesToTransfer, requirement.AppliesToReturnee,
		requirement.Deadline,
	).Scan(&requirement.ID, &requirement.CreatedAt, &requirement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create requirement: %v", err)
	}

	requirement.IsActive = true
	return nil
}

// GetRequirements lists catalog requirements, active ones first.
func GetRequirements(db *sql.DB, includeInactive bool) ([]*models.Requirement, error) {
	query := `SELECT id, name, description, applies_to_new, applies_to_transferee, applies_to_returnee, deadline, is_active, created_at, updated_at
			  FROM requirements
			  WHERE deleted_at IS NULL`
	if !includeInactive {
		query += " AND is_active = true"
	}
	query += " ORDER BY is_active DESC, name ASC"

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Requirement{}, err
	}
	defer rows.Close()

	var requirements []*models.Requirement
	for rows.Next() {
		r := &models.Requirement{}
		err := rows.Scan(
			&r.ID, &r.Name, &r.Description,
			&r.AppliesToNew, &r.AppliesToTransfer, &r.AppliesToReturnee,
			&r.Deadline, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			continue
		}
		requirements = append(requirements, r)
	}

	if requirements == nil {
		requirements = []*models.Requirement{}
	}

	return requirements, nil
}

// GetRequirementByID fetches one catalog requirement.
func GetRequirementByID(db *sql.DB, requirementID string) (*models.Requirement, error) {
	r := &models.Requirement{}
	query := `SELECT id, name, description, applies_to_new, applies_to_transferee, applies_to_returnee, deadline, is_active, created_at, updated_at
			  FROM requirements
			  WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, requirementID).Scan(
		&r.ID, &r.Name, &r.Description,
		&r.AppliesToNew, &r.AppliesToTransfer, &r.AppliesToReturnee,
		&r.Deadline, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// UpdateRequirement updates catalog fields. Applicability changes do not
// retroactively unassign students.
func UpdateRequirement(db *sql.DB, requirement *models.Requirement) error {
	query := `UPDATE requirements
			  SET name = $1, description = $2, applies_to_new = $3, applies_to_transferee = $4,
				  applies_to_returnee = $5, deadline = $6, is_active = $7, updated_at = NOW()
			  WHERE id = $8 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		requirement.Name, requirement.Description,
		requirement.AppliesToNew, requirement.AppliesToTransfer, requirement.AppliesToReturnee,
		requirement.Deadline, requirement.IsActive, requirement.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update requirement: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("requirement not found")
	}

	return nil
}

// GetStudentRequirements lists a student's tracked requirements with catalog
// names joined in.
func GetStudentRequirements(db *sql.DB, studentID string) ([]*models.StudentRequirement, error) {
	query := `SELECT sr.id, sr.student_id, sr.requirement_id, sr.status, sr.file_path, sr.remarks,
			  sr.submitted_at, sr.reviewed_at, sr.created_at, sr.updated_at,
			  r.name, r.description, r.deadline
			  FROM student_requirements sr
			  INNER JOIN requirements r ON sr.requirement_id = r.id
			  WHERE sr.student_id = $1 AND sr.deleted_at IS NULL
			  ORDER BY sr.status ASC, r.name ASC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return []*models.StudentRequirement{}, err
	}
	defer rows.Close()

	var requirements []*models.StudentRequirement
	for rows.Next() {
		sr := &models.StudentRequirement{}
		var status string
		var reqName string
		var reqDescription *string
		var reqDeadline sql.NullTime

		err := rows.Scan(
			&sr.ID, &sr.StudentID, &sr.RequirementID, &status, &sr.FilePath, &sr.Remarks,
			&sr.SubmittedAt, &sr.ReviewedAt, &sr.CreatedAt, &sr.UpdatedAt,
			&reqName, &reqDescription, &reqDeadline,
		)
		if err != nil {
			continue
		}

		sr.Status = models.RequirementStatus(status)
		sr.Requirement = &models.Requirement{
			ID:          sr.RequirementID,
			Name:        reqName,
			Description: reqDescription,
		}
		if reqDeadline.Valid {
			deadline := reqDeadline.Time
			sr.Requirement.Deadline = &deadline
		}
		requirements = append(requirements, sr)
	}

	if requirements == nil {
		requirements = []*models.StudentRequirement{}
	}

	return requirements, nil
}

// SubmitStudentRequirement records a submission against a tracked row and
// moves it to submitted.
func SubmitStudentRequirement(db *sql.DB, studentRequirementID string, filePath *string) error {
	query := `UPDATE student_requirements
			  SET status = 'submitted', file_path = $1, submitted_at = NOW(), updated_at = NOW()
			  WHERE id = $2 AND status IN ('pending', 'rejected', 'overdue') AND deleted_at IS NULL`

	result, err := db.Exec(query, filePath, studentRequirementID)
	if err != nil {
		return fmt.Errorf("failed to submit requirement: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("student requirement not found or already submitted")
	}

	return nil
}

// ReviewStudentRequirement moves a submitted row to approved or rejected.
func ReviewStudentRequirement(db *sql.DB, studentRequirementID string, status models.RequirementStatus, remarks *string) error {
	query := `UPDATE student_requirements
			  SET status = $1, remarks = $2, reviewed_at = NOW(), updated_at = NOW()
			  WHERE id = $3 AND deleted_at IS NULL`

	result, err := db.Exec(query, string(status), remarks, studentRequirementID)
	if err != nil {
		return fmt.Errorf("failed to review requirement: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("student requirement not found")
	}

	return nil
}

// AssignRequirementsToStudent gives a newly enrolled student every active
// requirement that applies to their classification. Used at enrollment time;
// the per-requirement direction is services.AssignRequirementToExistingStudents.
func AssignRequirementsToStudent(db *sql.DB, studentID string, studentType models.StudentType) (int, error) {
	var flag string
	switch studentType {
	case models.NewEnrollee:
		flag = "applies_to_new"
	case models.Transferee:
		flag = "applies_to_transferee"
	case models.Returnee:
		flag = "applies_to_returnee"
	default:
		return 0, fmt.Errorf("unknown student type: %s", studentType)
	}

	query := fmt.Sprintf(`INSERT INTO student_requirements (student_id, requirement_id, status, created_at, updated_at)
			  SELECT $1, r.id, 'pending', NOW(), NOW()
			  FROM requirements r
			  WHERE r.%s = true AND r.is_active = true AND r.deleted_at IS NULL
				AND NOT EXISTS (
					SELECT 1 FROM student_requirements sr
					WHERE sr.student_id = $1 AND sr.requirement_id = r.id AND sr.deleted_at IS NULL
				)`, flag)

	result, err := db.Exec(query, studentID)
	if err != nil {
		return 0, fmt.Errorf("failed to assign requirements: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}

	return int(rowsAffected), nil
}
