package database

import (
	"database/sql"
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CreateGrant inserts a discount program.
func CreateGrant(db *sql.DB, grant *models.Grant) error {
	query := `INSERT INTO grants (name, description, is_active, created_at, updated_at)
			  VALUES ($1, $2, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, grant.Name, grant.Description).Scan(
		&grant.ID, &grant.CreatedAt, &grant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create grant: %v", err)
	}

	grant.IsActive = true
	return nil
}

// GetGrants lists discount programs with recipient counts.
func GetGrants(db *sql.DB) ([]*models.Grant, error) {
	query := `SELECT g.id, g.name, g.description, g.is_active, g.created_at, g.updated_at
			  FROM grants g
			  WHERE g.deleted_at IS NULL
			  ORDER BY g.name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Grant{}, err
	}
	defer rows.Close()

	var grants []*models.Grant
	for rows.Next() {
		g := &models.Grant{}
		err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			continue
		}
		grants = append(grants, g)
	}

	if grants == nil {
		grants = []*models.Grant{}
	}

	return grants, nil
}

// GetGrantByID fetches one grant with its recipients for a school year.
func GetGrantByID(db *sql.DB, grantID, schoolYear string) (*models.Grant, error) {
	g := &models.Grant{}
	err := db.QueryRow(`SELECT id, name, description, is_active, created_at, updated_at
						FROM grants WHERE id = $1 AND deleted_at IS NULL`, grantID).Scan(
		&g.ID, &g.Name, &g.Description, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT r.id, r.grant_id, r.student_id, r.school_year, r.discount_amount, r.status,
						   r.created_at, r.updated_at,
						   s.first_name, s.last_name, s.student_no
						   FROM grant_recipients r
						   INNER JOIN students s ON r.student_id = s.id
						   WHERE r.grant_id = $1 AND r.school_year = $2 AND r.deleted_at IS NULL
						   ORDER BY s.last_name ASC`, grantID, schoolYear)
	if err != nil {
		return g, nil
	}
	defer rows.Close()

	for rows.Next() {
		r := &models.GrantRecipient{}
		var status string
		var firstName, lastName, studentNo string

		err := rows.Scan(
			&r.ID, &r.GrantID, &r.StudentID, &r.SchoolYear, &r.DiscountAmount, &status,
			&r.CreatedAt, &r.UpdatedAt,
			&firstName, &lastName, &studentNo,
		)
		if err != nil {
			continue
		}

		r.Status = models.GrantStatus(status)
		r.Student = &models.Student{
			ID:        r.StudentID,
			StudentNo: studentNo,
			FirstName: firstName,
			LastName:  lastName,
		}
		g.Recipients = append(g.Recipients, r)
	}

	return g, nil
}

// UpdateGrant updates a grant's name, description and active flag.
func UpdateGrant(db *sql.DB, grant *models.Grant) error {
	result, err := db.Exec(`UPDATE grants SET name = $1, description = $2, is_active = $3, updated_at = NOW()
							WHERE id = $4 AND deleted_at IS NULL`,
		grant.Name, grant.Description, grant.IsActive, grant.ID)
	if err != nil {
		return fmt.Errorf("failed to update grant: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("grant not found")
	}

	return nil
}

// AddGrantRecipient awards a grant to a student for a school year. A student
// holds at most one award per grant per year.
func AddGrantRecipient(db *sql.DB, recipient *models.GrantRecipient) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM grant_recipients
						WHERE grant_id = $1 AND student_id = $2 AND school_year = $3 AND deleted_at IS NULL)`,
		recipient.GrantID, recipient.StudentID, recipient.SchoolYear).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check existing award: %v", err)
	}
	if exists {
		return fmt.Errorf("student already holds this grant for %s", recipient.SchoolYear)
	}

	query := `INSERT INTO grant_recipients (grant_id, student_id, school_year, discount_amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, 'active', NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query,
		recipient.GrantID, recipient.StudentID, recipient.SchoolYear, recipient.DiscountAmount,
	).Scan(&recipient.ID, &recipient.CreatedAt, &recipient.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to add grant recipient: %v", err)
	}

	recipient.Status = models.GrantActive
	return nil
}

// UpdateGrantRecipientStatus flips an award between active, inactive and
// revoked. Inactive and revoked awards stop counting toward discounts.
func UpdateGrantRecipientStatus(db *sql.DB, recipientID string, status models.GrantStatus) error {
	result, err := db.Exec(`UPDATE grant_recipients SET status = $1, updated_at = NOW()
							WHERE id = $2 AND deleted_at IS NULL`,
		string(status), recipientID)
	if err != nil {
		return fmt.Errorf("failed to update award status: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("grant recipient not found")
	}

	return nil
}

// UpdateGrantRecipientAmount changes the discount amount of an award.
func UpdateGrantRecipientAmount(db *sql.DB, recipientID string, amount float64) error {
	result, err := db.Exec(`UPDATE grant_recipients SET discount_amount = $1, updated_at = NOW()
							WHERE id = $2 AND deleted_at IS NULL`,
		amount, recipientID)
	if err != nil {
		return fmt.Errorf("failed to update award amount: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("grant recipient not found")
	}

	return nil
}
