package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search       string
	Status       string
	StudentType  string
	DepartmentID string
	YearLevelID  string
	SectionID    string
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, phone, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, user.Email, user.Password, user.FirstName, user.LastName, user.Phone).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	user.IsActive = true
	return nil
}

func AssignUserRole(db *sql.DB, userID string, roleName string) error {
	query := `INSERT INTO user_roles (user_id, role_id, created_at)
			  SELECT $1, r.id, NOW()
			  FROM roles r
			  WHERE r.name = $2
			  ON CONFLICT (user_id, role_id) DO NOTHING`

	_, err := db.Exec(query, userID, roleName)
	return err
}

// CreateStudent registers a new student.
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (student_no, first_name, last_name, date_of_birth, gender, address,
			  student_type, department_id, year_level_id, section_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		student.StudentNo, student.FirstName, student.LastName,
		student.DateOfBirth, student.Gender, student.Address,
		string(student.StudentType), student.DepartmentID, student.YearLevelID, student.SectionID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %v", err)
	}

	student.IsActive = true
	return nil
}

// GetStudentByID loads a single student with department/year level/section names.
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT s.id, s.student_no, s.first_name, s.last_name, s.date_of_birth, s.gender, s.address,
			  s.student_type, s.department_id, s.year_level_id, s.section_id, s.is_active, s.created_at, s.updated_at,
			  d.name as department_name, y.name as year_level_name, sec.name as section_name
			  FROM students s
			  LEFT JOIN departments d ON s.department_id = d.id
			  LEFT JOIN year_levels y ON s.year_level_id = y.id
			  LEFT JOIN sections sec ON s.section_id = sec.id
			  WHERE s.id = $1 AND s.deleted_at IS NULL`

	student := &models.Student{}
	var gender *string
	var studentType string
	var departmentName, yearLevelName, sectionName *string

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.StudentNo, &student.FirstName, &student.LastName,
		&student.DateOfBirth, &gender, &student.Address,
		&studentType, &student.DepartmentID, &student.YearLevelID, &student.SectionID,
		&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		&departmentName, &yearLevelName, &sectionName,
	)
	if err != nil {
		return nil, err
	}

	student.StudentType = models.StudentType(studentType)
	if gender != nil {
		g := models.Gender(*gender)
		student.Gender = &g
	}
	if departmentName != nil && student.DepartmentID != nil {
		student.Department = &models.Department{ID: *student.DepartmentID, Name: *departmentName}
	}
	if yearLevelName != nil && student.YearLevelID != nil {
		student.YearLevel = &models.YearLevel{ID: *student.YearLevelID, Name: *yearLevelName}
	}
	if sectionName != nil && student.SectionID != nil {
		student.Section = &models.Section{ID: *student.SectionID, Name: *sectionName}
	}

	return student, nil
}

// UpdateStudent updates an existing student's information.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, date_of_birth = $3, gender = $4, address = $5,
			  student_type = $6, department_id = $7, year_level_id = $8, section_id = $9, updated_at = NOW()
			  WHERE id = $10 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		student.FirstName, student.LastName, student.DateOfBirth, student.Gender, student.Address,
		string(student.StudentType), student.DepartmentID, student.YearLevelID, student.SectionID,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// DeleteStudent soft deletes a student.
func DeleteStudent(db *sql.DB, studentID string) error {
	query := `UPDATE students SET is_active = false, deleted_at = NOW(), updated_at = NOW() WHERE id = $1`

	result, err := db.Exec(query, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// GetStudentsWithFiltersAndPagination searches students with filters and pagination.
func GetStudentsWithFiltersAndPagination(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	conditions, args := buildStudentConditions(filters)

	countQuery := `SELECT COUNT(s.id) FROM students s WHERE s.deleted_at IS NULL`
	if len(conditions) > 0 {
		countQuery += " AND " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return []*models.Student{}, 0, err
	}

	sortBy := "s.first_name"
	switch filters.SortBy {
	case "student_no":
		sortBy = "s.student_no"
	case "last_name":
		sortBy = "s.last_name"
	case "created_at":
		sortBy = "s.created_at"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	dataQuery := `SELECT s.id, s.student_no, s.first_name, s.last_name, s.date_of_birth, s.gender, s.address,
				  s.student_type, s.department_id, s.year_level_id, s.section_id, s.is_active, s.created_at, s.updated_at,
				  d.name as department_name, y.name as year_level_name, sec.name as section_name
				  FROM students s
				  LEFT JOIN departments d ON s.department_id = d.id
				  LEFT JOIN year_levels y ON s.year_level_id = y.id
				  LEFT JOIN sections sec ON s.section_id = sec.id
				  WHERE s.deleted_at IS NULL`
	if len(conditions) > 0 {
		dataQuery += " AND " + strings.Join(conditions, " AND ")
	}
	dataQuery += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortBy, sortOrder, len(args)+1, len(args)+2)
	args = append(args, limit, filters.Offset)

	rows, err := db.Query(dataQuery, args...)
	if err != nil {
		return []*models.Student{}, total, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var gender *string
		var studentType string
		var departmentName, yearLevelName, sectionName *string

		err := rows.Scan(
			&student.ID, &student.StudentNo, &student.FirstName, &student.LastName,
			&student.DateOfBirth, &gender, &student.Address,
			&studentType, &student.DepartmentID, &student.YearLevelID, &student.SectionID,
			&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
			&departmentName, &yearLevelName, &sectionName,
		)
		if err != nil {
			continue
		}

		student.StudentType = models.StudentType(studentType)
		if gender != nil {
			g := models.Gender(*gender)
			student.Gender = &g
		}
		if departmentName != nil && student.DepartmentID != nil {
			student.Department = &models.Department{ID: *student.DepartmentID, Name: *departmentName}
		}
		if yearLevelName != nil && student.YearLevelID != nil {
			student.YearLevel = &models.YearLevel{ID: *student.YearLevelID, Name: *yearLevelName}
		}
		if sectionName != nil && student.SectionID != nil {
			student.Section = &models.Section{ID: *student.SectionID, Name: *sectionName}
		}

		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}

	return students, total, nil
}

func buildStudentConditions(filters StudentFilters) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		searchPattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(s.first_name) LIKE $%d
			OR LOWER(s.last_name) LIKE $%d
			OR LOWER(CONCAT(s.first_name, ' ', s.last_name)) LIKE $%d
			OR LOWER(s.student_no) LIKE $%d
		)`, argIndex, argIndex, argIndex, argIndex))
		args = append(args, searchPattern)
		argIndex++
	}

	if filters.Status == "active" {
		conditions = append(conditions, "s.is_active = true")
	} else if filters.Status == "inactive" {
		conditions = append(conditions, "s.is_active = false")
	}

	if filters.StudentType != "" {
		conditions = append(conditions, fmt.Sprintf("s.student_type = $%d", argIndex))
		args = append(args, filters.StudentType)
		argIndex++
	}

	if filters.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("s.department_id = $%d", argIndex))
		args = append(args, filters.DepartmentID)
		argIndex++
	}

	if filters.YearLevelID != "" {
		conditions = append(conditions, fmt.Sprintf("s.year_level_id = $%d", argIndex))
		args = append(args, filters.YearLevelID)
		argIndex++
	}

	if filters.SectionID != "" {
		conditions = append(conditions, fmt.Sprintf("s.section_id = $%d", argIndex))
		args = append(args, filters.SectionID)
		argIndex++
	}

	return conditions, args
}

// GetStudentsStats returns headline counts for the registrar page.
func GetStudentsStats(db *sql.DB) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalStudents int
	err := db.QueryRow("SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL").Scan(&totalStudents)
	if err != nil {
		totalStudents = 0
	}
	stats["total_students"] = totalStudents

	byType := make(map[string]int)
	rows, err := db.Query(`SELECT student_type, COUNT(*) FROM students
						   WHERE is_active = true AND deleted_at IS NULL GROUP BY student_type`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var t string
			var count int
			if err := rows.Scan(&t, &count); err == nil {
				byType[t] = count
			}
		}
	}
	stats["students_by_type"] = byType

	var newThisMonth int
	err = db.QueryRow(`SELECT COUNT(*) FROM students
					   WHERE is_active = true AND deleted_at IS NULL
					   AND created_at >= date_trunc('month', CURRENT_DATE)`).Scan(&newThisMonth)
	if err != nil {
		newThisMonth = 0
	}
	stats["new_this_month"] = newThisMonth

	return stats, nil
}

// GetAllDepartments gets all active departments.
func GetAllDepartments(db *sql.DB) ([]*models.Department, error) {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM departments WHERE is_active = true ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Department{}, nil
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department := &models.Department{}
		err := rows.Scan(
			&department.ID, &department.Name, &department.Code,
			&department.IsActive, &department.CreatedAt, &department.UpdatedAt,
		)
		if err != nil {
			continue
		}
		departments = append(departments, department)
	}

	if departments == nil {
		departments = []*models.Department{}
	}

	return departments, nil
}

// GetYearLevels gets all active year levels ordered for dropdowns.
func GetYearLevels(db *sql.DB) ([]*models.YearLevel, error) {
	query := `SELECT id, name, department_id, sort_order, is_active, created_at, updated_at
			  FROM year_levels WHERE is_active = true ORDER BY sort_order, name`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.YearLevel{}, nil
	}
	defer rows.Close()

	var levels []*models.YearLevel
	for rows.Next() {
		level := &models.YearLevel{}
		err := rows.Scan(
			&level.ID, &level.Name, &level.DepartmentID, &level.SortOrder,
			&level.IsActive, &level.CreatedAt, &level.UpdatedAt,
		)
		if err != nil {
			continue
		}
		levels = append(levels, level)
	}

	if levels == nil {
		levels = []*models.YearLevel{}
	}

	return levels, nil
}

// GetSections gets all active sections with student counts.
func GetSections(db *sql.DB) ([]*models.Section, error) {
	query := `SELECT sec.id, sec.name, sec.year_level_id, sec.adviser_id, sec.is_active, sec.created_at, sec.updated_at,
			  COALESCE(s.student_count, 0) as student_count
			  FROM sections sec
			  LEFT JOIN (
				  SELECT section_id, COUNT(*) as student_count
				  FROM students
				  WHERE is_active = true AND deleted_at IS NULL
				  GROUP BY section_id
			  ) s ON sec.id = s.section_id
			  WHERE sec.is_active = true
			  ORDER BY sec.name`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Section{}, nil
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		section := &models.Section{}
		err := rows.Scan(
			&section.ID, &section.Name, &section.YearLevelID, &section.AdviserID,
			&section.IsActive, &section.CreatedAt, &section.UpdatedAt, &section.StudentCount,
		)
		if err != nil {
			continue
		}
		sections = append(sections, section)
	}

	if sections == nil {
		sections = []*models.Section{}
	}

	return sections, nil
}

// GetParentByUserID resolves the parent record behind a portal login.
func GetParentByUserID(db *sql.DB, userID string) (*models.Parent, error) {
	parent := &models.Parent{}
	query := `SELECT id, user_id, first_name, last_name, phone, email, is_active, created_at, updated_at
			  FROM parents WHERE user_id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&parent.ID, &parent.UserID, &parent.FirstName, &parent.LastName,
		&parent.Phone, &parent.Email, &parent.IsActive, &parent.CreatedAt, &parent.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return parent, nil
}

// GetStudentsForParent lists the active students linked to a parent.
func GetStudentsForParent(db *sql.DB, parentID string) ([]*models.Student, error) {
	query := `SELECT s.id, s.student_no, s.first_name, s.last_name, s.student_type,
			  s.department_id, s.year_level_id, s.section_id, s.is_active, s.created_at, s.updated_at
			  FROM students s
			  INNER JOIN student_parents sp ON s.id = sp.student_id
			  WHERE sp.parent_id = $1 AND s.is_active = true AND s.deleted_at IS NULL
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, parentID)
	if err != nil {
		return []*models.Student{}, nil
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var studentType string
		err := rows.Scan(
			&student.ID, &student.StudentNo, &student.FirstName, &student.LastName, &studentType,
			&student.DepartmentID, &student.YearLevelID, &student.SectionID,
			&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			continue
		}
		student.StudentType = models.StudentType(studentType)
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}

	return students, nil
}

// LinkStudentToParent links a student to a parent/guardian.
func LinkStudentToParent(db *sql.DB, studentID, parentID string, relationship models.RelationshipType) error {
	query := `INSERT INTO student_parents (student_id, parent_id, relationship, created_at)
			  VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (student_id, parent_id) DO NOTHING`

	_, err := db.Exec(query, studentID, parentID, string(relationship))
	return err
}

// CreateParent creates a parent record.
func CreateParent(db *sql.DB, parent *models.Parent) error {
	query := `INSERT INTO parents (user_id, first_name, last_name, phone, email, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, parent.UserID, parent.FirstName, parent.LastName, parent.Phone, parent.Email).Scan(
		&parent.ID, &parent.CreatedAt, &parent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create parent: %v", err)
	}

	parent.IsActive = true
	return nil
}
