package models

import "time"

// Student represents an enrolled student. Fee eligibility is always computed
// from the classification/department/year-level fields, never stored as a
// total on the row.
type Student struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentNo    string      `json:"student_no" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName    string      `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string      `json:"last_name" gorm:"not null" validate:"required"`
	DateOfBirth  *time.Time  `json:"date_of_birth,omitempty" gorm:"type:date"`
	Gender       *Gender     `json:"gender,omitempty" gorm:"type:varchar(10)"`
	Address      *string     `json:"address,omitempty" gorm:"type:text"`
	StudentType  StudentType `json:"student_type" gorm:"not null;index;type:varchar(20)" validate:"required,oneof=new transferee returnee"`
	DepartmentID *string     `json:"department_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	YearLevelID  *string     `json:"year_level_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	SectionID    *string     `json:"section_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time  `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	YearLevel  *YearLevel  `json:"year_level,omitempty" gorm:"foreignKey:YearLevelID;references:ID"`
	Section    *Section    `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
	Parents    []*Parent   `json:"parents,omitempty" gorm:"many2many:student_parents;"`
}

// FullName returns the display name used across listings.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Department groups students and fee assignment rules (e.g. Elementary,
// Junior High School).
type Department struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// YearLevel is a grade level within a department.
type YearLevel struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	DepartmentID *string    `json:"department_id,omitempty" gorm:"index;type:uuid"`
	SortOrder    int        `json:"sort_order" gorm:"default:0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
}

// Section is a class section within a year level.
type Section struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	YearLevelID  *string    `json:"year_level_id,omitempty" gorm:"index;type:uuid"`
	AdviserID    *string    `json:"adviser_id,omitempty" gorm:"index;type:uuid"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	StudentCount int        `json:"student_count" gorm:"-"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	YearLevel *YearLevel `json:"year_level,omitempty" gorm:"foreignKey:YearLevelID;references:ID"`
	Adviser   *User      `json:"adviser,omitempty" gorm:"foreignKey:AdviserID;references:ID"`
	Students  []*Student `json:"students,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}
