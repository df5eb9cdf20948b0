package models

import "time"

// Parent represents a parent or guardian account linked to one or more
// students. Parents log in through the same users table; UserID links the
// portal account when one exists.
type Parent struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID    *string    `json:"user_id,omitempty" gorm:"index;type:uuid"`
	FirstName string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string     `json:"last_name" gorm:"not null" validate:"required"`
	Phone     *string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Email     *string    `json:"email,omitempty" gorm:"index"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	User     *User      `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Students []*Student `json:"students,omitempty" gorm:"many2many:student_parents;"`
}

// StudentParent links a student to a parent/guardian.
type StudentParent struct {
	ID           string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID    string           `json:"student_id" gorm:"not null;index;type:uuid"`
	ParentID     string           `json:"parent_id" gorm:"not null;index;type:uuid"`
	Relationship RelationshipType `json:"relationship" gorm:"type:varchar(20)"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Parent  *Parent  `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
}
