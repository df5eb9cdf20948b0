package models

import "time"

// FeeItemAssignment scopes a fee item to a classification, department and/or
// year level for a school year. Every criterion is optional: an unset
// criterion is ignored, a set criterion must equal the student's value, and
// the rule matches when any set criterion matches (OR across criteria).
type FeeItemAssignment struct {
	ID             string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FeeItemID      string       `json:"fee_item_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolYear     string       `json:"school_year" gorm:"not null;index" validate:"required"`
	Classification *StudentType `json:"classification,omitempty" gorm:"index;type:varchar(20)" validate:"omitempty,oneof=new transferee returnee"`
	DepartmentID   *string      `json:"department_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	YearLevelID    *string      `json:"year_level_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive       bool         `json:"is_active" gorm:"default:true;index"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time   `json:"deleted_at,omitempty" gorm:"index"`

	FeeItem    *FeeItem    `json:"fee_item,omitempty" gorm:"foreignKey:FeeItemID;references:ID"`
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	YearLevel  *YearLevel  `json:"year_level,omitempty" gorm:"foreignKey:YearLevelID;references:ID"`
}
