package models

import "time"

// FeeItem is a priced catalog line for a school year. Scope "all" applies to
// every student; "scoped" items reach students through assignment rules.
// Deactivation is a soft flag; items are never auto-deleted.
type FeeItem struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name       string     `json:"name" gorm:"not null" validate:"required"`
	Price      float64    `json:"price" gorm:"not null;type:numeric(12,2)" validate:"required,gt=0"`
	SchoolYear string     `json:"school_year" gorm:"not null;index" validate:"required"`
	Scope      FeeScope   `json:"scope" gorm:"not null;default:'scoped';type:varchar(10)" validate:"required,oneof=all scoped"`
	IsActive   bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Assignments []*FeeItemAssignment `json:"assignments,omitempty" gorm:"foreignKey:FeeItemID;references:ID"`
}
