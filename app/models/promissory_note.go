package models

import "time"

// PromissoryNote is a student's request to defer part of an outstanding
// balance. Only approved notes reduce the effective balance, and coverage is
// capped at the note amount.
type PromissoryNote struct {
	ID         string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolYear string           `json:"school_year" gorm:"not null;index" validate:"required"`
	Amount     float64          `json:"amount" gorm:"not null;type:numeric(12,2)" validate:"required,gt=0"`
	Reason     string           `json:"reason" gorm:"type:text" validate:"required"`
	DueDate    CustomTime       `json:"due_date" gorm:"not null;type:date" validate:"required"`
	Status     PromissoryStatus `json:"status" gorm:"not null;default:'pending';index;type:varchar(20)" validate:"required,oneof=pending approved declined"`
	ReviewedBy *string          `json:"reviewed_by,omitempty" gorm:"index;type:uuid"`
	ReviewedAt *time.Time       `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time       `json:"deleted_at,omitempty" gorm:"index"`

	Student  *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Reviewer *User    `json:"reviewer,omitempty" gorm:"foreignKey:ReviewedBy;references:ID"`
}
