package models

import "time"

// Grant is a discount program (scholarship, sibling discount, staff
// dependent) that can be awarded to students.
type Grant struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Recipients []*GrantRecipient `json:"recipients,omitempty" gorm:"foreignKey:GrantID;references:ID"`
}

// GrantRecipient is a discount award to a single student. Only active awards
// count toward the student's discount total.
type GrantRecipient struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	GrantID        string      `json:"grant_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID      string      `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolYear     string      `json:"school_year" gorm:"not null;index" validate:"required"`
	DiscountAmount float64     `json:"discount_amount" gorm:"not null;type:numeric(12,2)" validate:"required,gt=0"`
	Status         GrantStatus `json:"status" gorm:"not null;default:'active';index;type:varchar(20)" validate:"required,oneof=active inactive revoked"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty" gorm:"index"`

	Grant   *Grant   `json:"grant,omitempty" gorm:"foreignKey:GrantID;references:ID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
