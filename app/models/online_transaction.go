package models

import "time"

// OnlineTransaction is a self-service payment submission by a student or
// parent. Only verified transactions count toward the paid total.
type OnlineTransaction struct {
	ID          string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID   string            `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolYear  string            `json:"school_year" gorm:"not null;index" validate:"required"`
	Amount      float64           `json:"amount" gorm:"not null;type:numeric(12,2)" validate:"required,gt=0"`
	ReferenceNo string            `json:"reference_no" gorm:"not null;index" validate:"required"`
	Channel     string            `json:"channel" gorm:"type:varchar(50)"`
	ProofPath   *string           `json:"proof_path,omitempty"`
	Status      TransactionStatus `json:"status" gorm:"not null;default:'pending';index;type:varchar(20)" validate:"required,oneof=pending verified failed refunded"`
	VerifiedBy  *string           `json:"verified_by,omitempty" gorm:"index;type:uuid"`
	VerifiedAt  *time.Time        `json:"verified_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time        `json:"deleted_at,omitempty" gorm:"index"`

	Student  *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Verifier *User    `json:"verifier,omitempty" gorm:"foreignKey:VerifiedBy;references:ID"`
}
