package models

import "time"

// Requirement is a catalog entry the registrar tracks per student (e.g.
// birth certificate, report card). The applies_to flags drive auto-assignment
// to existing students on creation.
type Requirement struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name              string     `json:"name" gorm:"not null" validate:"required"`
	Description       *string    `json:"description,omitempty" gorm:"type:text"`
	AppliesToNew      bool       `json:"applies_to_new" gorm:"default:false"`
	AppliesToTransfer bool       `json:"applies_to_transferee" gorm:"default:false"`
	AppliesToReturnee bool       `json:"applies_to_returnee" gorm:"default:false"`
	Deadline          *time.Time `json:"deadline,omitempty" gorm:"type:date"`
	IsActive          bool       `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// AppliesTo reports whether the requirement applies to the given student
// classification.
func (r *Requirement) AppliesTo(t StudentType) bool {
	switch t {
	case NewEnrollee:
		return r.AppliesToNew
	case Transferee:
		return r.AppliesToTransfer
	case Returnee:
		return r.AppliesToReturnee
	}
	return false
}

// HasApplicability reports whether any applies_to flag is set. A requirement
// without applicability assigns to nobody.
func (r *Requirement) HasApplicability() bool {
	return r.AppliesToNew || r.AppliesToTransfer || r.AppliesToReturnee
}

// StudentRequirement tracks one requirement for one student.
type StudentRequirement struct {
	ID            string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     string            `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RequirementID string            `json:"requirement_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Status        RequirementStatus `json:"status" gorm:"not null;default:'pending';index;type:varchar(20)" validate:"required,oneof=pending submitted approved rejected overdue"`
	FilePath      *string           `json:"file_path,omitempty"`
	Remarks       *string           `json:"remarks,omitempty" gorm:"type:text"`
	SubmittedAt   *time.Time        `json:"submitted_at,omitempty"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time        `json:"deleted_at,omitempty" gorm:"index"`

	Student     *Student     `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Requirement *Requirement `json:"requirement,omitempty" gorm:"foreignKey:RequirementID;references:ID"`
}
