package models

import "time"

// GuidanceRecord is a counseling/incident record kept by the guidance
// office. Notes are confidential and only returned to guidance staff.
type GuidanceRecord struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID    string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RecordType   string     `json:"record_type" gorm:"not null;type:varchar(30);index" validate:"required,oneof=counseling incident commendation home_visit"`
	Summary      string     `json:"summary" gorm:"not null" validate:"required"`
	Notes        *string    `json:"notes,omitempty" gorm:"type:text"`
	Status       string     `json:"status" gorm:"not null;default:'open';type:varchar(20)" validate:"required,oneof=open closed follow_up"`
	CounselorID  string     `json:"counselor_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RecordedAt   time.Time  `json:"recorded_at" gorm:"not null;index"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty" gorm:"type:date"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Student   *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Counselor *User    `json:"counselor,omitempty" gorm:"foreignKey:CounselorID;references:ID"`
}
