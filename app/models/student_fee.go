package models

import "time"

// StudentFee is the per-student, per-school-year fee ledger entry. Cashier
// payments hang off this row.
type StudentFee struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolYear string     `json:"school_year" gorm:"not null;index" validate:"required"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Student  *Student          `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Payments []*StudentPayment `json:"payments,omitempty" gorm:"foreignKey:StudentFeeID;references:ID"`
}

// StudentPayment is a cashier-recorded payment against a student's fee
// ledger. Every recorded payment counts toward the paid total; there is no
// status filter on this table.
type StudentPayment struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentFeeID  string     `json:"student_fee_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount        float64    `json:"amount" gorm:"not null;type:numeric(12,2)" validate:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" gorm:"type:varchar(50)" validate:"required"`
	ORNumber      *string    `json:"or_number,omitempty" gorm:"index"`
	Remarks       *string    `json:"remarks,omitempty" gorm:"type:text"`
	ReceivedBy    string     `json:"received_by" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PaidAt        time.Time  `json:"paid_at" gorm:"not null;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	StudentFee *StudentFee `json:"student_fee,omitempty" gorm:"foreignKey:StudentFeeID;references:ID"`
	Cashier    *User       `json:"cashier,omitempty" gorm:"foreignKey:ReceivedBy;references:ID"`
}
