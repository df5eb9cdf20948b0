package models

import "time"

// Book is a library catalog entry with an inventory count. AvailableQuantity
// only moves through the conditional borrow/return statements so two
// concurrent borrows can never oversell the last copy.
type Book struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Title             string     `json:"title" gorm:"not null;index" validate:"required"`
	Author            string     `json:"author" gorm:"not null" validate:"required"`
	ISBN              *string    `json:"isbn,omitempty" gorm:"index"`
	Category          *string    `json:"category,omitempty" gorm:"index"`
	TotalQuantity     int        `json:"total_quantity" gorm:"not null;default:1" validate:"required,gte=1"`
	AvailableQuantity int        `json:"available_quantity" gorm:"not null;default:1" validate:"gte=0"`
	IsActive          bool       `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// BorrowRecord tracks one checkout of one copy. ReturnedAt is nil while the
// copy is out.
type BorrowRecord struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	BookID     string     `json:"book_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID  string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	BorrowedAt time.Time  `json:"borrowed_at" gorm:"not null"`
	DueDate    time.Time  `json:"due_date" gorm:"not null;index"`
	ReturnedAt *time.Time `json:"returned_at,omitempty" gorm:"index"`
	IssuedBy   string     `json:"issued_by" gorm:"not null;type:uuid"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Book    *Book    `json:"book,omitempty" gorm:"foreignKey:BookID;references:ID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// IsOverdue reports whether an unreturned copy is past its due date.
func (b *BorrowRecord) IsOverdue(now time.Time) bool {
	return b.ReturnedAt == nil && now.After(b.DueDate)
}
