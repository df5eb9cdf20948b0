package models

import "time"

// Announcement is a school-wide notice with a visibility window. Listings
// for non-admin roles only return rows whose window covers the current time.
type Announcement struct {
	ID        string               `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Title     string               `json:"title" gorm:"not null" validate:"required"`
	Body      string               `json:"body" gorm:"not null;type:text" validate:"required"`
	Audience  AnnouncementAudience `json:"audience" gorm:"not null;default:'all';type:varchar(20)" validate:"required,oneof=all students parents staff"`
	PublishAt time.Time            `json:"publish_at" gorm:"not null;index"`
	ExpiresAt *time.Time           `json:"expires_at,omitempty" gorm:"index"`
	PostedBy  string               `json:"posted_by" gorm:"not null;type:uuid"`
	CreatedAt time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time           `json:"deleted_at,omitempty" gorm:"index"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:PostedBy;references:ID"`
}

// IsVisible reports whether the announcement is inside its publish window.
func (a *Announcement) IsVisible(now time.Time) bool {
	if now.Before(a.PublishAt) {
		return false
	}
	return a.ExpiresAt == nil || now.Before(*a.ExpiresAt)
}
