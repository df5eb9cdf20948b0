package database

import (
	"database/sql"
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// CreateAnnouncement inserts a notice.
func CreateAnnouncement(db *sql.DB, announcement *models.Announcement) error {
	query := `INSERT INTO announcements (title, body, audience, publish_at, expires_at, posted_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		announcement.Title, announcement.Body, string(announcement.Audience),
		announcement.PublishAt, announcement.ExpiresAt, announcement.PostedBy,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %v", err)
	}

	return nil
}

// GetVisibleAnnouncements lists notices inside their publish window for the
// given audience. Audience "all" rows are always included.
func GetVisibleAnnouncements(db *sql.DB, audience models.AnnouncementAudience) ([]*models.Announcement, error) {
	query := `SELECT a.id, a.title, a.body, a.audience, a.publish_at, a.expires_at, a.posted_by,
			  a.created_at, a.updated_at, u.first_name, u.last_name
			  FROM announcements a
			  INNER JOIN users u ON a.posted_by = u.id
			  WHERE a.deleted_at IS NULL
				AND a.publish_at <= NOW()
				AND (a.expires_at IS NULL OR a.expires_at > NOW())
				AND a.audience IN ('all', $1)
			  ORDER BY a.publish_at DESC`

	return scanAnnouncements(db.Query(query, string(audience)))
}

// GetAllAnnouncements lists every notice for the admin view, including
// scheduled and expired ones.
func GetAllAnnouncements(db *sql.DB) ([]*models.Announcement, error) {
	query := `SELECT a.id, a.title, a.body, a.audience, a.publish_at, a.expires_at, a.posted_by,
			  a.created_at, a.updated_at, u.first_name, u.last_name
			  FROM announcements a
			  INNER JOIN users u ON a.posted_by = u.id
			  WHERE a.deleted_at IS NULL
			  ORDER BY a.publish_at DESC`

	return scanAnnouncements(db.Query(query))
}

func scanAnnouncements(rows *sql.Rows, err error) ([]*models.Announcement, error) {
	if err != nil {
		return []*models.Announcement{}, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a := &models.Announcement{}
		var audience, authorFirst, authorLast string

		err := rows.Scan(
			&a.ID, &a.Title, &a.Body, &audience, &a.PublishAt, &a.ExpiresAt, &a.PostedBy,
			&a.CreatedAt, &a.UpdatedAt, &authorFirst, &authorLast,
		)
		if err != nil {
			continue
		}

		a.Audience = models.AnnouncementAudience(audience)
		a.Author = &models.User{ID: a.PostedBy, FirstName: authorFirst, LastName: authorLast}
		announcements = append(announcements, a)
	}

	if announcements == nil {
		announcements = []*models.Announcement{}
	}

	return announcements, nil
}

// UpdateAnnouncement updates a notice's content and window.
func UpdateAnnouncement(db *sql.DB, announcement *models.Announcement) error {
	query := `UPDATE announcements
			  SET title = $1, body = $2, audience = $3, publish_at = $4, expires_at = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		announcement.Title, announcement.Body, string(announcement.Audience),
		announcement.PublishAt, announcement.ExpiresAt, announcement.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("announcement not found")
	}

	return nil
}

// DeleteAnnouncement soft-deletes a notice.
func DeleteAnnouncement(db *sql.DB, announcementID string) error {
	result, err := db.Exec(`UPDATE announcements SET deleted_at = NOW(), updated_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, announcementID)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("announcement not found")
	}

	return nil
}
