package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// ErrBookUnavailable is returned when a borrow loses the race for the last
// available copy.
var ErrBookUnavailable = errors.New("no available copies")

// CreateBook inserts a catalog entry with all copies available.
func CreateBook(db *sql.DB, book *models.Book) error {
	query := `INSERT INTO books (title, author, isbn, category, total_quantity, available_quantity, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		book.Title, book.Author, book.ISBN, book.Category, book.TotalQuantity,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create book: %v", err)
	}

	book.AvailableQuantity = book.TotalQuantity
	book.IsActive = true
	return nil
}

// GetBooks lists the catalog, optionally filtered by a title/author/ISBN
// search term.
func GetBooks(db *sql.DB, search string) ([]*models.Book, error) {
	query := `SELECT id, title, author, isbn, category, total_quantity, available_quantity, is_active, created_at, updated_at
			  FROM books
			  WHERE deleted_at IS NULL`
	args := []interface{}{}

	if search != "" {
		query += ` AND (title ILIKE $1 OR author ILIKE $1 OR isbn ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY title ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return []*models.Book{}, err
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		b := &models.Book{}
		err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Category,
			&b.TotalQuantity, &b.AvailableQuantity, &b.IsActive,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			continue
		}
		books = append(books, b)
	}

	if books == nil {
		books = []*models.Book{}
	}

	return books, nil
}

// GetBookByID fetches one catalog entry.
func GetBookByID(db *sql.DB, bookID string) (*models.Book, error) {
	b := &models.Book{}
	query := `SELECT id, title, author, isbn, category, total_quantity, available_quantity, is_active, created_at, updated_at
			  FROM books
			  WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, bookID).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Category,
		&b.TotalQuantity, &b.AvailableQuantity, &b.IsActive,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateBook updates catalog fields, adjusting available copies by the
// change in total so outstanding borrows are preserved.
func UpdateBook(db *sql.DB, book *models.Book) error {
	query := `UPDATE books
			  SET title = $1, author = $2, isbn = $3, category = $4,
				  available_quantity = available_quantity + ($5 - total_quantity),
				  total_quantity = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL
				AND available_quantity + ($5 - total_quantity) >= 0`

	result, err := db.Exec(query,
		book.Title, book.Author, book.ISBN, book.Category,
		book.TotalQuantity, book.IsActive, book.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fmt.Errorf("book not found or total below borrowed copies")
	}

	return nil
}

// BorrowBook checks out one copy. The decrement is conditional on a copy
// being available so the last copy can never be lent twice.
func BorrowBook(db *sql.DB, bookID, studentID, issuedBy string, dueDate time.Time) (*models.BorrowRecord, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE books
							SET available_quantity = available_quantity - 1, updated_at = NOW()
							WHERE id = $1 AND available_quantity > 0 AND is_active = true AND deleted_at IS NULL`,
		bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve copy: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrBookUnavailable
	}

	record := &models.BorrowRecord{
		BookID:    bookID,
		StudentID: studentID,
		DueDate:   dueDate,
		IssuedBy:  issuedBy,
	}

	err = tx.QueryRow(`INSERT INTO borrow_records (book_id, student_id, borrowed_at, due_date, issued_by, created_at, updated_at)
					   VALUES ($1, $2, NOW(), $3, $4, NOW(), NOW())
					   RETURNING id, borrowed_at, created_at, updated_at`,
		bookID, studentID, dueDate, issuedBy,
	).Scan(&record.ID, &record.BorrowedAt, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create borrow record: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return record, nil
}

// ReturnBook closes an open borrow record and restocks the copy.
func ReturnBook(db *sql.DB, recordID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bookID string
	err = tx.QueryRow(`UPDATE borrow_records
					   SET returned_at = NOW(), updated_at = NOW()
					   WHERE id = $1 AND returned_at IS NULL
					   RETURNING book_id`,
		recordID).Scan(&bookID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("open borrow record not found")
	}
	if err != nil {
		return fmt.Errorf("failed to close borrow record: %v", err)
	}

	_, err = tx.Exec(`UPDATE books
					  SET available_quantity = available_quantity + 1, updated_at = NOW()
					  WHERE id = $1 AND available_quantity < total_quantity`,
		bookID)
	if err != nil {
		return fmt.Errorf("failed to restock copy: %v", err)
	}

	return tx.Commit()
}

// GetBorrowRecords lists checkouts with book and student details.
// overdueOnly restricts to unreturned records past their due date.
func GetBorrowRecords(db *sql.DB, overdueOnly bool) ([]*models.BorrowRecord, error) {
	query := `SELECT br.id, br.book_id, br.student_id, br.borrowed_at, br.due_date, br.returned_at, br.issued_by,
			  br.created_at, br.updated_at,
			  b.title, b.author,
			  s.first_name, s.last_name, s.student_no
			  FROM borrow_records br
			  INNER JOIN books b ON br.book_id = b.id
			  INNER JOIN students s ON br.student_id = s.id`
	if overdueOnly {
		query += ` WHERE br.returned_at IS NULL AND br.due_date < NOW()`
	}
	query += " ORDER BY br.borrowed_at DESC"

	rows, err := db.Query(query)
	if err != nil {
		return []*models.BorrowRecord{}, err
	}
	defer rows.Close()

	var records []*models.BorrowRecord
	for rows.Next() {
		r := &models.BorrowRecord{}
		var title, author string
		var firstName, lastName, studentNo string

		err := rows.Scan(
			&r.ID, &r.BookID, &r.StudentID, &r.BorrowedAt, &r.DueDate, &r.ReturnedAt, &r.IssuedBy,
			&r.CreatedAt, &r.UpdatedAt,
			&title, &author,
			&firstName, &lastName, &studentNo,
		)
		if err != nil {
			continue
		}

		r.Book = &models.Book{ID: r.BookID, Title: title, Author: author}
		r.Student = &models.Student{
			ID:        r.StudentID,
			StudentNo: studentNo,
			FirstName: firstName,
			LastName:  lastName,
		}
		records = append(records, r)
	}

	if records == nil {
		records = []*models.BorrowRecord{}
	}

	return records, nil
}

// GetBorrowRecordsForStudent lists one student's checkouts, open ones first.
func GetBorrowRecordsForStudent(db *sql.DB, studentID string) ([]*models.BorrowRecord, error) {
	query := `SELECT br.id, br.book_id, br.student_id, br.borrowed_at, br.due_date, br.returned_at, br.issued_by,
			  br.created_at, br.updated_at, b.title, b.author
			  FROM borrow_records br
			  INNER JOIN books b ON br.book_id = b.id
			  WHERE br.student_id = $1
			  ORDER BY br.returned_at IS NULL DESC, br.borrowed_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return []*models.BorrowRecord{}, err
	}
	defer rows.Close()

	var records []*models.BorrowRecord
	for rows.Next() {
		r := &models.BorrowRecord{}
		var title, author string

		err := rows.Scan(
			&r.ID, &r.BookID, &r.StudentID, &r.BorrowedAt, &r.DueDate, &r.ReturnedAt, &r.IssuedBy,
			&r.CreatedAt, &r.UpdatedAt, &title, &author,
		)
		if err != nil {
			continue
		}

		r.Book = &models.Book{ID: r.BookID, Title: title, Author: author}
		records = append(records, r)
	}

	if records == nil {
		records = []*models.BorrowRecord{}
	}

	return records, nil
}
