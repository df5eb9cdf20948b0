package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/services"
	"github.com/shopspring/decimal"
)

// GetDashboardStats builds the admin dashboard figures for a school year.
// The collection rate walks every active student through the balance
// pipeline; at school volumes this stays well inside a page load.
func GetDashboardStats(db *sql.DB, schoolYear string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		StudentsByType:   map[string]int{},
		RecentActivities: []models.Activity{},
	}

	// Student counts
	rows, err := db.Query(`SELECT student_type, COUNT(*) FROM students
						   WHERE is_active = true AND deleted_at IS NULL
						   GROUP BY student_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %v", err)
	}
	for rows.Next() {
		var studentType string
		var count int
		if err := rows.Scan(&studentType, &count); err != nil {
			continue
		}
		stats.StudentsByType[studentType] = count
		stats.TotalStudents += count
	}
	rows.Close()

	// Collections: ledger payments plus verified online transactions
	err = db.QueryRow(`SELECT
			COALESCE((SELECT SUM(p.amount) FROM student_payments p
					  INNER JOIN student_fees sf ON p.student_fee_id = sf.id
					  WHERE sf.school_year = $1 AND p.deleted_at IS NULL), 0)
			+ COALESCE((SELECT SUM(t.amount) FROM online_transactions t
						WHERE t.school_year = $1 AND t.status = 'verified' AND t.deleted_at IS NULL), 0)`,
		schoolYear).Scan(&stats.TotalCollected)
	if err != nil {
		return nil, fmt.Errorf("failed to sum collections: %v", err)
	}

	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Format("2006-01-02")
	err = db.QueryRow(`SELECT
			COALESCE((SELECT SUM(p.amount) FROM student_payments p
					  INNER JOIN student_fees sf ON p.student_fee_id = sf.id
					  WHERE sf.school_year = $1 AND p.paid_at >= $2 AND p.deleted_at IS NULL), 0)
			+ COALESCE((SELECT SUM(t.amount) FROM online_transactions t
						WHERE t.school_year = $1 AND t.status = 'verified'
						  AND t.verified_at >= $2 AND t.deleted_at IS NULL), 0)`,
		schoolYear, monthStart).Scan(&stats.CollectedThisMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to sum month collections: %v", err)
	}

	// Pending queues
	db.QueryRow(`SELECT COUNT(*) FROM online_transactions
				 WHERE school_year = $1 AND status = 'pending' AND deleted_at IS NULL`,
		schoolYear).Scan(&stats.PendingTransactions)
	db.QueryRow(`SELECT COUNT(*) FROM promissory_notes
				 WHERE school_year = $1 AND status = 'pending' AND deleted_at IS NULL`,
		schoolYear).Scan(&stats.PendingPromissory)
	db.QueryRow(`SELECT COUNT(*) FROM borrow_records WHERE returned_at IS NULL`).Scan(&stats.BorrowedBooks)

	rate, reqRate, err := computeCollectionAndRequirementRates(db, schoolYear)
	if err != nil {
		return nil, err
	}
	stats.FeeCollectionRate = rate
	stats.AvgRequirementRate = reqRate

	activities, err := getRecentActivities(db, schoolYear)
	if err == nil {
		stats.RecentActivities = activities
	}

	return stats, nil
}

// computeCollectionAndRequirementRates runs the per-student balance and
// requirement pipelines over every active student and averages the results.
func computeCollectionAndRequirementRates(db *sql.DB, schoolYear string) (float64, float64, error) {
	rows, err := db.Query(`SELECT id FROM students WHERE is_active = true AND deleted_at IS NULL`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list students: %v", err)
	}
	defer rows.Close()

	var studentIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		studentIDs = append(studentIDs, id)
	}

	if len(studentIDs) == 0 {
		return 0, 0, nil
	}

	totalFees := decimal.Zero
	totalSettled := decimal.Zero
	var percentageSum int
	var percentageCount int

	for _, studentID := range studentIDs {
		summary, err := GetStudentBalanceSummary(db, studentID, schoolYear)
		if err != nil {
			continue
		}
		fees := decimal.NewFromFloat(summary.TotalFees)
		balance := decimal.NewFromFloat(summary.Balance)
		totalFees = totalFees.Add(fees)
		totalSettled = totalSettled.Add(fees.Sub(balance))

		reqs, err := GetStudentRequirements(db, studentID)
		if err != nil {
			continue
		}
		completion := services.ComputeCompletion(reqs)
		if completion.Total > 0 {
			percentageSum += completion.Percentage
			percentageCount++
		}
	}

	var collectionRate float64
	if totalFees.IsPositive() {
		rate, _ := totalSettled.Div(totalFees).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		collectionRate = rate
	}

	var requirementRate float64
	if percentageCount > 0 {
		requirementRate = float64(percentageSum) / float64(percentageCount)
	}

	return collectionRate, requirementRate, nil
}

func getRecentActivities(db *sql.DB, schoolYear string) ([]models.Activity, error) {
	query := `SELECT 'payment', s.first_name || ' ' || s.last_name, p.amount::text, p.paid_at
			  FROM student_payments p
			  INNER JOIN student_fees sf ON p.student_fee_id = sf.id
			  INNER JOIN students s ON sf.student_id = s.id
			  WHERE sf.school_year = $1 AND p.deleted_at IS NULL
			UNION ALL
			  SELECT 'online_transaction', s.first_name || ' ' || s.last_name, t.amount::text, t.created_at
			  FROM online_transactions t
			  INNER JOIN students s ON t.student_id = s.id
			  WHERE t.school_year = $1 AND t.deleted_at IS NULL
			UNION ALL
			  SELECT 'borrow', s.first_name || ' ' || s.last_name, b.title, br.borrowed_at
			  FROM borrow_records br
			  INNER JOIN books b ON br.book_id = b.id
			  INNER JOIN students s ON br.student_id = s.id
			ORDER BY 4 DESC
			LIMIT 10`

	rows, err := db.Query(query, schoolYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var activityType, who, detail string
		var at time.Time
		if err := rows.Scan(&activityType, &who, &detail, &at); err != nil {
			continue
		}

		activity := models.Activity{Type: activityType, RawTime: at, TimeAgo: formatTimeAgo(at)}
		switch activityType {
		case "payment":
			activity.Title = "Payment received"
			activity.Description = fmt.Sprintf("%s paid %s", who, detail)
			activity.Icon = "cash"
			activity.Color = "green"
		case "online_transaction":
			activity.Title = "Online payment submitted"
			activity.Description = fmt.Sprintf("%s submitted %s", who, detail)
			activity.Icon = "upload"
			activity.Color = "blue"
		case "borrow":
			activity.Title = "Book borrowed"
			activity.Description = fmt.Sprintf("%s borrowed %s", who, detail)
			activity.Icon = "book"
			activity.Color = "purple"
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

func formatTimeAgo(t time.Time) string {
	elapsed := time.Since(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}
