package models

import "time"

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	TotalStudents       int        `json:"total_students"`
	StudentsByType      map[string]int `json:"students_by_type"`
	TotalCollected      float64    `json:"total_collected"`
	CollectedThisMonth  float64    `json:"collected_this_month"`
	FeeCollectionRate   float64    `json:"fee_collection_rate"`
	PendingTransactions int        `json:"pending_transactions"`
	PendingPromissory   int        `json:"pending_promissory"`
	BorrowedBooks       int        `json:"borrowed_books"`
	AvgRequirementRate  float64    `json:"avg_requirement_rate"`
	RecentActivities    []Activity `json:"recent_activities"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeAgo     string    `json:"time_ago"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	RawTime     time.Time `json:"-"`
}
