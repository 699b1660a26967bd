package models

import "time"

type MonthlyGrowth struct {
	Users   int64   `json:"users"`
	Revenue float64 `json:"revenue"`
}

type Statistics struct {
	TotalUsers        int64         `json:"total_users"`
	TotalMitras       int64         `json:"total_mitras"`
	TotalTransactions int64         `json:"total_transactions"` // Top up approved + tagihan completed
	TotalRevenue      float64       `json:"total_revenue"`
	PendingTopups     int64         `json:"pending_topups"`
	CompletedServices int64         `json:"completed_services"`
	AverageRating     float64       `json:"average_rating"`
	MonthlyGrowth     MonthlyGrowth `json:"monthly_growth"`
	GeneratedAt       time.Time     `json:"generated_at"`
}
