package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyRevenueResult represents revenue and profit for a single day.
// Amounts are in cents.
type DailyRevenueResult struct {
	Date    time.Time
	Revenue int64
	Profit  int64
	Orders  int
}

// RevenueTotals represents revenue and profit over a window, in cents.
type RevenueTotals struct {
	Revenue int64
	Profit  int64
	Orders  int
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetDailyRevenue returns per-day revenue for the last N days,
	// completed orders only, oldest day first.
	GetDailyRevenue(ctx context.Context, userID uuid.UUID, days int) ([]DailyRevenueResult, error)

	// GetRevenueTotals returns lifetime revenue from completed orders
	GetRevenueTotals(ctx context.Context, userID uuid.UUID) (*RevenueTotals, error)

	// GetMonthlyRevenue returns revenue for the current calendar month
	GetMonthlyRevenue(ctx context.Context, userID uuid.UUID) (*RevenueTotals, error)

	// GetExpenseTotal returns total expenses in cents for the current month
	GetExpenseTotal(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)
}
