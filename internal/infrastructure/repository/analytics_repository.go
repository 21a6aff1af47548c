package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	domainRepo "github.com/mkamau/dukahub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, userID uuid.UUID, days int) ([]domainRepo.DailyRevenueResult, error) {
	results := make([]domainRepo.DailyRevenueResult, 0, days)
	now := time.Now()

	// One bucket per day over the window, zero-filled where no orders exist
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row domainRepo.DailyRevenueResult
		err := r.db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(total), 0) as revenue,
				COALESCE(SUM(profit), 0) as profit,
				COUNT(id) as orders
			FROM orders
			WHERE user_id = ? AND status = ? AND deleted_at IS NULL
			AND order_date >= ? AND order_date < ?
		`, userID, enum.OrderStatusCompleted, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		row.Date = startOfDay
		results = append(results, row)
	}

	return results, nil
}

func (r *analyticsRepository) GetRevenueTotals(ctx context.Context, userID uuid.UUID) (*domainRepo.RevenueTotals, error) {
	var totals domainRepo.RevenueTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total), 0) as revenue,
			COALESCE(SUM(profit), 0) as profit,
			COUNT(id) as orders
		FROM orders
		WHERE user_id = ? AND status = ? AND deleted_at IS NULL
	`, userID, enum.OrderStatusCompleted).Scan(&totals).Error

	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, userID uuid.UUID) (*domainRepo.RevenueTotals, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totals domainRepo.RevenueTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total), 0) as revenue,
			COALESCE(SUM(profit), 0) as profit,
			COUNT(id) as orders
		FROM orders
		WHERE user_id = ? AND status = ? AND deleted_at IS NULL
		AND order_date >= ?
	`, userID, enum.OrderStatusCompleted, startOfMonth).Scan(&totals).Error

	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *analyticsRepository) GetExpenseTotal(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	var total int64

	query := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = ? AND deleted_at IS NULL
		AND (? OR spent_at >= ?)
		AND (? OR spent_at <= ?)
	`, userID, from.IsZero(), from, to.IsZero(), to)

	err := query.Scan(&total).Error
	return total, err
}
