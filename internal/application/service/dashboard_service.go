package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/config"
	"github.com/mkamau/dukahub-api/internal/domain/report"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
)

// DashboardService aggregates the figures behind the dashboard screen
type DashboardService struct {
	itemRepo      repository.ItemRepository
	orderRepo     repository.OrderRepository
	analyticsRepo repository.AnalyticsRepository
	metrics       config.MetricsConfig
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	itemRepo repository.ItemRepository,
	orderRepo repository.OrderRepository,
	analyticsRepo repository.AnalyticsRepository,
	metrics config.MetricsConfig,
) *DashboardService {
	return &DashboardService{
		itemRepo:      itemRepo,
		orderRepo:     orderRepo,
		analyticsRepo: analyticsRepo,
		metrics:       metrics,
	}
}

// RevenuePoint represents one day on the revenue trend chart
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Orders  int     `json:"orders"`
}

// DashboardSummary represents the full dashboard payload
type DashboardSummary struct {
	Inventory       report.InventorySummary  `json:"inventory"`
	UniqueCustomers int                      `json:"unique_customers"`
	TopCustomer     report.CustomerAggregate `json:"top_customer"`
	TotalRevenue    float64                  `json:"total_revenue"`
	TotalProfit     float64                  `json:"total_profit"`
	MonthlyRevenue  float64                  `json:"monthly_revenue"`
	MonthlyExpenses float64                  `json:"monthly_expenses"`
	MonthlyNet      float64                  `json:"monthly_net"`
	RevenueTrend    []RevenuePoint           `json:"revenue_trend"`
}

// GetSummary builds the dashboard summary for a user
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	items, err := s.itemRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.analyticsRepo.GetRevenueTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthly, err := s.analyticsRepo.GetMonthlyRevenue(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlyExpenses, err := s.analyticsRepo.GetExpenseTotal(ctx, userID, startOfMonth, time.Time{})
	if err != nil {
		return nil, err
	}

	trend, err := s.analyticsRepo.GetDailyRevenue(ctx, userID, s.metrics.TrendDays)
	if err != nil {
		return nil, err
	}

	points := make([]RevenuePoint, 0, len(trend))
	for _, day := range trend {
		points = append(points, RevenuePoint{
			Date:    day.Date.Format("2006-01-02"),
			Revenue: float64(day.Revenue) / 100,
			Profit:  float64(day.Profit) / 100,
			Orders:  day.Orders,
		})
	}

	book := report.AggregateCustomers(orders)

	return &DashboardSummary{
		Inventory:       report.SummarizeInventory(items, now, s.metrics.TopCategories, s.metrics.DeadStockDays),
		UniqueCustomers: book.UniqueCount(),
		TopCustomer:     book.Top(),
		TotalRevenue:    float64(totals.Revenue) / 100,
		TotalProfit:     float64(totals.Profit) / 100,
		MonthlyRevenue:  float64(monthly.Revenue) / 100,
		MonthlyExpenses: float64(monthlyExpenses) / 100,
		MonthlyNet:      float64(monthly.Revenue-monthlyExpenses) / 100,
		RevenueTrend:    points,
	}, nil
}
