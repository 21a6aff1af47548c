package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/config"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"github.com/mkamau/dukahub-api/internal/domain/report"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/pkg/apperror"
	"github.com/mkamau/dukahub-api/pkg/pagination"
	"github.com/mkamau/dukahub-api/pkg/tableview"
)

// InventoryService handles inventory item operations and derived stock views
type InventoryService struct {
	itemRepo repository.ItemRepository
	metrics  config.MetricsConfig
}

// NewInventoryService creates a new inventory service
func NewInventoryService(itemRepo repository.ItemRepository, metrics config.MetricsConfig) *InventoryService {
	return &InventoryService{
		itemRepo: itemRepo,
		metrics:  metrics,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	UserID            uuid.UUID
	Name              string
	Category          string
	Quantity          int
	CostPrice         float64
	SellingPrice      float64
	LowStockThreshold int
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	existing, err := s.itemRepo.GetByName(ctx, input.UserID, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Item with this name already exists")
	}

	item := &entity.Item{
		UserID:            input.UserID,
		Name:              input.Name,
		Category:          input.Category,
		Quantity:          input.Quantity,
		LowStockThreshold: input.LowStockThreshold,
	}
	item.SetCostPriceFromDecimal(input.CostPrice)
	item.SetSellingPriceFromDecimal(input.SellingPrice)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

// ImportItems creates a batch of items in one write. Names must be unique
// within the batch and not collide with existing items.
func (s *InventoryService) ImportItems(ctx context.Context, userID uuid.UUID, inputs []CreateItemInput) ([]entity.Item, error) {
	seen := make(map[string]bool, len(inputs))
	items := make([]entity.Item, 0, len(inputs))

	for _, input := range inputs {
		if seen[input.Name] {
			return nil, apperror.NewConflictError("Duplicate item name in import: " + input.Name)
		}
		seen[input.Name] = true

		existing, err := s.itemRepo.GetByName(ctx, userID, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Item with this name already exists: " + input.Name)
		}

		item := entity.Item{
			UserID:            userID,
			Name:              input.Name,
			Category:          input.Category,
			Quantity:          input.Quantity,
			LowStockThreshold: input.LowStockThreshold,
		}
		item.SetCostPriceFromDecimal(input.CostPrice)
		item.SetSellingPriceFromDecimal(input.SellingPrice)
		items = append(items, item)
	}

	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// GetItem retrieves an item by ID, scoped to the owning user
func (s *InventoryService) GetItem(ctx context.Context, userID, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	Name              *string
	Category          *string
	Quantity          *int
	CostPrice         *float64
	SellingPrice      *float64
	LowStockThreshold *int
}

// UpdateItem updates an existing item
func (s *InventoryService) UpdateItem(ctx context.Context, userID, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != item.Name {
		existing, err := s.itemRepo.GetByName(ctx, userID, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperror.NewConflictError("Item with this name already exists")
		}
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.CostPrice != nil {
		item.SetCostPriceFromDecimal(*input.CostPrice)
	}
	if input.SellingPrice != nil {
		item.SetSellingPriceFromDecimal(*input.SellingPrice)
	}
	if input.LowStockThreshold != nil {
		item.LowStockThreshold = *input.LowStockThreshold
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem deletes an item
func (s *InventoryService) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, userID, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListItems returns items with database-side filtering and pagination
func (s *InventoryService) ListItems(ctx context.Context, userID uuid.UUID, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	items, total, err := s.itemRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, paging), nil
}

// ItemViewQuery represents the filter/search/sort query for item stock views
type ItemViewQuery struct {
	Search      string
	Category    string
	StockStatus string
	DeadOnly    bool
	SortBy      string
	SortOrder   string
}

// ListItemViews returns all items enriched with stock status, total value
// and dead-stock figures, filtered and sorted in memory.
func (s *InventoryService) ListItemViews(ctx context.Context, userID uuid.UUID, query *ItemViewQuery) ([]report.ItemView, error) {
	items, err := s.itemRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := report.NewItemViews(items, time.Now(), s.metrics.DeadStockDays)

	opts := tableview.Options[report.ItemView]{
		Search: query.Search,
		SearchFields: func(v report.ItemView) []string {
			return []string{v.Item.Name, v.Item.Category}
		},
		Columns: itemViewColumns(),
	}

	if query.Category != "" {
		opts.Filters = append(opts.Filters, func(v report.ItemView) bool {
			return report.CategoryLabel(v.Item.Category) == query.Category
		})
	}
	if query.StockStatus != "" {
		status := enum.StockStatus(query.StockStatus)
		opts.Filters = append(opts.Filters, func(v report.ItemView) bool {
			return v.StockStatus == status
		})
	}
	if query.DeadOnly {
		opts.Filters = append(opts.Filters, func(v report.ItemView) bool {
			return v.IsDeadStock()
		})
	}

	if query.SortBy != "" {
		direction := tableview.Asc
		if query.SortOrder == "desc" || query.SortOrder == "DESC" {
			direction = tableview.Desc
		}
		opts.Sort = &tableview.Sort{Key: query.SortBy, Direction: direction}
	}

	return tableview.Apply(views, opts), nil
}

func itemViewColumns() map[string]tableview.Column[report.ItemView] {
	return map[string]tableview.Column[report.ItemView]{
		"name": func(v report.ItemView) (tableview.Value, bool) {
			return tableview.Text(v.Item.Name), true
		},
		"category": func(v report.ItemView) (tableview.Value, bool) {
			return tableview.Text(report.CategoryLabel(v.Item.Category)), true
		},
		"quantity": func(v report.ItemView) (tableview.Value, bool) {
			return tableview.Number(float64(v.Item.Quantity)), true
		},
		"selling_price": func(v report.ItemView) (tableview.Value, bool) {
			return tableview.Number(float64(v.Item.SellingPrice)), true
		},
		"total_value": func(v report.ItemView) (tableview.Value, bool) {
			return tableview.Number(float64(v.TotalValue)), true
		},
		"last_sold_at": func(v report.ItemView) (tableview.Value, bool) {
			if v.Item.LastSoldAt == nil {
				return tableview.Value{}, false
			}
			return tableview.Time(*v.Item.LastSoldAt), true
		},
		"days_since_last_sold": func(v report.ItemView) (tableview.Value, bool) {
			if v.DaysSinceLastSold == nil {
				return tableview.Value{}, false
			}
			return tableview.Number(float64(*v.DaysSinceLastSold)), true
		},
		"created_at": func(v report.ItemView) (tableview.Value, bool) {
			return tableview.Time(v.Item.CreatedAt), true
		},
	}
}

// GetLowStockItems returns items at or below their low stock threshold
func (s *InventoryService) GetLowStockItems(ctx context.Context, userID uuid.UUID) ([]entity.Item, error) {
	return s.itemRepo.GetLowStock(ctx, userID)
}

// DeadStockReport represents the dead stock report payload
type DeadStockReport struct {
	ThresholdDays int               `json:"threshold_days"`
	Count         int               `json:"count"`
	TotalValue    float64           `json:"total_value"`
	Items         []report.ItemView `json:"items"`
}

// GetDeadStockReport returns items with no sales activity inside the
// configured window, oldest activity first.
func (s *InventoryService) GetDeadStockReport(ctx context.Context, userID uuid.UUID, thresholdDays int) (*DeadStockReport, error) {
	if thresholdDays <= 0 {
		thresholdDays = s.metrics.DeadStockDays
	}

	items, err := s.itemRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := report.NewItemViews(items, time.Now(), thresholdDays)

	opts := tableview.Options[report.ItemView]{
		Filters: []func(report.ItemView) bool{
			func(v report.ItemView) bool { return v.IsDeadStock() },
		},
		Sort:    &tableview.Sort{Key: "days_since_last_sold", Direction: tableview.Desc},
		Columns: itemViewColumns(),
	}
	dead := tableview.Apply(views, opts)

	var totalValue int64
	for _, v := range dead {
		if v.DeadStockValue != nil {
			totalValue += *v.DeadStockValue
		}
	}

	return &DeadStockReport{
		ThresholdDays: thresholdDays,
		Count:         len(dead),
		TotalValue:    float64(totalValue) / 100,
		Items:         dead,
	}, nil
}

// GetInventorySummary returns the aggregated inventory dashboard card
func (s *InventoryService) GetInventorySummary(ctx context.Context, userID uuid.UUID) (*report.InventorySummary, error) {
	items, err := s.itemRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := report.SummarizeInventory(items, time.Now(), s.metrics.TopCategories, s.metrics.DeadStockDays)
	return &summary, nil
}

// ListCategories returns the distinct item categories for the user
func (s *InventoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.itemRepo.ListCategories(ctx, userID)
}

// ExportInventoryCSV builds the inventory CSV export document
func (s *InventoryService) ExportInventoryCSV(ctx context.Context, userID uuid.UUID) (report.CSVDoc, error) {
	items, err := s.itemRepo.ListAll(ctx, userID)
	if err != nil {
		return report.CSVDoc{}, err
	}

	views := report.NewItemViews(items, time.Now(), s.metrics.DeadStockDays)
	return report.InventoryCSV(views), nil
}

// AdjustQuantity applies a signed stock adjustment to an item
func (s *InventoryService) AdjustQuantity(ctx context.Context, userID, id uuid.UUID, delta int) (*entity.Item, error) {
	item, err := s.GetItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if delta < 0 {
		ok, err := s.itemRepo.AtomicDecrementQuantity(ctx, id, -delta)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.ErrInsufficientStock
		}
	} else if delta > 0 {
		if err := s.itemRepo.UpdateQuantity(ctx, id, item.Quantity+delta); err != nil {
			return nil, err
		}
	}

	return s.itemRepo.GetByID(ctx, id)
}

// ParseStockStatus validates a stock status query value
func ParseStockStatus(value string) (string, error) {
	switch value {
	case "", string(enum.StockStatusIn), string(enum.StockStatusLow), string(enum.StockStatusOut):
		return value, nil
	}
	return "", apperror.NewBadRequestError("Invalid stock status: " + strconv.Quote(value))
}
