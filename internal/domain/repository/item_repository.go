package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/pkg/pagination"
)

// ItemRepository defines the interface for inventory item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	CreateBatch(ctx context.Context, items []entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ItemFilterParams) ([]entity.Item, int64, error)
	// ListAll returns every item for the user without pagination, for
	// report building and CSV export.
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Item, error)
	GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Item, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	// AtomicDecrementQuantity atomically decrements stock only if sufficient.
	// Returns (true, nil) if successful, (false, nil) if insufficient stock.
	AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error)
	MarkSold(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	SortBy     string
	SortOrder  string
}
