package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	domainRepo "github.com/mkamau/dukahub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) CreateBatch(ctx context.Context, items []entity.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).
		First(&item, "user_id = ? AND LOWER(name) = LOWER(?)", userID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Item{}, "id = ?", id).Error
}

func (r *itemRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR category ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.LowStock {
		// Zero quantity is out-of-stock, not low.
		query = query.Where("quantity > 0 AND quantity <= low_stock_threshold")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	switch params.SortBy {
	case "name", "category", "quantity", "selling_price", "cost_price", "created_at":
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&items).Error

	return items, total, err
}

func (r *itemRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity > 0 AND quantity <= low_stock_threshold", userID).
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// AtomicDecrementQuantity atomically decrements stock only if sufficient quantity exists.
// Uses: UPDATE items SET quantity = quantity - amount WHERE id = ? AND quantity >= amount
func (r *itemRepository) AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *itemRepository) MarkSold(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ?", id).
		Update("last_sold_at", time.Now()).Error
}

func (r *itemRepository) ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("user_id = ? AND category <> ''", userID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}
