package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/config"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubItemRepo is an in-memory repository.ItemRepository for service tests.
type stubItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newStubItemRepo(items ...*entity.Item) *stubItemRepo {
	r := &stubItemRepo{items: make(map[uuid.UUID]*entity.Item)}
	for _, it := range items {
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		r.items[it.ID] = it
	}
	return r
}

func (r *stubItemRepo) Create(_ context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) CreateBatch(ctx context.Context, items []entity.Item) error {
	for i := range items {
		if err := r.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubItemRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *stubItemRepo) GetByName(_ context.Context, userID uuid.UUID, name string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.Name == name {
			return it, nil
		}
	}
	return nil, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) List(ctx context.Context, userID uuid.UUID, _ *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	items, err := r.ListAll(ctx, userID)
	return items, int64(len(items)), err
}

func (r *stubItemRepo) ListAll(_ context.Context, userID uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubItemRepo) GetLowStock(_ context.Context, userID uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, it := range r.items {
		if it.UserID == userID && it.Quantity > 0 && it.Quantity <= it.LowStockThreshold {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubItemRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	r.items[id].Quantity = quantity
	return nil
}

func (r *stubItemRepo) AtomicDecrementQuantity(_ context.Context, id uuid.UUID, amount int) (bool, error) {
	it := r.items[id]
	if it.Quantity < amount {
		return false, nil
	}
	it.Quantity -= amount
	return true, nil
}

func (r *stubItemRepo) MarkSold(_ context.Context, id uuid.UUID) error {
	now := time.Now()
	r.items[id].LastSoldAt = &now
	return nil
}

func (r *stubItemRepo) ListCategories(_ context.Context, userID uuid.UUID) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, it := range r.items {
		if it.UserID == userID && it.Category != "" && !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out, nil
}

func testMetrics() config.MetricsConfig {
	return config.MetricsConfig{DeadStockDays: 90, TopCategories: 5, TrendDays: 7}
}

func TestInventoryServiceCreateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates with prices converted to cents", func(t *testing.T) {
		svc := NewInventoryService(newStubItemRepo(), testMetrics())

		item, err := svc.CreateItem(ctx, &CreateItemInput{
			UserID:       userID,
			Name:         "Denim Jeans",
			Category:     "Clothing",
			Quantity:     10,
			CostPrice:    12.50,
			SellingPrice: 20.00,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1250), item.CostPrice)
		assert.Equal(t, int64(2000), item.SellingPrice)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := newStubItemRepo(&entity.Item{UserID: userID, Name: "Denim Jeans"})
		svc := NewInventoryService(repo, testMetrics())

		_, err := svc.CreateItem(ctx, &CreateItemInput{UserID: userID, Name: "Denim Jeans"})
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestInventoryServiceImportItems(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates the whole batch with prices in cents", func(t *testing.T) {
		repo := newStubItemRepo()
		svc := NewInventoryService(repo, testMetrics())

		items, err := svc.ImportItems(ctx, userID, []CreateItemInput{
			{Name: "Denim Jeans", Category: "Clothing", Quantity: 10, CostPrice: 12.50},
			{Name: "Bar Soap", Category: "Toiletries", Quantity: 40, CostPrice: 0.80},
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(1250), items[0].CostPrice)
		assert.Equal(t, int64(80), items[1].CostPrice)

		stored, err := repo.ListAll(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})

	t.Run("duplicate name inside the batch conflicts", func(t *testing.T) {
		svc := NewInventoryService(newStubItemRepo(), testMetrics())

		_, err := svc.ImportItems(ctx, userID, []CreateItemInput{
			{Name: "Denim Jeans"},
			{Name: "Denim Jeans"},
		})
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("collision with an existing item conflicts and writes nothing", func(t *testing.T) {
		repo := newStubItemRepo(&entity.Item{UserID: userID, Name: "Denim Jeans"})
		svc := NewInventoryService(repo, testMetrics())

		_, err := svc.ImportItems(ctx, userID, []CreateItemInput{
			{Name: "Bar Soap"},
			{Name: "Denim Jeans"},
		})
		require.Error(t, err)

		stored, err := repo.ListAll(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})
}

func TestInventoryServiceGetItem(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	item := &entity.Item{UserID: owner, Name: "Radio"}
	svc := NewInventoryService(newStubItemRepo(item), testMetrics())

	t.Run("owner sees the item", func(t *testing.T) {
		got, err := svc.GetItem(ctx, owner, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Radio", got.Name)
	})

	t.Run("another user gets not found, not forbidden", func(t *testing.T) {
		_, err := svc.GetItem(ctx, uuid.New(), item.ID)
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestInventoryServiceAdjustQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("positive delta adds stock", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Soap", Quantity: 5}
		svc := NewInventoryService(newStubItemRepo(item), testMetrics())

		got, err := svc.AdjustQuantity(ctx, userID, item.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 8, got.Quantity)
	})

	t.Run("negative delta removes stock", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Soap", Quantity: 5}
		svc := NewInventoryService(newStubItemRepo(item), testMetrics())

		got, err := svc.AdjustQuantity(ctx, userID, item.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Quantity)
	})

	t.Run("overdraw is rejected and stock untouched", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Soap", Quantity: 5}
		svc := NewInventoryService(newStubItemRepo(item), testMetrics())

		_, err := svc.AdjustQuantity(ctx, userID, item.ID, -6)
		assert.ErrorIs(t, err, apperror.ErrInsufficientStock)

		got, err := svc.GetItem(ctx, userID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Quantity)
	})
}

func TestInventoryServiceListItemViews(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	old := time.Now().AddDate(0, 0, -200)
	recent := time.Now().AddDate(0, 0, -10)

	repo := newStubItemRepo(
		&entity.Item{UserID: userID, Name: "Wool Scarf", Category: "Clothing", Quantity: 8, CostPrice: 1200, CreatedAt: old},
		&entity.Item{UserID: userID, Name: "Denim Jeans", Category: "Clothing", Quantity: 3, CostPrice: 2000, LowStockThreshold: 5, CreatedAt: recent},
		&entity.Item{UserID: userID, Name: "Radio", Category: "Electronics", Quantity: 0, CostPrice: 5000, CreatedAt: recent},
	)
	svc := NewInventoryService(repo, testMetrics())

	t.Run("dead-only filter keeps aged items", func(t *testing.T) {
		views, err := svc.ListItemViews(ctx, userID, &ItemViewQuery{DeadOnly: true})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Wool Scarf", views[0].Item.Name)
	})

	t.Run("status filter selects one bucket", func(t *testing.T) {
		views, err := svc.ListItemViews(ctx, userID, &ItemViewQuery{StockStatus: string(enum.StockStatusOut)})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Radio", views[0].Item.Name)
	})

	t.Run("sorts by derived columns", func(t *testing.T) {
		views, err := svc.ListItemViews(ctx, userID, &ItemViewQuery{SortBy: "total_value", SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "Wool Scarf", views[0].Item.Name) // 9600
		assert.Equal(t, "Denim Jeans", views[1].Item.Name)
		assert.Equal(t, "Radio", views[2].Item.Name) // zero stock
	})
}

func TestInventoryServiceGetLowStockItems(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newStubItemRepo(
		&entity.Item{UserID: userID, Name: "Soap", Quantity: 2, LowStockThreshold: 5},
		&entity.Item{UserID: userID, Name: "Radio", Quantity: 0, LowStockThreshold: 2},
		&entity.Item{UserID: userID, Name: "Candles", Quantity: 0, LowStockThreshold: 0},
		&entity.Item{UserID: userID, Name: "Jeans", Quantity: 10, LowStockThreshold: 5},
	)
	svc := NewInventoryService(repo, testMetrics())

	items, err := svc.GetLowStockItems(ctx, userID)
	require.NoError(t, err)

	// Out-of-stock items are not low stock.
	require.Len(t, items, 1)
	assert.Equal(t, "Soap", items[0].Name)
}

func TestInventoryServiceGetDeadStockReport(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	old := time.Now().AddDate(0, 0, -200)
	older := time.Now().AddDate(0, 0, -300)
	recent := time.Now().AddDate(0, 0, -10)

	repo := newStubItemRepo(
		&entity.Item{UserID: userID, Name: "Wool Scarf", Quantity: 8, CostPrice: 1200, CreatedAt: old},
		&entity.Item{UserID: userID, Name: "Typewriter", Quantity: 1, CostPrice: 9000, CreatedAt: older},
		&entity.Item{UserID: userID, Name: "Denim Jeans", Quantity: 3, CostPrice: 2000, CreatedAt: recent},
	)
	svc := NewInventoryService(repo, testMetrics())

	rep, err := svc.GetDeadStockReport(ctx, userID, 0)
	require.NoError(t, err)

	assert.Equal(t, 90, rep.ThresholdDays) // configured default
	assert.Equal(t, 2, rep.Count)
	assert.InDelta(t, 186.0, rep.TotalValue, 0.001) // 96.00 + 90.00

	// Longest-idle first.
	require.Len(t, rep.Items, 2)
	assert.Equal(t, "Typewriter", rep.Items[0].Item.Name)
	assert.Equal(t, "Wool Scarf", rep.Items[1].Item.Name)
}

func TestParseStockStatus(t *testing.T) {
	for _, valid := range []string{"", "in-stock", "low-stock", "out-of-stock"} {
		got, err := ParseStockStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	}

	_, err := ParseStockStatus("discontinued")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}
