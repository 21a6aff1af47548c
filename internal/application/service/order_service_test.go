package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepo is an in-memory repository.OrderRepository for service tests.
type stubOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newStubOrderRepo(orders ...*entity.Order) *stubOrderRepo {
	r := &stubOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
	for _, o := range orders {
		if o.ID == uuid.Nil {
			o.ID = uuid.New()
		}
		r.orders[o.ID] = o
	}
	return r
}

func (r *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) List(ctx context.Context, userID uuid.UUID, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	orders, err := r.ListAll(ctx, userID)
	return orders, int64(len(orders)), err
}

func (r *stubOrderRepo) ListAll(_ context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	r.orders[id].Status = status
	return nil
}

func TestOrderServiceCreateOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newService := func(items ...*entity.Item) (*OrderService, *stubItemRepo) {
		itemRepo := newStubItemRepo(items...)
		return NewOrderService(newStubOrderRepo(), itemRepo), itemRepo
	}

	t.Run("recomputes all money fields server-side", func(t *testing.T) {
		svc, _ := newService(&entity.Item{UserID: userID, Name: "Denim Jeans", Quantity: 10, CostPrice: 1250})

		order, err := svc.CreateOrder(ctx, &CreateOrderInput{
			UserID:         userID,
			CustomerName:   "Amina Yusuf",
			CustomerPhone:  "0712345678",
			Item:           "3 x Denim Jeans",
			Rate:           20.00,
			DiscountAmount: 5.00,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2000), order.Rate)
		assert.Equal(t, int64(6000), order.Gross)
		assert.Equal(t, int64(500), order.DiscountAmount)
		assert.Equal(t, int64(5500), order.Total)
		assert.Equal(t, int64(3750), order.CostPrice) // 3 x 12.50
		assert.Equal(t, int64(1750), order.Profit)
		assert.False(t, order.OrderDate.IsZero())
	})

	t.Run("unknown item leaves cost at zero", func(t *testing.T) {
		svc, _ := newService()

		order, err := svc.CreateOrder(ctx, &CreateOrderInput{
			UserID: userID,
			Item:   "Mystery Box",
			Rate:   10.00,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), order.CostPrice)
		assert.Equal(t, int64(1000), order.Profit)
	})

	t.Run("discount beyond gross is rejected", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.CreateOrder(ctx, &CreateOrderInput{
			UserID:         userID,
			Item:           "2 x Soap",
			Rate:           3.00,
			DiscountAmount: 7.00,
		})
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("completed order decrements stock and stamps the sale", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Denim Jeans", Quantity: 10, CostPrice: 1250}
		svc, itemRepo := newService(item)

		_, err := svc.CreateOrder(ctx, &CreateOrderInput{
			UserID: userID,
			Item:   "3 x Denim Jeans",
			Rate:   20.00,
			Status: enum.OrderStatusCompleted,
		})
		require.NoError(t, err)

		got, err := itemRepo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Quantity)
		assert.NotNil(t, got.LastSoldAt)
	})

	t.Run("pending order leaves stock alone", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Denim Jeans", Quantity: 10, CostPrice: 1250}
		svc, itemRepo := newService(item)

		_, err := svc.CreateOrder(ctx, &CreateOrderInput{
			UserID: userID,
			Item:   "3 x Denim Jeans",
			Rate:   20.00,
		})
		require.NoError(t, err)

		got, err := itemRepo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Quantity)
		assert.Nil(t, got.LastSoldAt)
	})

	t.Run("completing beyond available stock fails", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Denim Jeans", Quantity: 2, CostPrice: 1250}
		svc, _ := newService(item)

		_, err := svc.CreateOrder(ctx, &CreateOrderInput{
			UserID: userID,
			Item:   "3 x Denim Jeans",
			Rate:   20.00,
			Status: enum.OrderStatusCompleted,
		})
		assert.ErrorIs(t, err, apperror.ErrInsufficientStock)
	})
}

func TestOrderServiceUpdateOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("recomputes totals from the edited fields", func(t *testing.T) {
		order := &entity.Order{
			UserID: userID,
			Item:   "2 x Soap",
			Rate:   300,
			Gross:  600,
			Total:  600,
		}
		orderRepo := newStubOrderRepo(order)
		svc := NewOrderService(orderRepo, newStubItemRepo())

		newRate := 4.00
		updated, err := svc.UpdateOrder(ctx, userID, order.ID, &UpdateOrderInput{Rate: &newRate})
		require.NoError(t, err)
		assert.Equal(t, int64(800), updated.Gross)
		assert.Equal(t, int64(800), updated.Total)
	})

	t.Run("completed orders are immutable", func(t *testing.T) {
		order := &entity.Order{UserID: userID, Item: "Soap", Status: enum.OrderStatusCompleted}
		svc := NewOrderService(newStubOrderRepo(order), newStubItemRepo())

		name := "Someone Else"
		_, err := svc.UpdateOrder(ctx, userID, order.ID, &UpdateOrderInput{CustomerName: &name})
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestOrderServiceUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("completing a pending order records the sale", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Soap", Quantity: 5, CostPrice: 100}
		order := &entity.Order{UserID: userID, Item: "2 x Soap", Status: enum.OrderStatusPending}
		itemRepo := newStubItemRepo(item)
		svc := NewOrderService(newStubOrderRepo(order), itemRepo)

		updated, err := svc.UpdateOrderStatus(ctx, userID, order.ID, enum.OrderStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, enum.OrderStatusCompleted, updated.Status)

		got, err := itemRepo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Quantity)
	})

	t.Run("cancelled orders cannot change status", func(t *testing.T) {
		order := &entity.Order{UserID: userID, Item: "Soap", Status: enum.OrderStatusCancelled}
		svc := NewOrderService(newStubOrderRepo(order), newStubItemRepo())

		_, err := svc.UpdateOrderStatus(ctx, userID, order.ID, enum.OrderStatusPending)
		require.Error(t, err)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		item := &entity.Item{UserID: userID, Name: "Soap", Quantity: 5}
		order := &entity.Order{UserID: userID, Item: "2 x Soap", Status: enum.OrderStatusCompleted}
		itemRepo := newStubItemRepo(item)
		svc := NewOrderService(newStubOrderRepo(order), itemRepo)

		_, err := svc.UpdateOrderStatus(ctx, userID, order.ID, enum.OrderStatusCompleted)
		require.NoError(t, err)

		got, err := itemRepo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Quantity) // not decremented twice
	})
}

func TestOrderServiceGetOrderLineItems(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{UserID: userID, Item: "4 x Maize Flour", Rate: 1000, Total: 3600}
	svc := NewOrderService(newStubOrderRepo(order), newStubItemRepo())

	lines, err := svc.GetOrderLineItems(ctx, userID, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Maize Flour", lines[0].Name)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, int64(900), lines[0].UnitPrice)
}
