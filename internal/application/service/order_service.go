package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"github.com/mkamau/dukahub-api/internal/domain/report"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/pkg/apperror"
	"github.com/mkamau/dukahub-api/pkg/pagination"
)

// OrderService handles sales order operations
type OrderService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, itemRepo repository.ItemRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID         uuid.UUID
	CustomerName   string
	CustomerPhone  string
	Item           string // free-form, e.g. "3 x Denim Jeans"
	Rate           float64
	DiscountAmount float64
	DiscountNote   string
	Status         enum.OrderStatus
	OrderDate      time.Time
}

// CreateOrder creates a new order. Totals are always recomputed server-side
// from the rate, parsed quantity and discount; client-supplied totals are
// never trusted.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.DiscountAmount < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	quantity, itemName := report.ParseItemDescription(input.Item)

	order := &entity.Order{
		UserID:        input.UserID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Item:          input.Item,
		Rate:          toCents(input.Rate),
		DiscountNote:  input.DiscountNote,
		Status:        input.Status,
		OrderDate:     input.OrderDate,
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	order.Gross = order.Rate * int64(quantity)
	order.DiscountAmount = toCents(input.DiscountAmount)
	if order.DiscountAmount > order.Gross {
		return nil, apperror.NewBadRequestError("Discount cannot exceed gross amount")
	}
	order.Total = order.Gross - order.DiscountAmount

	// Cost basis comes from the matching inventory item, when one exists
	invItem, err := s.itemRepo.GetByName(ctx, input.UserID, itemName)
	if err != nil {
		return nil, err
	}
	if invItem != nil {
		order.CostPrice = invItem.CostPrice * int64(quantity)
	}
	order.Profit = order.Total - order.CostPrice

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if order.Status == enum.OrderStatusCompleted && invItem != nil {
		if err := s.recordSale(ctx, invItem.ID, quantity); err != nil {
			return nil, err
		}
	}

	return s.orderRepo.GetByID(ctx, order.ID)
}

// recordSale decrements stock and stamps last sold time on the inventory item
func (s *OrderService) recordSale(ctx context.Context, itemID uuid.UUID, quantity int) error {
	ok, err := s.itemRepo.AtomicDecrementQuantity(ctx, itemID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrInsufficientStock
	}
	return s.itemRepo.MarkSold(ctx, itemID)
}

// GetOrder retrieves an order by ID, scoped to the owning user
func (s *OrderService) GetOrder(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	CustomerName   *string
	CustomerPhone  *string
	Item           *string
	Rate           *float64
	DiscountAmount *float64
	DiscountNote   *string
	OrderDate      *time.Time
}

// UpdateOrder updates an order and recomputes its totals
func (s *OrderService) UpdateOrder(ctx context.Context, userID, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if order.Status == enum.OrderStatusCompleted || order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Completed or cancelled orders cannot be edited")
	}

	if input.CustomerName != nil {
		order.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = *input.CustomerPhone
	}
	if input.Item != nil {
		order.Item = *input.Item
	}
	if input.Rate != nil {
		order.Rate = toCents(*input.Rate)
	}
	if input.DiscountAmount != nil {
		if *input.DiscountAmount < 0 {
			return nil, apperror.NewBadRequestError("Discount cannot be negative")
		}
		order.DiscountAmount = toCents(*input.DiscountAmount)
	}
	if input.DiscountNote != nil {
		order.DiscountNote = *input.DiscountNote
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}

	quantity, itemName := report.ParseItemDescription(order.Item)
	order.Gross = order.Rate * int64(quantity)
	if order.DiscountAmount > order.Gross {
		return nil, apperror.NewBadRequestError("Discount cannot exceed gross amount")
	}
	order.Total = order.Gross - order.DiscountAmount

	invItem, err := s.itemRepo.GetByName(ctx, userID, itemName)
	if err != nil {
		return nil, err
	}
	order.CostPrice = 0
	if invItem != nil {
		order.CostPrice = invItem.CostPrice * int64(quantity)
	}
	order.Profit = order.Total - order.CostPrice

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus transitions an order to a new status. Completing an
// order records the sale against inventory.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, userID, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.GetOrder(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Cancelled orders cannot change status")
	}

	if status == enum.OrderStatusCompleted && order.Status != enum.OrderStatusCompleted {
		quantity, itemName := report.ParseItemDescription(order.Item)
		invItem, err := s.itemRepo.GetByName(ctx, userID, itemName)
		if err != nil {
			return nil, err
		}
		if invItem != nil {
			if err := s.recordSale(ctx, invItem.ID, quantity); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// DeleteOrder deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetOrder(ctx, userID, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// ListOrders returns orders with database-side filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, paging), nil
}

// GetOrderLineItems returns the normalized line items for an order
func (s *OrderService) GetOrderLineItems(ctx context.Context, userID, id uuid.UUID) ([]report.LineItem, error) {
	order, err := s.GetOrder(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return report.NormalizeLineItems(*order), nil
}

// ExportOrdersCSV builds the orders CSV export document
func (s *OrderService) ExportOrdersCSV(ctx context.Context, userID uuid.UUID) (report.CSVDoc, error) {
	orders, err := s.orderRepo.ListAll(ctx, userID)
	if err != nil {
		return report.CSVDoc{}, err
	}
	return report.OrdersCSV(orders), nil
}

// toCents converts a decimal amount to cents
func toCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
