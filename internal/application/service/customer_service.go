package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/report"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/pkg/apperror"
	"github.com/mkamau/dukahub-api/pkg/pagination"
)

// CustomerService handles customer records and order-derived insights
type CustomerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   string
	Email   *string
	Address *string
}

// CreateCustomer creates a new customer record
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Phone != "" {
		existing, err := s.customerRepo.GetByPhone(ctx, input.UserID, input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer with this phone already exists")
		}
	}

	customer := &entity.Customer{
		UserID:  input.UserID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID, scoped to the owning user
func (s *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// UpdateCustomer updates a customer record
func (s *CustomerService) UpdateCustomer(ctx context.Context, userID, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil && *input.Phone != customer.Phone {
		if *input.Phone != "" {
			existing, err := s.customerRepo.GetByPhone(ctx, userID, *input.Phone)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != customer.ID {
				return nil, apperror.NewConflictError("Customer with this phone already exists")
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer record
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, userID, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers returns customer records with pagination
func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	customers, total, err := s.customerRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, paging), nil
}

// CustomerInsights represents order-derived customer figures
type CustomerInsights struct {
	UniqueCustomers int                        `json:"unique_customers"`
	TopCustomer     report.CustomerAggregate   `json:"top_customer"`
	Customers       []report.CustomerAggregate `json:"customers"`
}

// GetCustomerInsights folds every order into per-customer aggregates.
// Orders without both a name and a phone are left out.
func (s *CustomerService) GetCustomerInsights(ctx context.Context, userID uuid.UUID) (*CustomerInsights, error) {
	orders, err := s.orderRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	book := report.AggregateCustomers(orders)
	return &CustomerInsights{
		UniqueCustomers: book.UniqueCount(),
		TopCustomer:     book.Top(),
		Customers:       book.All(),
	}, nil
}
