package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/report"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/pkg/apperror"
	"github.com/mkamau/dukahub-api/pkg/pagination"
	"github.com/mkamau/dukahub-api/pkg/utils"
)

// ExpenseService handles business expense operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Item     string
	Category string
	Amount   float64
	SpentAt  time.Time
}

// CreateExpense records a new expense with a generated reference number
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	expense := &entity.Expense{
		UserID:    input.UserID,
		Reference: utils.GenerateReferenceNo("EXP"),
		Item:      input.Item,
		Category:  input.Category,
		Amount:    toCents(input.Amount),
		SpentAt:   input.SpentAt,
	}
	if expense.SpentAt.IsZero() {
		expense.SpentAt = time.Now()
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID, scoped to the owning user
func (s *ExpenseService) GetExpense(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil || expense.UserID != userID {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	Item     *string
	Category *string
	Amount   *float64
	SpentAt  *time.Time
}

// UpdateExpense updates an expense record
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Item != nil {
		expense.Item = *input.Item
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be greater than zero")
		}
		expense.Amount = toCents(*input.Amount)
	}
	if input.SpentAt != nil {
		expense.SpentAt = *input.SpentAt
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// DeleteExpense deletes an expense record
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetExpense(ctx, userID, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses returns expenses with database-side filtering and pagination
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	expenses, total, err := s.expenseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, paging), nil
}

// GetExpenseSummary returns per-category expense totals inside a window.
// Zero times leave the window unbounded.
func (s *ExpenseService) GetExpenseSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*report.ExpenseSummary, error) {
	expenses, err := s.expenseRepo.ListAll(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := report.SummarizeExpenses(expenses, from, to)
	return &summary, nil
}

// ExportExpensesCSV builds the expenses CSV export document
func (s *ExpenseService) ExportExpensesCSV(ctx context.Context, userID uuid.UUID) (report.CSVDoc, error) {
	expenses, err := s.expenseRepo.ListAll(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return report.CSVDoc{}, err
	}
	return report.ExpensesCSV(expenses), nil
}
