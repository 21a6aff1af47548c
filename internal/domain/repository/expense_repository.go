package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/pkg/pagination"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	GetByReference(ctx context.Context, reference string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	// ListAll returns every expense for the user in a date window, for
	// summaries and CSV export. Zero times leave the window unbounded.
	ListAll(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Expense, error)
}

// ExpenseFilterParams contains filtering parameters for expense queries
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
