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

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) GetByReference(ctx context.Context, reference string) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("item ILIKE ? OR reference ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("spent_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("spent_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "spent_at"
	sortOrder := "DESC"
	switch params.SortBy {
	case "item", "category", "amount", "spent_at", "created_at":
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) ListAll(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Expense, error) {
	var expenses []entity.Expense

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if !from.IsZero() {
		query = query.Where("spent_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("spent_at <= ?", to)
	}

	err := query.Order("spent_at ASC").Find(&expenses).Error
	return expenses, err
}
