package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/application/service"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/internal/presentation/http/dto/request"
	"github.com/mkamau/dukahub-api/internal/presentation/http/dto/response"
	"github.com/mkamau/dukahub-api/pkg/pagination"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses with pagination
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.ExpenseFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		StartDate: parseDate(filter.StartDate),
		EndDate:   parseDate(filter.EndDate),
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Summary handles the per-category expense summary
func (h *ExpenseHandler) Summary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var from, to time.Time
	if t := parseDate(c.Query("start_date")); t != nil {
		from = *t
	}
	if t := parseDate(c.Query("end_date")); t != nil {
		to = *t
	}

	summary, err := h.expenseService.GetExpenseSummary(c.Request.Context(), *userID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense summary retrieved successfully", summary)
}

// Get handles retrieving a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Create handles expense creation
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateExpenseInput{
		UserID:   *userID,
		Item:     req.Item,
		Category: req.Category,
		Amount:   req.Amount,
	}
	if req.SpentAt != nil {
		input.SpentAt = *req.SpentAt
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// Update handles expense updates
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), *userID, id, &service.UpdateExpenseInput{
		Item:     req.Item,
		Category: req.Category,
		Amount:   req.Amount,
		SpentAt:  req.SpentAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles expense deletion
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ExportCSV handles the expenses CSV export
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	doc, err := h.expenseService.ExportExpensesCSV(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	writeCSV(c, "expenses.csv", doc)
}
