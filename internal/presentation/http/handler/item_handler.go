package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/application/service"
	"github.com/mkamau/dukahub-api/internal/domain/repository"
	"github.com/mkamau/dukahub-api/internal/presentation/http/dto/request"
	"github.com/mkamau/dukahub-api/internal/presentation/http/dto/response"
	"github.com/mkamau/dukahub-api/pkg/pagination"
)

// ItemHandler handles inventory item HTTP requests
type ItemHandler struct {
	inventoryService *service.InventoryService
}

// NewItemHandler creates a new item handler
func NewItemHandler(inventoryService *service.InventoryService) *ItemHandler {
	return &ItemHandler{inventoryService: inventoryService}
}

// List handles listing items with pagination
func (h *ItemHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.ItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ItemFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// ListViews handles listing items enriched with stock status and dead-stock figures
func (h *ItemHandler) ListViews(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.ItemViewFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	status, err := service.ParseStockStatus(filter.StockStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.inventoryService.ListItemViews(c.Request.Context(), *userID, &service.ItemViewQuery{
		Search:      filter.Search,
		Category:    filter.Category,
		StockStatus: status,
		DeadOnly:    filter.DeadOnly,
		SortBy:      filter.SortBy,
		SortOrder:   filter.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item views retrieved successfully", views)
}

// Get handles retrieving a single item
func (h *ItemHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles item creation
func (h *ItemHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		UserID:            *userID,
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Import handles bulk item creation
func (h *ItemHandler) Import(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ImportItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inputs := make([]service.CreateItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		inputs = append(inputs, service.CreateItemInput{
			UserID:            *userID,
			Name:              it.Name,
			Category:          it.Category,
			Quantity:          it.Quantity,
			CostPrice:         it.CostPrice,
			SellingPrice:      it.SellingPrice,
			LowStockThreshold: it.LowStockThreshold,
		})
	}

	items, err := h.inventoryService.ImportItems(c.Request.Context(), *userID, inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Items imported successfully", items)
}

// Update handles item updates
func (h *ItemHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), *userID, id, &service.UpdateItemInput{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles item deletion
func (h *ItemHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AdjustQuantity handles signed stock adjustments
func (h *ItemHandler) AdjustQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.AdjustQuantity(c.Request.Context(), *userID, id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity adjusted successfully", item)
}

// LowStock handles listing items at or below their low stock threshold
func (h *ItemHandler) LowStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	items, err := h.inventoryService.GetLowStockItems(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// DeadStock handles the dead stock report
func (h *ItemHandler) DeadStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	thresholdDays := 0
	if raw := c.Query("threshold_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid threshold_days")
			return
		}
		thresholdDays = parsed
	}

	reportOut, err := h.inventoryService.GetDeadStockReport(c.Request.Context(), *userID, thresholdDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dead stock report retrieved successfully", reportOut)
}

// Categories handles listing the distinct item categories
func (h *ItemHandler) Categories(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	categories, err := h.inventoryService.ListCategories(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// ExportCSV handles the inventory CSV export
func (h *ItemHandler) ExportCSV(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	doc, err := h.inventoryService.ExportInventoryCSV(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	writeCSV(c, "inventory.csv", doc)
}
