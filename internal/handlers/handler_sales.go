package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/dto"
	"github.com/openbooks-app/openbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesHandler handles HTTP requests related to sales transactions.
type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

func newSalesHandler(ss portssvc.SalesSvcFacade) *salesHandler {
	return &salesHandler{
		salesService: ss,
	}
}

// registerSalesRoutes registers routes related to sales transactions.
func registerSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade) {
	h := newSalesHandler(salesService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Posts a sales invoice: the journal entry, invoice record and stock decrements happen atomically
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Customer or product not found"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Posting accounts not configured or internal failure"
// @Security BearerAuth
// @Router /sales [post]
func (h *salesHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sale, err := h.salesService.CreateSale(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrInsufficientStock) {
			logger.Warn("Sale rejected for insufficient stock", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrMissingAccount) {
			logger.Error("Posting account missing from chart of accounts", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		}
		return
	}

	logger.Info("Sale recorded", slog.String("sales_transaction_id", sale.SalesTransactionID), slog.String("invoice_number", sale.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce  json
// @Param   id path string true "Sales transaction ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *salesHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	sale, err := h.salesService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else {
			logger.Error("Failed to get sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.SaleResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parsePagination(c)

	sales, err := h.salesService.ListSales(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSaleResponse(sales))
}

// parsePagination reads limit and offset query params with sane fallbacks.
func parsePagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
