package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/dto"
	"github.com/openbooks-app/openbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/cash-flow", h.getCashFlow)
	}
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Generates a balance sheet as of a date, defaulting to today
// @Tags reports
// @Produce  json
// @Param   asOf query string false "As-of date (YYYY-MM-DD, default today)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := time.Parse(reportDateLayout, c.DefaultQuery("asOf", time.Now().Format(reportDateLayout)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getIncomeStatement godoc
// @Summary Generate an income statement
// @Description Generates an income statement for a period
// @Tags reports
// @Produce  json
// @Param   fromDate query string true "Period start (YYYY-MM-DD)"
// @Param   toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid or inverted period"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseReportPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrPeriodInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate income statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// getCashFlow godoc
// @Summary Generate a cash flow statement
// @Description Generates a cash flow statement with movements classified into operating, investing and financing activities
// @Tags reports
// @Produce  json
// @Param   fromDate query string true "Period start (YYYY-MM-DD)"
// @Param   toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid or inverted period"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseReportPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrPeriodInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate cash flow statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash flow statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}

// parseReportPeriod reads the fromDate and toDate query params. It writes the
// error response itself and returns ok=false when either is missing or malformed.
func parseReportPeriod(c *gin.Context) (time.Time, time.Time, bool) {
	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate and toDate are required"})
		return time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(reportDateLayout, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(reportDateLayout, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
