package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the chart and dashboard endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	categories       *domain.CategoryCatalog
}

func newReportingHandler(rs portssvc.ReportingService, categories *domain.CategoryCatalog) *reportingHandler {
	return &reportingHandler{reportingService: rs, categories: categories}
}

// RegisterReportingRoutes registers the chart and report routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, categories *domain.CategoryCatalog) {
	h := newReportingHandler(reportingService, categories)

	charts := rg.Group("/charts")
	{
		charts.GET("/category-breakdown", h.getCategoryBreakdown)
		charts.GET("/monthly-expenses", h.getMonthlyExpenses)
		charts.GET("/budget-comparison", h.getBudgetComparison)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// getCategoryBreakdown godoc
// @Summary Spend per category for a month
// @Description Groups the month's transactions by category, largest first, with chart colors
// @Tags charts
// @Produce  json
// @Param   month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build category breakdown"
// @Router /charts/category-breakdown [get]
func (h *reportingHandler) getCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, err := monthQuery(c)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build category breakdown")
		return
	}

	breakdown, err := h.reportingService.CategoryBreakdown(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build category breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(month, breakdown, h.categories))
}

// getMonthlyExpenses godoc
// @Summary Spend per month
// @Description Sums spend per month over the trailing window ending now. Months without spend are omitted.
// @Tags charts
// @Produce  json
// @Param   months query int false "Trailing window length in months (1-120)" default(12)
// @Success 200 {object} dto.MonthlySeriesResponse
// @Failure 400 {object} map[string]string "Invalid months"
// @Failure 500 {object} map[string]string "Failed to build monthly series"
// @Router /charts/monthly-expenses [get]
func (h *reportingHandler) getMonthlyExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months := domain.DefaultSeriesMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be an integer"})
			return
		}
		months = parsed
	}

	series, err := h.reportingService.MonthlySeries(c.Request.Context(), nowUTC(), months)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build monthly series")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(months, series))
}

// getBudgetComparison godoc
// @Summary Budget versus actual spend
// @Description One row per budgeted or spent category; budgeted rows come first
// @Tags charts
// @Produce  json
// @Param   month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.BudgetComparisonResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build budget comparison"
// @Router /charts/budget-comparison [get]
func (h *reportingHandler) getBudgetComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, err := monthQuery(c)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build budget comparison")
		return
	}

	rows, err := h.reportingService.BudgetComparison(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build budget comparison")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetComparisonResponse(month, rows))
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Total spend, transaction count, average transaction and the month's spend
// @Tags reports
// @Produce  json
// @Param   month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, err := monthQuery(c)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build summary")
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "", "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(month, summary))
}
