package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// RegisterBudgetRoutes registers routes related to budgets.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	registerBindingValidations()
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.upsertBudget)
		budgets.GET("/:budgetID", h.getBudget)
	}
}

// listBudgets godoc
// @Summary List budgets of a month
// @Tags budgets
// @Produce  json
// @Param   month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, err := monthQuery(c)
	if err != nil {
		respondError(c, logger, err, "", "Failed to list budgets")
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "", "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(month, budgets))
}

// getBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetEnvelope
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to retrieve budget"
// @Router /budgets/{budgetID} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	budgetID := c.Param("budgetID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("budget_id", budgetID))

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), budgetID)
	if err != nil {
		respondError(c, logger, err, "Budget not found", "Failed to retrieve budget")
		return
	}

	c.JSON(http.StatusOK, dto.BudgetEnvelope{Budget: dto.ToBudgetResponse(budget)})
}

// upsertBudget godoc
// @Summary Set a monthly budget
// @Description Creates the budget for (category, month) or replaces its amount. With strict=true an existing budget is a conflict.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.UpsertBudgetRequest true "Budget details"
// @Param   strict query bool false "Fail with 409 instead of replacing an existing budget"
// @Success 201 {object} dto.BudgetEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Budget already exists (strict mode)"
// @Failure 500 {object} map[string]string "Failed to save budget"
// @Router /budgets [post]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	strict := false
	if raw := c.Query("strict"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "strict must be a boolean"})
			return
		}
		strict = parsed
	}

	logger = logger.With(
		slog.String("category", string(req.Category)),
		slog.String("month", req.Month),
		slog.Bool("strict", strict))

	save := h.budgetService.UpsertBudget
	if strict {
		save = h.budgetService.CreateBudget
	}
	budget, err := save(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "", "Failed to save budget")
		return
	}

	c.JSON(http.StatusCreated, dto.BudgetEnvelope{Budget: dto.ToBudgetResponse(budget)})
}
