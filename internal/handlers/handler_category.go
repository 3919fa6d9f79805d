package handlers

import (
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes exposes the fixed category list.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categories *domain.CategoryCatalog) {
	rg.GET("/categories", listCategories(categories))
}

// listCategories godoc
// @Summary List categories
// @Description The fixed set of spending categories with their chart colors
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.ListCategoriesResponse
// @Router /categories [get]
func listCategories(categories *domain.CategoryCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: categories.List()})
	}
}
