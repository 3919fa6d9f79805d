package dto

import "github.com/SscSPs/expense_tracker/internal/core/domain"

// ListCategoriesResponse lists the fixed categories with their chart colors.
type ListCategoriesResponse struct {
	Categories []domain.CategoryInfo `json:"categories"`
}
