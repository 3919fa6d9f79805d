package domain_test

import (
	"testing"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	assert.Len(t, domain.Categories(), 10)
	for _, c := range domain.Categories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, domain.Category("food & dining").IsValid())
	assert.False(t, domain.Category("").IsValid())
}

func TestCategoryCatalog(t *testing.T) {
	catalog := domain.NewCategoryCatalog()

	entries := catalog.List()
	assert.Len(t, entries, 10)
	assert.Equal(t, domain.CategoryFoodDining, entries[0].Name)
	assert.Equal(t, "#82ca9d", catalog.Color(domain.CategoryGroceries))
	assert.Equal(t, domain.DefaultCategoryColor, catalog.Color("Unknown"))

	// mutating the returned slice must not leak into the catalog
	entries[0].Color = "#000000"
	assert.Equal(t, "#8884d8", catalog.List()[0].Color)
}
