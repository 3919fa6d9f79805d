package domain

import (
	"slices"
)

// Category is one of the fixed spending categories.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryGroceries      Category = "Groceries"
	CategoryTransportation Category = "Transportation"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthMedical  Category = "Health & Medical"
	CategoryEducation      Category = "Education"
	CategoryShopping       Category = "Shopping"
	CategoryTravel         Category = "Travel"
	CategoryOther          Category = "Other"
)

// DefaultCategoryColor is used by charts for a category with no configured color.
const DefaultCategoryColor = "#8884d8"

var categories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryTransportation,
	CategoryBillsUtilities,
	CategoryEntertainment,
	CategoryHealthMedical,
	CategoryEducation,
	CategoryShopping,
	CategoryTravel,
	CategoryOther,
}

var categoryColors = map[Category]string{
	CategoryFoodDining:     "#8884d8",
	CategoryGroceries:      "#82ca9d",
	CategoryTransportation: "#ffc658",
	CategoryBillsUtilities: "#ff7300",
	CategoryEntertainment:  "#00c49f",
	CategoryHealthMedical:  "#0088fe",
	CategoryEducation:      "#ff8042",
	CategoryShopping:       "#8dd1e1",
	CategoryTravel:         "#00c49f",
	CategoryOther:          "#d084d0",
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// IsValid reports whether c belongs to the fixed category set.
func (c Category) IsValid() bool {
	return slices.Contains(categories, c)
}

// CategoryInfo pairs a category with its chart color.
type CategoryInfo struct {
	Name  Category `json:"name"`
	Color string   `json:"color"`
}

// CategoryCatalog is the read-only category/color table shared by the process.
// It is built once at startup and never mutated afterwards.
type CategoryCatalog struct {
	entries []CategoryInfo
	colors  map[Category]string
}

// NewCategoryCatalog builds the catalog from the fixed category set.
func NewCategoryCatalog() *CategoryCatalog {
	catalog := &CategoryCatalog{
		entries: make([]CategoryInfo, 0, len(categories)),
		colors:  make(map[Category]string, len(categories)),
	}
	for _, c := range categories {
		color := categoryColors[c]
		catalog.entries = append(catalog.entries, CategoryInfo{Name: c, Color: color})
		catalog.colors[c] = color
	}
	return catalog
}

// List returns a copy of all catalog entries.
func (c *CategoryCatalog) List() []CategoryInfo {
	return slices.Clone(c.entries)
}

// Color returns the chart color for a category, falling back to DefaultCategoryColor.
func (c *CategoryCatalog) Color(category Category) string {
	if color, ok := c.colors[category]; ok {
		return color
	}
	return DefaultCategoryColor
}
