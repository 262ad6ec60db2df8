package models

import (
	"errors"
	"fmt"
)

var ErrCategoryUnknown = errors.New("category must be one of")

// Category is the label of one of the fixed transaction categories.
type Category string

const (
	CategoryHousing        Category = "Housing"
	CategoryTransportation Category = "Transportation"
	CategoryFood           Category = "Food & Dining"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryEducation      Category = "Education"
	CategorySavings        Category = "Savings"
	CategoryOther          Category = "Other"
)

// CategoryDetails describes one entry of the category table.
type CategoryDetails struct {
	ID    string   `json:"id" example:"food"`             // Stable identifier of the category
	Label Category `json:"label" example:"Food & Dining"` // Label stored on transactions
	Icon  string   `json:"icon" example:"🍽️"`             // Icon shown next to the category
}

// Categories is the closed set of categories a transaction can have,
// in display order.
var Categories = []CategoryDetails{
	{ID: "housing", Label: CategoryHousing, Icon: "🏠"},
	{ID: "transportation", Label: CategoryTransportation, Icon: "🚗"},
	{ID: "food", Label: CategoryFood, Icon: "🍽️"},
	{ID: "utilities", Label: CategoryUtilities, Icon: "💡"},
	{ID: "healthcare", Label: CategoryHealthcare, Icon: "🏥"},
	{ID: "entertainment", Label: CategoryEntertainment, Icon: "🎬"},
	{ID: "shopping", Label: CategoryShopping, Icon: "🛍️"},
	{ID: "education", Label: CategoryEducation, Icon: "📚"},
	{ID: "savings", Label: CategorySavings, Icon: "💰"},
	{ID: "other", Label: CategoryOther, Icon: "📌"},
}

// ParseCategory returns the Category for a label. Matching is case-sensitive.
func ParseCategory(label string) (Category, error) {
	c := Category(label)
	if !c.Valid() {
		return "", fmt.Errorf("%w %s", ErrCategoryUnknown, CategoryLabels())
	}

	return c, nil
}

// CategoryLabels returns all category labels in display order.
func CategoryLabels() []string {
	labels := make([]string, 0, len(Categories))
	for _, c := range Categories {
		labels = append(labels, string(c.Label))
	}

	return labels
}

// Valid reports whether the category is part of the category table.
func (c Category) Valid() bool {
	_, ok := c.details()
	return ok
}

// Icon returns the icon of the category, or an empty string for unknown categories.
func (c Category) Icon() string {
	d, _ := c.details()
	return d.Icon
}

func (c Category) details() (CategoryDetails, bool) {
	for _, d := range Categories {
		if d.Label == c {
			return d, true
		}
	}

	return CategoryDetails{}, false
}
