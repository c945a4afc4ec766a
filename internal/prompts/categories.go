package prompts

import (
	"encoding/json"
	"slices"
)

// Category groups prompt definitions by the analysis concern they drive.
type Category string

// Valid prompt categories.
const (
	CategoryAnalysis    Category = "analysis"
	CategoryNegotiation Category = "negotiation"
	CategorySummary     Category = "summary"
	CategoryCustom      Category = "custom"
)

var categories = []Category{
	CategoryAnalysis,
	CategoryNegotiation,
	CategorySummary,
	CategoryCustom,
}

// Categories returns the list of valid prompt categories.
func Categories() []Category {
	return categories
}

// UnmarshalJSON validates that the decoded string is a known category value.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Category(raw)
	if !slices.Contains(categories, v) {
		return ErrInvalidCategory
	}
	*c = v
	return nil
}

// ParseCategory validates a string as a known prompt category.
// Returns ErrInvalidCategory if the value is not recognized.
func ParseCategory(s string) (Category, error) {
	v := Category(s)
	if !slices.Contains(categories, v) {
		return "", ErrInvalidCategory
	}
	return v, nil
}
