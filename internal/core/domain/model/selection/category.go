package selection

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Category identifies one independently persisted sub-selection of an order.
// Each (order, category) pair holds four role-scoped row id sets.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryGeneral is the primary checkbox set of the artifact view.
	CategoryGeneral

	// CategoryParts is the parts sub-selection.
	CategoryParts

	// CategoryMaterial is the material sub-selection.
	CategoryMaterial
)

// getValidCategoryStrings returns a map of only valid Category values.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryGeneral:  "general",
		CategoryParts:    "parts",
		CategoryMaterial: "material",
	}
}

// CategoryFromString parses a category from its wire representation.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire representation of the category. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getValidCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
