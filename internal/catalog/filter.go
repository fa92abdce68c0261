package catalog

import (
	"strings"

	"github.com/maisonluxe/storefront/pkg/types"
)

// AllCategories is the sentinel selection that disables category filtering.
const AllCategories = "all"

// matches reports whether a product belongs in the filtered view. Category
// comparison is exact and case-sensitive; query matching is a case-insensitive
// substring test over title and description.
func matches(product types.Product, category, query string) bool {
	if category != AllCategories && product.Category != category {
		return false
	}
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(product.Title), needle) ||
		strings.Contains(strings.ToLower(product.Description), needle)
}

func filterProducts(items []types.Product, category, query string) []types.Product {
	filtered := make([]types.Product, 0, len(items))
	for _, item := range items {
		if matches(item, category, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
