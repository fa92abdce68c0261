package catalog

import (
	"testing"

	"github.com/maisonluxe/storefront/pkg/types"
)

func TestMatches(t *testing.T) {
	item := types.Product{
		Title:       "Fjallraven Backpack",
		Description: "Fits 15 inch laptops",
		Category:    "men's clothing",
	}

	cases := []struct {
		name     string
		category string
		query    string
		want     bool
	}{
		{name: "all category empty query", category: AllCategories, query: "", want: true},
		{name: "exact category", category: "men's clothing", query: "", want: true},
		{name: "other category", category: "jewelery", query: "", want: false},
		{name: "category is case sensitive", category: "Men's Clothing", query: "", want: false},
		{name: "title substring", category: AllCategories, query: "backpack", want: true},
		{name: "title substring mixed case", category: AllCategories, query: "BackPack", want: true},
		{name: "description substring", category: AllCategories, query: "laptops", want: true},
		{name: "no substring", category: AllCategories, query: "zirconium", want: false},
		{name: "both clauses must hold", category: "jewelery", query: "backpack", want: false},
		{name: "category with matching query", category: "men's clothing", query: "15 inch", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matches(item, tc.category, tc.query); got != tc.want {
				t.Fatalf("matches(%q, %q) = %v, want %v", tc.category, tc.query, got, tc.want)
			}
		})
	}
}

func TestFilterProductsKeepsCatalogOrder(t *testing.T) {
	items := []types.Product{
		{ID: 3, Title: "c", Category: "a"},
		{ID: 1, Title: "a", Category: "b"},
		{ID: 2, Title: "b", Category: "a"},
	}

	got := filterProducts(items, "a", "")
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 2 {
		t.Fatalf("expected received order preserved, got %v", got)
	}
}
