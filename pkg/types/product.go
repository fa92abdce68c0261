package types

import "github.com/shopspring/decimal"

// Rating is the aggregate review score delivered with each catalog product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog record as received from the remote collaborator.
// The stores never construct or mutate one; cart lines copy it whole at
// insertion so later catalog refreshes cannot rewrite an existing line.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}
