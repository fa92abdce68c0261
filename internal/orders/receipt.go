package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maisonluxe/storefront/internal/cart"
	"github.com/shopspring/decimal"
)

const numberPrefix = "LX"

// LineItem is the order echo's view of one cart line.
type LineItem struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

// Receipt is the client-local order echo produced at checkout. Nothing is
// charged or persisted; the receipt only reflects the cart at the moment of
// checkout for a confirmation view.
type Receipt struct {
	Number string          `json:"order_number"`
	Date   time.Time       `json:"date"`
	Items  []LineItem      `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// NewReceipt builds the echo from the given cart lines.
func NewReceipt(lines []cart.Line, now time.Time) Receipt {
	items := make([]LineItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		items = append(items, LineItem{
			ID:       line.Product.ID,
			Title:    line.Product.Title,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
			Image:    line.Product.Image,
		})
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return Receipt{
		Number: newNumber(),
		Date:   now,
		Items:  items,
		Total:  total,
	}
}

func newNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", numberPrefix, raw[:8])
}
