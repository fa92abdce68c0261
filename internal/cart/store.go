package cart

import (
	"sync"

	"github.com/maisonluxe/storefront/pkg/types"
	"github.com/shopspring/decimal"
)

// Line is one cart entry: a product snapshot taken at insertion time plus a
// quantity. Identity is the product id; at most one line exists per product.
type Line struct {
	Product  types.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Store owns the cart lines and the drawer visibility flag. Lines keep their
// insertion order for display. Every mutation is total: unknown ids are
// no-ops and non-positive quantities remove, so callers never see an error.
type Store struct {
	mu     sync.Mutex
	order  []int
	lines  map[int]Line
	isOpen bool
}

// NewStore returns an empty, closed cart.
func NewStore() *Store {
	return &Store{
		lines: make(map[int]Line),
	}
}

// AddItem merges the product into the cart: an existing line gains one unit,
// otherwise a quantity-1 line is appended at the end of display order.
func (s *Store) AddItem(product types.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line, ok := s.lines[product.ID]; ok {
		line.Quantity++
		s.lines[product.ID] = line
		return
	}
	s.lines[product.ID] = Line{Product: product, Quantity: 1}
	s.order = append(s.order, product.ID)
}

// RemoveItem deletes the line for the product id; absent ids are a no-op.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// SetQuantity sets an existing line to the given quantity. Zero or negative
// removes the line. Quantity never materializes a line on its own: only
// AddItem creates lines, so an unknown id is a no-op.
func (s *Store) SetQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	line, ok := s.lines[productID]
	if !ok {
		return
	}
	line.Quantity = quantity
	s.lines[productID] = line
}

func (s *Store) removeLocked(productID int) {
	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Used when a checkout echo consumes the lines.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[int]Line)
	s.order = nil
}

func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

// IsOpen reports the drawer visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Lines returns the cart lines in display order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, s.lines[id])
	}
	return lines
}

// Subtotal is the price-weighted quantity sum over all lines, kept at full
// decimal precision; rounding happens only at presentation time.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, id := range s.order {
		line := s.lines[id]
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount is the total number of units across all lines, not the number of
// distinct lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}
