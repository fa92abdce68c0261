package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/maisonluxe/storefront/internal/cart"
	"github.com/maisonluxe/storefront/internal/catalog"
	"github.com/maisonluxe/storefront/internal/orders"
	pkgerrors "github.com/maisonluxe/storefront/pkg/errors"
	"github.com/maisonluxe/storefront/pkg/logger"
	"github.com/maisonluxe/storefront/pkg/metrics"
	"github.com/maisonluxe/storefront/pkg/types"
	"go.uber.org/multierr"
)

type catalogClient interface {
	Products(ctx context.Context) ([]types.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Product(ctx context.Context, id int) (types.Product, error)
}

// Service composes the two stores. It is the only place that touches both:
// presentation dispatches here, and the cross-store coupling (adding to the
// cart also opens the drawer) lives here rather than in either store.
type Service struct {
	client  catalogClient
	catalog *catalog.Store
	cart    *cart.Store
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	now     func() time.Time
}

// ServiceParams wires the service dependencies.
type ServiceParams struct {
	Client  catalogClient
	Catalog *catalog.Store
	Cart    *cart.Store
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// NewService builds the composition layer backed by the provided stack.
func NewService(params ServiceParams) (*Service, error) {
	if params.Client == nil {
		return nil, fmt.Errorf("catalog client required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &Service{
		client:  params.Client,
		catalog: params.Catalog,
		cart:    params.Cart,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     time.Now,
	}, nil
}

// Catalog exposes the read-only catalog projection.
func (s *Service) Catalog() catalog.State {
	return s.catalog.Snapshot()
}

// CartLines exposes the cart lines in display order.
func (s *Service) CartLines() []cart.Line {
	return s.cart.Lines()
}

// CartState bundles the cart projection with its derived totals.
type CartState struct {
	Lines     []cart.Line `json:"lines"`
	IsOpen    bool        `json:"is_open"`
	Subtotal  string      `json:"subtotal"`
	ItemCount int         `json:"item_count"`
}

// Cart exposes the read-only cart projection. The subtotal is rounded to two
// places here, at the presentation boundary; the store keeps full precision.
func (s *Service) Cart() CartState {
	return CartState{
		Lines:     s.cart.Lines(),
		IsOpen:    s.cart.IsOpen(),
		Subtotal:  s.cart.Subtotal().StringFixed(2),
		ItemCount: s.cart.ItemCount(),
	}
}

// RequestProducts initiates the asynchronous catalog fetch. Loading is
// entered before this returns; the resolution is applied as a later action
// when the fetch completes. Callers do not block and are not handed the
// outcome; they observe it through the store status.
func (s *Service) RequestProducts(ctx context.Context) {
	s.catalog.BeginLoad()
	go func() {
		_ = s.resolveProducts(ctx)
	}()
}

// RequestCategories initiates the asynchronous vocabulary fetch. Its failure
// is independent of the product fetch lifecycle and only logs.
func (s *Service) RequestCategories(ctx context.Context) {
	go func() {
		_ = s.resolveCategories(ctx)
	}()
}

// RefreshCatalog runs both fetches to completion and reports every failure.
// Used by consumers that want the outcome in hand, such as the HTTP refresh
// route and startup warm-up.
func (s *Service) RefreshCatalog(ctx context.Context) error {
	s.catalog.BeginLoad()
	return multierr.Combine(
		s.resolveProducts(ctx),
		s.resolveCategories(ctx),
	)
}

func (s *Service) resolveProducts(ctx context.Context) error {
	start := s.now()
	products, err := s.client.Products(ctx)
	if err != nil {
		s.metrics.ObserveFetch("products", "failed", s.now().Sub(start))
		s.catalog.FailLoad(fetchMessage(err, "failed to fetch products"))
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.products.fetch_failed", err)
		}
		return err
	}

	s.metrics.ObserveFetch("products", "succeeded", s.now().Sub(start))
	s.catalog.FinishLoad(products)
	if s.logg != nil {
		ctx = s.logg.WithField(ctx, "count", len(products))
		s.logg.Info(ctx, "catalog.products.loaded")
	}
	return nil
}

func (s *Service) resolveCategories(ctx context.Context) error {
	start := s.now()
	categories, err := s.client.Categories(ctx)
	if err != nil {
		s.metrics.ObserveFetch("categories", "failed", s.now().Sub(start))
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.categories.fetch_failed", err)
		}
		return err
	}

	s.metrics.ObserveFetch("categories", "succeeded", s.now().Sub(start))
	s.catalog.SetCategories(categories)
	if s.logg != nil {
		ctx = s.logg.WithField(ctx, "count", len(categories))
		s.logg.Info(ctx, "catalog.categories.loaded")
	}
	return nil
}

// SetCategory selects the active category filter.
func (s *Service) SetCategory(category string) {
	s.catalog.SetCategory(category)
}

// SetSearchQuery sets the active search text.
func (s *Service) SetSearchQuery(query string) {
	s.catalog.SetSearchQuery(query)
}

// ProductDetail fetches a single product from the collaborator for the
// detail view. The catalog store is not involved.
func (s *Service) ProductDetail(ctx context.Context, id int) (types.Product, error) {
	if id <= 0 {
		return types.Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}
	return s.client.Product(ctx, id)
}

// AddToCart merges the product into the cart and opens the drawer. This is
// the one behavioral coupling between the two stores.
func (s *Service) AddToCart(ctx context.Context, product types.Product) {
	s.AddToCartQuantity(ctx, product, 1)
}

// AddToCartQuantity applies quantity repeated unit adds, then opens the
// drawer. Non-positive quantities clamp to a single unit.
func (s *Service) AddToCartQuantity(ctx context.Context, product types.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := 0; i < quantity; i++ {
		s.cart.AddItem(product)
	}
	s.cart.Open()
	s.metrics.IncCartMutation("add_item")
	if s.logg != nil {
		ctx = s.logg.WithProductID(ctx, product.ID)
		s.logg.Info(ctx, "cart.item_added")
	}
}

// RemoveFromCart deletes the line; unknown ids are a no-op.
func (s *Service) RemoveFromCart(productID int) {
	s.cart.RemoveItem(productID)
	s.metrics.IncCartMutation("remove_item")
}

// SetCartQuantity updates a line quantity with removal semantics at zero.
func (s *Service) SetCartQuantity(productID, quantity int) {
	s.cart.SetQuantity(productID, quantity)
	s.metrics.IncCartMutation("set_quantity")
}

func (s *Service) OpenCart()   { s.cart.Open() }
func (s *Service) CloseCart()  { s.cart.Close() }
func (s *Service) ToggleCart() { s.cart.Toggle() }

// Checkout builds the client-local order echo from the current cart, then
// empties the cart and closes the drawer. An empty cart cannot check out.
func (s *Service) Checkout(ctx context.Context) (orders.Receipt, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return orders.Receipt{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	receipt := orders.NewReceipt(lines, s.now())
	s.cart.Clear()
	s.cart.Close()
	s.metrics.IncCheckout()
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_number": receipt.Number,
			"items":        len(receipt.Items),
		})
		s.logg.Info(ctx, "checkout.completed")
	}
	return receipt, nil
}

func fetchMessage(err error, fallback string) string {
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		return typed.Message()
	}
	if err != nil {
		return err.Error()
	}
	return fallback
}
