package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context) *models.CartResponse
	AddItem(ctx context.Context, productID int64) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, productID int64) *models.CartResponse
	UpdateQuantity(ctx context.Context, productID int64, quantity int) *models.CartResponse
	ClearCart(ctx context.Context) *models.CartResponse
	Checkout(ctx context.Context) (*models.CheckoutConfirmation, error)
}

type cartService struct {
	mu      sync.Mutex
	store   *cart.Store
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewCartService(store *cart.Store, c *catalog.Catalog) CartService {
	return &cartService{store: store, catalog: c, now: time.Now}
}

func (s *cartService) GetCart(ctx context.Context) *models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// AddItem resolves productID against the catalog; the store only ever holds
// catalog products.
func (s *cartService) AddItem(ctx context.Context, productID int64) (*models.CartResponse, error) {

	product, ok := s.catalog.Get(productID)
	if !ok {
		return nil, errors.NotFoundError("Product not found").WithDetail("id=" + strconv.FormatInt(productID, 10))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.AddToCart(product)

	entry, _ := s.store.Entry(productID)
	middleware.LoggerFromContext(ctx).Info("Item added to cart",
		slog.Int64("product_id", productID),
		slog.Int("quantity", entry.Quantity),
	)

	metrics.RecordCartOperation(metrics.OpAdd, s.store.TotalItems())

	return s.snapshot(), nil
}

func (s *cartService) RemoveItem(ctx context.Context, productID int64) *models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.RemoveFromCart(productID)

	middleware.LoggerFromContext(ctx).Info("Item removed from cart", slog.Int64("product_id", productID))
	metrics.RecordCartOperation(metrics.OpRemove, s.store.TotalItems())

	return s.snapshot()
}

// UpdateQuantity removes the entry for quantity <= 0 and ignores products that
// are not in the cart.
func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) *models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.UpdateQuantity(productID, quantity)

	middleware.LoggerFromContext(ctx).Info("Cart quantity updated",
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)
	metrics.RecordCartOperation(metrics.OpUpdateQuantity, s.store.TotalItems())

	return s.snapshot()
}

func (s *cartService) ClearCart(ctx context.Context) *models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearCart()

	middleware.LoggerFromContext(ctx).Info("Cart cleared")
	metrics.RecordCartOperation(metrics.OpClear, 0)

	return s.snapshot()
}

// Checkout confirms the purchase and empties the cart. Nothing is charged.
func (s *cartService) Checkout(ctx context.Context) (*models.CheckoutConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store.Len() == 0 {
		return nil, errors.EmptyCartError("Cannot checkout with empty cart")
	}

	total := s.store.TotalPrice()
	formatted := utils.FormatPrice(total)

	confirmation := &models.CheckoutConfirmation{
		ID:             uuid.New(),
		TotalItems:     s.store.TotalItems(),
		TotalPrice:     total,
		FormattedTotal: formatted,
		Message:        "Thank you for your purchase! Total: " + formatted,
		CreatedAt:      s.now(),
	}

	s.store.ClearCart()

	middleware.LoggerFromContext(ctx).Info("Checkout confirmed",
		slog.String("confirmation_id", confirmation.ID.String()),
		slog.Int("total_items", confirmation.TotalItems),
		slog.String("total", formatted),
	)
	metrics.RecordCheckout(total)

	return confirmation, nil
}

// caller holds s.mu
func (s *cartService) snapshot() *models.CartResponse {

	entries := s.store.Entries()

	items := make([]models.CartLine, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.CartLine{
			Product:  entry.Product,
			Quantity: entry.Quantity,
			Subtotal: entry.Subtotal(),
		})
	}

	total := s.store.TotalPrice()

	return &models.CartResponse{
		Items:          items,
		TotalItems:     s.store.TotalItems(),
		TotalPrice:     total,
		FormattedTotal: utils.FormatPrice(total),
	}
}
