package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/filter"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type ProductService interface {
	ListProducts(ctx context.Context) *models.ProductListResponse
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetCriteria(ctx context.Context) models.FilterCriteria
	SetSearch(ctx context.Context, search string) models.FilterCriteria
	SetCategory(ctx context.Context, category models.Category) models.FilterCriteria
	SetPriceRange(ctx context.Context, minPrice, maxPrice float64) models.FilterCriteria
	SetSort(ctx context.Context, key models.SortKey) models.FilterCriteria
	UpdateCriteria(ctx context.Context, req *models.UpdateCriteriaRequest) models.FilterCriteria
	ResetCriteria(ctx context.Context) models.FilterCriteria
	ApplyPricePreset(ctx context.Context, preset models.PricePreset) (models.FilterCriteria, error)
	ListCategories(ctx context.Context) []models.Category
	ListSortOptions(ctx context.Context) []models.SortOption
}

// productService owns the shopper's criteria and the derived catalog view.
type productService struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	view     *filter.View
	defaults models.FilterCriteria
}

// NewProductService starts the view at defaults.
func NewProductService(c *catalog.Catalog, pipeline *filter.Pipeline, defaults models.FilterCriteria) ProductService {
	return &productService{
		catalog:  c,
		view:     filter.NewView(pipeline, c.Products(), defaults),
		defaults: defaults,
	}
}

func (s *productService) ListProducts(ctx context.Context) *models.ProductListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, ok := s.view.Cached()
	if !ok {
		products = s.view.Products()
		metrics.ObserveFilterResults(len(products))

		middleware.LoggerFromContext(ctx).Debug("Catalog view recomputed", slog.Int("count", len(products)))
	}

	return &models.ProductListResponse{
		Products: products,
		Count:    len(products),
		Criteria: s.view.Criteria(),
	}
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, ok := s.catalog.Get(id)
	if !ok {
		return nil, errors.NotFoundError("Product not found").WithDetail("id=" + strconv.FormatInt(id, 10))
	}

	return &product, nil
}

func (s *productService) GetCriteria(ctx context.Context) models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view.Criteria()
}

// SetSearch stores the text as given; it is matched as a literal substring.
func (s *productService) SetSearch(ctx context.Context, search string) models.FilterCriteria {
	return s.update(ctx, func(c *models.FilterCriteria) {
		c.Search = search
	})
}

func (s *productService) SetCategory(ctx context.Context, category models.Category) models.FilterCriteria {
	return s.update(ctx, func(c *models.FilterCriteria) {
		c.Category = normalizeCategory(category)
	})
}

// SetPriceRange stores the bounds as given. An inverted range is kept and
// simply matches nothing.
func (s *productService) SetPriceRange(ctx context.Context, minPrice, maxPrice float64) models.FilterCriteria {
	return s.update(ctx, func(c *models.FilterCriteria) {
		c.MinPrice = minPrice
		c.MaxPrice = maxPrice
	})
}

func (s *productService) SetSort(ctx context.Context, key models.SortKey) models.FilterCriteria {
	if !filter.ValidSortKey(key) {
		middleware.LoggerFromContext(ctx).Warn("Unknown sort key, ordering by name", slog.String("sort", string(key)))
	}

	return s.update(ctx, func(c *models.FilterCriteria) {
		c.Sort = key
	})
}

func (s *productService) UpdateCriteria(ctx context.Context, req *models.UpdateCriteriaRequest) models.FilterCriteria {

	if req.Sort != nil && !filter.ValidSortKey(models.SortKey(*req.Sort)) {
		middleware.LoggerFromContext(ctx).Warn("Unknown sort key, ordering by name", slog.String("sort", *req.Sort))
	}

	return s.update(ctx, func(c *models.FilterCriteria) {
		if req.Search != nil {
			c.Search = *req.Search
		}
		if req.Category != nil {
			c.Category = normalizeCategory(models.Category(*req.Category))
		}
		if req.MinPrice != nil {
			c.MinPrice = *req.MinPrice
		}
		if req.MaxPrice != nil {
			c.MaxPrice = *req.MaxPrice
		}
		if req.Sort != nil {
			c.Sort = models.SortKey(*req.Sort)
		}
	})
}

// ResetCriteria restores category, price range and sort. The search text is
// kept.
func (s *productService) ResetCriteria(ctx context.Context) models.FilterCriteria {
	return s.update(ctx, func(c *models.FilterCriteria) {
		search := c.Search
		*c = s.defaults
		c.Search = search
	})
}

func (s *productService) ApplyPricePreset(ctx context.Context, preset models.PricePreset) (models.FilterCriteria, error) {

	minPrice, maxPrice, ok := preset.PriceRange()
	if !ok {
		return models.FilterCriteria{}, errors.AddValidationError("preset", "unknown price preset "+string(preset))
	}

	return s.SetPriceRange(ctx, minPrice, maxPrice), nil
}

func (s *productService) ListCategories(ctx context.Context) []models.Category {
	return append([]models.Category{models.CategoryAll}, models.Categories...)
}

func (s *productService) ListSortOptions(ctx context.Context) []models.SortOption {
	return append([]models.SortOption(nil), models.SortOptions...)
}

func (s *productService) update(ctx context.Context, apply func(c *models.FilterCriteria)) models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.view.Criteria()
	apply(&next)
	s.view.SetCriteria(next)

	middleware.LoggerFromContext(ctx).Info("Filter criteria updated",
		slog.String("search", next.Search),
		slog.String("category", string(next.Category)),
		slog.Float64("min_price", next.MinPrice),
		slog.Float64("max_price", next.MaxPrice),
		slog.String("sort", string(next.Sort)),
	)

	return next
}

func normalizeCategory(category models.Category) models.Category {
	if filter.IsWildcard(category) {
		return models.CategoryAll
	}

	return category
}
