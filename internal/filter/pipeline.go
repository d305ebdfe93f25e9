// Package filter derives the ordered product view from the catalog and the
// current search, category, price and sort criteria.
package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultMaxPrice = 1000

// DefaultCriteria matches every category and sorts by name.
func DefaultCriteria(maxPrice float64) models.FilterCriteria {
	return models.FilterCriteria{
		Category: models.CategoryAll,
		MinPrice: 0,
		MaxPrice: maxPrice,
		Sort:     models.SortByName,
	}
}

// IsWildcard reports whether category matches every product. The empty
// category is treated as a wildcard.
func IsWildcard(category models.Category) bool {
	return category == "" || strings.EqualFold(string(category), string(models.CategoryAll))
}

type Pipeline struct {
	locale language.Tag
}

// New returns a pipeline whose name ordering follows the collation rules of
// locale.
func New(locale language.Tag) *Pipeline {
	return &Pipeline{locale: locale}
}

// Apply filters products by criteria and sorts the matches. The input slice is
// not modified. The result is never nil, so an empty match is distinguishable
// from an absent result.
func (p *Pipeline) Apply(products []models.Product, criteria models.FilterCriteria) []models.Product {

	search := strings.ToLower(criteria.Search)

	result := make([]models.Product, 0, len(products))

	for _, product := range products {
		if matches(product, criteria, search) {
			result = append(result, product)
		}
	}

	slices.SortStableFunc(result, p.comparator(criteria.Sort))

	return result
}

func matches(product models.Product, criteria models.FilterCriteria, search string) bool {

	if search != "" &&
		!strings.Contains(strings.ToLower(product.Name), search) &&
		!strings.Contains(strings.ToLower(product.Description), search) {
		return false
	}

	if !IsWildcard(criteria.Category) && product.Category != criteria.Category {
		return false
	}

	return product.Price >= criteria.MinPrice && product.Price <= criteria.MaxPrice
}

func (p *Pipeline) comparator(key models.SortKey) func(a, b models.Product) int {
	switch key {
	case models.SortByPriceLow:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case models.SortByPriceHigh:
		return func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) }
	case models.SortByRating:
		return func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		// a Collator keeps internal buffers, one per sort
		collator := collate.New(p.locale)
		return func(a, b models.Product) int { return collator.CompareString(a.Name, b.Name) }
	}
}

// ValidSortKey reports whether key selects a dedicated comparator. Unknown
// keys still sort, by name.
func ValidSortKey(key models.SortKey) bool {
	switch key {
	case models.SortByName, models.SortByPriceLow, models.SortByPriceHigh, models.SortByRating:
		return true
	}

	return false
}
