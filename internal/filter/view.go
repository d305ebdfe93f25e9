package filter

import "github.com/aaravmahajanofficial/storefront/internal/models"

// View caches the derived product list for one catalog and the current
// criteria. It is not safe for concurrent use.
type View struct {
	pipeline *Pipeline
	products []models.Product
	criteria models.FilterCriteria

	result   []models.Product
	computed bool
}

func NewView(pipeline *Pipeline, products []models.Product, criteria models.FilterCriteria) *View {
	return &View{
		pipeline: pipeline,
		products: products,
		criteria: criteria,
	}
}

func (v *View) Criteria() models.FilterCriteria {
	return v.criteria
}

// SetCriteria invalidates the cached result when criteria differ from the
// current ones.
func (v *View) SetCriteria(criteria models.FilterCriteria) {
	if criteria == v.criteria {
		return
	}

	v.criteria = criteria
	v.result = nil
	v.computed = false
}

// Products returns the derived list, computing it if the cache is stale.
func (v *View) Products() []models.Product {
	if !v.computed {
		v.result = v.pipeline.Apply(v.products, v.criteria)
		v.computed = true
	}

	return clone(v.result)
}

// Cached returns the last computed list without computing. ok is false when
// nothing has been computed for the current criteria.
func (v *View) Cached() (products []models.Product, ok bool) {
	if !v.computed {
		return nil, false
	}

	return clone(v.result), true
}

func clone(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	return out
}
