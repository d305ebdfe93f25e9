package filter_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/filter"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestView(t *testing.T) {
	products := seedProducts(t)
	pipeline := filter.New(language.AmericanEnglish)

	t.Run("Not Computed Until Read", func(t *testing.T) {
		// Arrange
		view := filter.NewView(pipeline, products, filter.DefaultCriteria(1000))

		// Act
		cached, ok := view.Cached()

		// Assert
		assert.False(t, ok)
		assert.Nil(t, cached)
	})

	t.Run("Empty Result Is Computed", func(t *testing.T) {
		view := filter.NewView(pipeline, products, criteria("", models.CategoryAll, 1000, 2000, models.SortByName))

		got := view.Products()
		assert.Empty(t, got)

		cached, ok := view.Cached()
		assert.True(t, ok)
		assert.NotNil(t, cached)
		assert.Empty(t, cached)
	})

	t.Run("Changed Criteria Invalidate", func(t *testing.T) {
		view := filter.NewView(pipeline, products, filter.DefaultCriteria(1000))
		require.Len(t, view.Products(), 8)

		next := view.Criteria()
		next.Category = models.CategoryFashion
		view.SetCriteria(next)

		_, ok := view.Cached()
		assert.False(t, ok)
		assert.Equal(t, []int64{3, 8}, productIDs(view.Products()))
		assert.Equal(t, models.CategoryFashion, view.Criteria().Category)
	})

	t.Run("Identical Criteria Keep Cache", func(t *testing.T) {
		view := filter.NewView(pipeline, products, filter.DefaultCriteria(1000))
		view.Products()

		view.SetCriteria(filter.DefaultCriteria(1000))

		_, ok := view.Cached()
		assert.True(t, ok)
	})

	t.Run("Returned Slice Is A Copy", func(t *testing.T) {
		view := filter.NewView(pipeline, products, filter.DefaultCriteria(1000))
		got := view.Products()
		got[0].Name = "changed"

		again := view.Products()
		assert.Equal(t, "Coffee Maker", again[0].Name)
	})
}
