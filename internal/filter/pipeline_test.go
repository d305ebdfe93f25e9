package filter_test

import (
	"math"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/filter"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func seedProducts(t *testing.T) []models.Product {
	t.Helper()

	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	return c.Products()
}

func productIDs(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func prices(products []models.Product) []float64 {
	out := make([]float64, 0, len(products))
	for _, p := range products {
		out = append(out, p.Price)
	}
	return out
}

func criteria(search string, category models.Category, lower, upper float64, sort models.SortKey) models.FilterCriteria {
	return models.FilterCriteria{Search: search, Category: category, MinPrice: lower, MaxPrice: upper, Sort: sort}
}

func TestApplyExamples(t *testing.T) {
	products := seedProducts(t)
	pipeline := filter.New(language.AmericanEnglish)

	t.Run("Electronics By Price Ascending", func(t *testing.T) {
		// Act
		got := pipeline.Apply(products, criteria("", models.CategoryElectronics, 0, 1000, models.SortByPriceLow))

		// Assert
		assert.Equal(t, []float64{59.99, 79.99, 299.99}, prices(got))
		assert.Equal(t, []int64{6, 1, 2}, productIDs(got))
	})

	t.Run("Search Yoga", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("yoga", "all", 0, 1000, models.SortByName))

		require.Len(t, got, 1)
		assert.Equal(t, "Yoga Mat", got[0].Name)
	})

	t.Run("Price Range Above Catalog Is Empty", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("", "all", 1000, 2000, models.SortByName))

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestApplyFullCatalog(t *testing.T) {
	products := seedProducts(t)
	pipeline := filter.New(language.AmericanEnglish)

	tests := []struct {
		sort models.SortKey
		want []int64
	}{
		{sort: models.SortByName, want: []int64{4, 3, 5, 2, 8, 1, 6, 7}},
		{sort: models.SortByPriceLow, want: []int64{7, 6, 1, 4, 5, 3, 8, 2}},
		{sort: models.SortByPriceHigh, want: []int64{2, 8, 3, 5, 4, 1, 6, 7}},
		{sort: models.SortByRating, want: []int64{5, 1, 3, 2, 7, 4, 6, 8}},
		{sort: "popularity", want: []int64{4, 3, 5, 2, 8, 1, 6, 7}},
		{sort: "", want: []int64{4, 3, 5, 2, 8, 1, 6, 7}},
	}

	for _, tc := range tests {
		t.Run(string(tc.sort), func(t *testing.T) {
			got := pipeline.Apply(products, criteria("", models.CategoryAll, 0, math.Inf(1), tc.sort))

			assert.Equal(t, tc.want, productIDs(got))
		})
	}
}

func TestApplySearch(t *testing.T) {
	products := seedProducts(t)
	pipeline := filter.New(language.AmericanEnglish)

	t.Run("Matches Name Or Description Case-Insensitively", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("WATER", models.CategoryAll, 0, 1000, models.SortByPriceLow))

		assert.Equal(t, []int64{6, 2}, productIDs(got))
	})

	t.Run("Matches Across Name And Description", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("wireless", models.CategoryAll, 0, 1000, models.SortByName))

		assert.Equal(t, []int64{1, 6}, productIDs(got))
	})

	t.Run("Combines With Category", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("premium", models.CategorySports, 0, 1000, models.SortByName))

		assert.Equal(t, []int64{7}, productIDs(got))
	})

	t.Run("No Match", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("telescope", models.CategoryAll, 0, 1000, models.SortByName))

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestApplyPriceRange(t *testing.T) {
	products := seedProducts(t)
	pipeline := filter.New(language.AmericanEnglish)

	t.Run("Bounds Are Inclusive", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("", models.CategoryAll, 59.99, 79.99, models.SortByPriceLow))

		assert.Equal(t, []int64{6, 1}, productIDs(got))
	})

	t.Run("Mid Range", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("", models.CategoryAll, 50, 150, models.SortByName))

		assert.Equal(t, []int64{4, 3, 5, 8, 1, 6}, productIDs(got))
	})

	t.Run("Inverted Range Is Empty", func(t *testing.T) {
		got := pipeline.Apply(products, criteria("", models.CategoryAll, 150, 50, models.SortByName))

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestApplyCategoryWildcard(t *testing.T) {
	products := seedProducts(t)
	pipeline := filter.New(language.AmericanEnglish)

	for _, category := range []models.Category{"All", "all", "ALL", ""} {
		got := pipeline.Apply(products, criteria("", category, 0, 1000, models.SortByName))
		assert.Len(t, got, 8, "category %q should match everything", category)
	}

	got := pipeline.Apply(products, criteria("", "electronics", 0, 1000, models.SortByName))
	assert.Empty(t, got, "category match is exact")
}

func TestApplyLocaleAwareNames(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Zebra Print Scarf", Price: 10},
		{ID: 2, Name: "Éclair Tray", Price: 10},
		{ID: 3, Name: "apple Corer", Price: 10},
		{ID: 4, Name: "Banana Hook", Price: 10},
		{ID: 5, Name: "Eagle Lamp", Price: 10},
	}

	got := filter.New(language.English).Apply(products, criteria("", models.CategoryAll, 0, 100, models.SortByName))

	assert.Equal(t, []int64{3, 4, 5, 2, 1}, productIDs(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := seedProducts(t)
	before := productIDs(products)

	filter.New(language.English).Apply(products, criteria("", models.CategoryAll, 0, 1000, models.SortByPriceHigh))

	assert.Equal(t, before, productIDs(products))
}

func TestDefaultCriteria(t *testing.T) {
	c := filter.DefaultCriteria(filter.DefaultMaxPrice)

	assert.Equal(t, "", c.Search)
	assert.Equal(t, models.CategoryAll, c.Category)
	assert.Equal(t, float64(0), c.MinPrice)
	assert.Equal(t, float64(1000), c.MaxPrice)
	assert.Equal(t, models.SortByName, c.Sort)
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, filter.ValidSortKey(models.SortByRating))
	assert.True(t, filter.ValidSortKey(models.SortByPriceHigh))
	assert.False(t, filter.ValidSortKey("newest"))
}
