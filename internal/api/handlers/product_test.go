package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// setupProductTest -> creates common test dependencies
func setupProductTest() (*mocks.ProductService, *handlers.ProductHandler) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)
	return mockProductService, productHandler
}

var defaultCriteria = models.FilterCriteria{
	Category: models.CategoryAll,
	MaxPrice: 1000,
	Sort:     models.SortByName,
}

func TestListProducts(t *testing.T) {
	// Arrange
	mockProductService, productHandler := setupProductTest()
	req := newTestRequest(http.MethodGet, "/api/v1/products", nil, nil)
	rr := httptest.NewRecorder()

	listResp := &models.ProductListResponse{
		Products: []models.Product{yogaMat},
		Count:    1,
		Criteria: defaultCriteria,
	}
	mockProductService.On("ListProducts", mock.Anything).Return(listResp).Once()

	// Act
	productHandler.ListProducts()(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope[models.ProductListResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.Count)
	assert.Equal(t, "Yoga Mat", resp.Data.Products[0].Name)
	assert.Equal(t, models.SortByName, resp.Data.Criteria.Sort)
	mockProductService.AssertExpectations(t)
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Product Found", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodGet, "/api/v1/products/7", nil, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		product := yogaMat
		mockProductService.On("GetProduct", mock.Anything, int64(7)).Return(&product, nil).Once()

		// Act
		productHandler.GetProduct()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope[models.Product](t, rr)
		assert.Equal(t, yogaMat, resp.Data)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodGet, "/api/v1/products/99", nil, map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		mockProductService.On("GetProduct", mock.Anything, int64(99)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		productHandler.GetProduct()(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeNotFound)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Non Numeric ID", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodGet, "/api/v1/products/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		productHandler.GetProduct()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})
}

func TestGetCriteria(t *testing.T) {
	mockProductService, productHandler := setupProductTest()
	req := newTestRequest(http.MethodGet, "/api/v1/products/filters", nil, nil)
	rr := httptest.NewRecorder()

	mockProductService.On("GetCriteria", mock.Anything).Return(defaultCriteria).Once()

	productHandler.GetCriteria()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope[models.FilterCriteria](t, rr)
	assert.Equal(t, defaultCriteria, resp.Data)
	mockProductService.AssertExpectations(t)
}

func TestUpdateCriteria(t *testing.T) {
	t.Run("Success - Partial Update", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/filters", []byte(`{"category": "Electronics", "sort": "price-low"}`), nil)
		rr := httptest.NewRecorder()

		updated := defaultCriteria
		updated.Category = models.CategoryElectronics
		updated.Sort = models.SortByPriceLow

		mockProductService.On("UpdateCriteria", mock.Anything, mock.MatchedBy(func(r *models.UpdateCriteriaRequest) bool {
			return r.Category != nil && *r.Category == "Electronics" &&
				r.Sort != nil && *r.Sort == "price-low" &&
				r.Search == nil && r.MinPrice == nil && r.MaxPrice == nil
		})).Return(updated).Once()

		// Act
		productHandler.UpdateCriteria()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope[models.FilterCriteria](t, rr)
		assert.Equal(t, updated, resp.Data)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Unknown Category", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/filters", []byte(`{"category": "Toys"}`), nil)
		rr := httptest.NewRecorder()

		productHandler.UpdateCriteria()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeValidation)
		mockProductService.AssertNotCalled(t, "UpdateCriteria", mock.Anything, mock.Anything)
	})

	t.Run("Success - Uppercase Wildcard Accepted", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/filters", []byte(`{"category": "ALL"}`), nil)
		rr := httptest.NewRecorder()

		mockProductService.On("UpdateCriteria", mock.Anything, mock.MatchedBy(func(r *models.UpdateCriteriaRequest) bool {
			return r.Category != nil && *r.Category == "ALL"
		})).Return(defaultCriteria).Once()

		productHandler.UpdateCriteria()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Search Passed Through Verbatim", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/filters", []byte(`{"search": " mat"}`), nil)
		rr := httptest.NewRecorder()

		updated := defaultCriteria
		updated.Search = " mat"
		mockProductService.On("UpdateCriteria", mock.Anything, mock.MatchedBy(func(r *models.UpdateCriteriaRequest) bool {
			return r.Search != nil && *r.Search == " mat"
		})).Return(updated).Once()

		productHandler.UpdateCriteria()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope[models.FilterCriteria](t, rr)
		assert.Equal(t, " mat", resp.Data.Search)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Markup In Search", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/filters", []byte(`{"search": "<em>yoga</em>"}`), nil)
		rr := httptest.NewRecorder()

		productHandler.UpdateCriteria()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeEnvelope[models.FilterCriteria](t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Field Search must not contain markup")
		mockProductService.AssertNotCalled(t, "UpdateCriteria", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input - Negative Price", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/filters", []byte(`{"min_price": -5}`), nil)
		rr := httptest.NewRecorder()

		productHandler.UpdateCriteria()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "UpdateCriteria", mock.Anything, mock.Anything)
	})
}

func TestResetCriteria(t *testing.T) {
	mockProductService, productHandler := setupProductTest()
	req := newTestRequest(http.MethodPost, "/api/v1/products/filters/reset", nil, nil)
	rr := httptest.NewRecorder()

	mockProductService.On("ResetCriteria", mock.Anything).Return(defaultCriteria).Once()

	productHandler.ResetCriteria()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockProductService.AssertExpectations(t)
}

func TestApplyPricePreset(t *testing.T) {
	t.Run("Success - Preset Applied", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPost, "/api/v1/products/filters/preset", []byte(`{"preset": "50-150"}`), nil)
		rr := httptest.NewRecorder()

		applied := defaultCriteria
		applied.MinPrice, applied.MaxPrice = 50, 150
		mockProductService.On("ApplyPricePreset", mock.Anything, models.PricePreset50To150).Return(applied, nil).Once()

		productHandler.ApplyPricePreset()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope[models.FilterCriteria](t, rr)
		assert.Equal(t, 50.0, resp.Data.MinPrice)
		assert.Equal(t, 150.0, resp.Data.MaxPrice)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Unknown Preset", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodPost, "/api/v1/products/filters/preset", []byte(`{"preset": "free"}`), nil)
		rr := httptest.NewRecorder()

		productHandler.ApplyPricePreset()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "ApplyPricePreset", mock.Anything, mock.Anything)
	})
}

func TestListCategoriesAndSortOptions(t *testing.T) {
	t.Run("Success - Categories", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodGet, "/api/v1/categories", nil, nil)
		rr := httptest.NewRecorder()

		categories := append([]models.Category{models.CategoryAll}, models.Categories...)
		mockProductService.On("ListCategories", mock.Anything).Return(categories).Once()

		productHandler.ListCategories()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope[[]models.Category](t, rr)
		assert.Equal(t, categories, resp.Data)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Sort Options", func(t *testing.T) {
		mockProductService, productHandler := setupProductTest()
		req := newTestRequest(http.MethodGet, "/api/v1/sort-options", nil, nil)
		rr := httptest.NewRecorder()

		mockProductService.On("ListSortOptions", mock.Anything).Return(models.SortOptions).Once()

		productHandler.ListSortOptions()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope[[]models.SortOption](t, rr)
		assert.Equal(t, models.SortOptions, resp.Data)
		mockProductService.AssertExpectations(t)
	})
}
