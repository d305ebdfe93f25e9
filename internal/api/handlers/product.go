package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: utils.NewValidator()}
}

// ListProducts godoc
// @Summary  Current catalog view
// @Tags     products
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.ProductListResponse}
// @Router   /products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp := h.productService.ListProducts(r.Context())

		response.Success(w, http.StatusOK, resp)

	}
}

// GetProduct godoc
// @Summary  Get a product by id
// @Tags     products
// @Produce  json
// @Param    id  path int true "Product ID"
// @Success  200 {object} response.APIResponse{data=models.Product}
// @Failure  404 {object} response.APIResponse
// @Router   /products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Product lookup failed", slog.Int64("product_id", id))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

// GetCriteria godoc
// @Summary  Current filter criteria
// @Tags     filters
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.FilterCriteria}
// @Router   /products/filters [get]
func (h *ProductHandler) GetCriteria() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.productService.GetCriteria(r.Context()))

	}
}

// UpdateCriteria godoc
// @Summary  Change search, category, price range or sort
// @Tags     filters
// @Accept   json
// @Produce  json
// @Param    criteria body models.UpdateCriteriaRequest true "Fields to change"
// @Success  200 {object} response.APIResponse{data=models.FilterCriteria}
// @Failure  400 {object} response.APIResponse
// @Router   /products/filters [patch]
func (h *ProductHandler) UpdateCriteria() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateCriteriaRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		criteria := h.productService.UpdateCriteria(r.Context(), &req)

		response.Success(w, http.StatusOK, criteria)

	}
}

// ResetCriteria godoc
// @Summary  Reset category, price range and sort
// @Tags     filters
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.FilterCriteria}
// @Router   /products/filters/reset [post]
func (h *ProductHandler) ResetCriteria() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.productService.ResetCriteria(r.Context()))

	}
}

// ApplyPricePreset godoc
// @Summary  Apply a price range preset
// @Tags     filters
// @Accept   json
// @Produce  json
// @Param    preset body models.ApplyPresetRequest true "Preset"
// @Success  200 {object} response.APIResponse{data=models.FilterCriteria}
// @Failure  400 {object} response.APIResponse
// @Router   /products/filters/preset [post]
func (h *ProductHandler) ApplyPricePreset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ApplyPresetRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		criteria, err := h.productService.ApplyPricePreset(r.Context(), req.Preset)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, criteria)

	}
}

// ListCategories godoc
// @Summary  Categories, wildcard first
// @Tags     filters
// @Produce  json
// @Success  200 {object} response.APIResponse{data=[]string}
// @Router   /categories [get]
func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.productService.ListCategories(r.Context()))

	}
}

// ListSortOptions godoc
// @Summary  Sort keys with display labels
// @Tags     filters
// @Produce  json
// @Success  200 {object} response.APIResponse{data=[]models.SortOption}
// @Router   /sort-options [get]
func (h *ProductHandler) ListSortOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.productService.ListSortOptions(r.Context()))

	}
}
