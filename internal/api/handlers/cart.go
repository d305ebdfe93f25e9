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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   utils.NewValidator(),
	}
}

// GetCart godoc
// @Summary  Cart contents and totals
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.CartResponse}
// @Router   /cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.cartService.GetCart(r.Context()))

	}
}

// AddItem godoc
// @Summary  Add one unit of a product
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    item body models.AddItemRequest true "Product to add"
// @Success  200 {object} response.APIResponse{data=models.CartResponse}
// @Failure  400 {object} response.APIResponse
// @Failure  404 {object} response.APIResponse
// @Router   /cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), req.ProductID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to add item to cart",
				slog.Int64("product_id", req.ProductID),
				slog.String("error", err.Error()),
			)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}

// UpdateQuantity godoc
// @Summary  Set the quantity of a cart entry; zero or less removes it
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    id       path int                          true "Product ID"
// @Param    quantity body models.UpdateQuantityRequest true "New quantity"
// @Success  200 {object} response.APIResponse{data=models.CartResponse}
// @Failure  400 {object} response.APIResponse
// @Router   /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.UpdateQuantity(r.Context(), id, *req.Quantity))

	}
}

// RemoveItem godoc
// @Summary  Remove a cart entry
// @Tags     cart
// @Produce  json
// @Param    id path int true "Product ID"
// @Success  200 {object} response.APIResponse{data=models.CartResponse}
// @Failure  400 {object} response.APIResponse
// @Router   /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveItem(r.Context(), id))

	}
}

// ClearCart godoc
// @Summary  Empty the cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.CartResponse}
// @Router   /cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.cartService.ClearCart(r.Context()))

	}
}

// Checkout godoc
// @Summary  Confirm the purchase and empty the cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.CheckoutConfirmation}
// @Failure  400 {object} response.APIResponse
// @Router   /cart/checkout [post]
func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		confirmation, err := h.cartService.Checkout(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, confirmation)

	}
}
