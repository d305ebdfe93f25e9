package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile godoc
// @Summary  Current shopper
// @Tags     users
// @Produce  json
// @Success  200 {object} response.APIResponse{data=models.User}
// @Router   /users/me [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.userService.CurrentUser(r.Context()))

	}
}
