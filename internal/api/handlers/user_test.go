package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfile(t *testing.T) {
	// Arrange
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	req := newTestRequest(http.MethodGet, "/api/v1/users/me", nil, nil)
	rr := httptest.NewRecorder()

	user := models.DefaultUser
	mockUserService.On("CurrentUser", mock.Anything).Return(&user).Once()

	// Act
	userHandler.Profile()(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope[models.User](t, rr)
	assert.Equal(t, models.DefaultUser, resp.Data)
	mockUserService.AssertExpectations(t)
}
