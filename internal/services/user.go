package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type UserService interface {
	CurrentUser(ctx context.Context) *models.User
}

// userService serves the single static shopper identity.
type userService struct {
	user models.User
}

func NewUserService(user models.User) UserService {
	return &userService{user: user}
}

func (s *userService) CurrentUser(ctx context.Context) *models.User {
	user := s.user
	return &user
}
