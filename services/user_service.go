package services

import (
	"context"

	"PlateTrail/models"
	"PlateTrail/storage"
)

type UserService struct {
	Store storage.Store
}

// NewUserService initializes UserService with the store
func NewUserService(store storage.Store) *UserService {
	return &UserService{Store: store}
}

//profile service

func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.Store.GetUserByID(ctx, userID)
}
