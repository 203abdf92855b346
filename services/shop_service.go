package services

import (
	"context"
	"errors"

	"handicraft-server/models"
	"handicraft-server/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidShopID = errors.New("invalid shop id")

type ShopService struct {
	shopRepo repositories.ShopRepository
}

func NewShopService(shopRepo repositories.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

func (s *ShopService) GetAllShops(ctx context.Context) ([]models.Shop, error) {
	return s.shopRepo.FindAll(ctx)
}

func (s *ShopService) GetShopByID(ctx context.Context, id string) (*models.Shop, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidShopID
	}
	return s.shopRepo.FindByID(ctx, objectID)
}
