package repositories

import (
	"context"
	"errors"
	"fmt"

	"handicraft-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ShopRepository interface {
	FindAll(ctx context.Context) ([]models.Shop, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error)
}

type shopRepository struct {
	coll *mongo.Collection
}

func NewShopRepository(coll *mongo.Collection) ShopRepository {
	return &shopRepository{coll: coll}
}

func (r *shopRepository) FindAll(ctx context.Context) ([]models.Shop, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find shops: %w", err)
	}

	shops := []models.Shop{}
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf("decode shops: %w", err)
	}
	return shops, nil
}

func (r *shopRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	var shop models.Shop
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&shop)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find shop by id: %w", err)
	}
	return &shop, nil
}
