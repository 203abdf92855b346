package repositories

import (
	"context"
	"fmt"

	"handicraft-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUserEmail(ctx context.Context, email string) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.InsertResult, error)
}

type orderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(coll *mongo.Collection) OrderRepository {
	return &orderRepository{coll: coll}
}

func (r *orderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *orderRepository) FindByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

func (r *orderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return newInsertResult(res), nil
}
