package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID string             `bson:"productId" json:"productId"`
	Quantity  Quantity           `bson:"quantity" json:"quantity"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	CreatedAt *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
