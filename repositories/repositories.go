package repositories

import (
	"handicraft-server/config"

	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	Users  UserRepository
	Shops  ShopRepository
	Orders OrderRepository
}

func New(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(db.Collection(config.UsersCollection)),
		Shops:  NewShopRepository(db.Collection(config.ShopsCollection)),
		Orders: NewOrderRepository(db.Collection(config.OrdersCollection)),
	}
}
