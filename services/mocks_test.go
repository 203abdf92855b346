package services

import (
	"context"
	"time"

	"handicraft-server/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	args := m.Called(ctx, user)
	res, _ := args.Get(0).(*models.InsertResult)
	return res, args.Error(1)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, email string, at time.Time) (*models.UpdateResult, error) {
	args := m.Called(ctx, email, at)
	res, _ := args.Get(0).(*models.UpdateResult)
	return res, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) (*models.User, error) {
	args := m.Called(ctx, email, profile)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) FindAll(ctx context.Context) ([]models.Shop, error) {
	args := m.Called(ctx)
	shops, _ := args.Get(0).([]models.Shop)
	return shops, args.Error(1)
}

func (m *mockShopRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	args := m.Called(ctx, id)
	shop, _ := args.Get(0).(*models.Shop)
	return shop, args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepo) FindByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	args := m.Called(ctx, email)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) (*models.InsertResult, error) {
	args := m.Called(ctx, order)
	res, _ := args.Get(0).(*models.InsertResult)
	return res, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendOrderConfirmation(order models.Order) error {
	return m.Called(order).Error(0)
}
