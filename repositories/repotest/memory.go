// Package repotest provides in-memory repositories for handler and router
// tests. They follow the MongoDB semantics of the real repositories: email
// matches are exact, duplicates are kept, and single-document updates touch
// the first match in insertion order.
package repotest

import (
	"context"
	"sync"
	"time"

	"handicraft-server/models"
	"handicraft-server/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// New returns a Repositories aggregate backed by empty in-memory stores.
func New() (*repositories.Repositories, *Store) {
	s := &Store{}
	return &repositories.Repositories{
		Users:  &userRepo{s},
		Shops:  &shopRepo{s},
		Orders: &orderRepo{s},
	}, s
}

// Store holds the documents behind the in-memory repositories. Err, when
// set, is returned by every operation.
type Store struct {
	mu     sync.Mutex
	users  []models.User
	shops  []models.Shop
	orders []models.Order
	Err    error
}

// AddShop seeds a catalog entry and returns its id.
func (s *Store) AddShop(attrs bson.M) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	s.shops = append(s.shops, models.Shop{ID: id, Attributes: attrs})
	return id
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User{}, s.users...)
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order{}, s.orders...)
}

type userRepo struct{ s *Store }

func (r *userRepo) FindAll(ctx context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return append([]models.User{}, r.s.users...), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if i := r.indexOf(email); i >= 0 {
		user := r.s.users[i]
		return &user, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	user.ID = primitive.NewObjectID()
	r.s.users = append(r.s.users, *user)
	return &models.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, email string, at time.Time) (*models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	i := r.indexOf(email)
	if i < 0 {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	r.s.users[i].LastLoginAt = &at
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	i := r.indexOf(email)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}

	u := &r.s.users[i]
	if profile.Name != nil {
		u.Name = *profile.Name
	}
	if profile.Phone != nil {
		u.Phone = *profile.Phone
	}
	if profile.Image != nil {
		u.Image = *profile.Image
	}
	if profile.Address != nil {
		u.Address = *profile.Address
	}
	user := *u
	return &user, nil
}

// indexOf must be called with the store lock held.
func (r *userRepo) indexOf(email string) int {
	for i, u := range r.s.users {
		if u.Email == email {
			return i
		}
	}
	return -1
}

type shopRepo struct{ s *Store }

func (r *shopRepo) FindAll(ctx context.Context) ([]models.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return append([]models.Shop{}, r.s.shops...), nil
}

func (r *shopRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, shop := range r.s.shops {
		if shop.ID == id {
			found := shop
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type orderRepo struct{ s *Store }

func (r *orderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return append([]models.Order{}, r.s.orders...), nil
}

func (r *orderRepo) FindByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	orders := []models.Order{}
	for _, o := range r.s.orders {
		if o.UserEmail == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	order.ID = primitive.NewObjectID()
	r.s.orders = append(r.s.orders, *order)
	return &models.InsertResult{Acknowledged: true, InsertedID: order.ID}, nil
}
