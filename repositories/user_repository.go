package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"handicraft-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.InsertResult, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) (*models.UpdateResult, error)
	UpdateProfile(ctx context.Context, email string, profile models.UserProfile) (*models.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &userRepository{coll: coll}
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts unconditionally. Email uniqueness is not checked, so signing
// in twice through this path stores two documents.
func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return newInsertResult(res), nil
}

// UpdateLastLogin is a silent no-op when no user has the email; callers can
// tell from MatchedCount.
func (r *userRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) (*models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"lastLoginAt": at}},
	)
	if err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return newUpdateResult(res), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": profile},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return &user, nil
}
