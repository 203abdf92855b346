package services

import (
	"context"
	"testing"
	"time"

	"handicraft-server/models"
	"handicraft-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newTestUserService(repo *mockUserRepo) *UserService {
	s := NewUserService(repo)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestUserService_CreateUser(t *testing.T) {
	repo := &mockUserRepo{}
	s := newTestUserService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ana@example.com" &&
			u.Name == "Ana" &&
			u.CreatedAt != nil && u.CreatedAt.Equal(fixedNow)
	})).Return(&models.InsertResult{Acknowledged: true}, nil).Twice()

	req := models.CreateUserRequest{Email: "ana@example.com", Name: "Ana"}

	// no uniqueness check: the same sign-in twice reaches the store twice
	_, err := s.CreateUser(ctx, req)
	require.NoError(t, err)
	res, err := s.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	repo.AssertExpectations(t)
}

func TestUserService_CreateUserKeepsClientFields(t *testing.T) {
	ctx := context.Background()

	t.Run("client createdAt and extra fields are stored", func(t *testing.T) {
		repo := &mockUserRepo{}
		s := newTestUserService(repo)
		created := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

		repo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.CreatedAt != nil && u.CreatedAt.Equal(created) &&
				u.Attributes["photoURL"] == "https://img.example.com/ana.png"
		})).Return(&models.InsertResult{Acknowledged: true}, nil)

		_, err := s.CreateUser(ctx, models.CreateUserRequest{
			Email:     "ana@example.com",
			CreatedAt: &created,
			Extra:     bson.M{"photoURL": "https://img.example.com/ana.png"},
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unparseable createdAt is not overwritten", func(t *testing.T) {
		repo := &mockUserRepo{}
		s := newTestUserService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.CreatedAt == nil && u.Attributes["createdAt"] == "yesterday"
		})).Return(&models.InsertResult{Acknowledged: true}, nil)

		_, err := s.CreateUser(ctx, models.CreateUserRequest{
			Email: "ana@example.com",
			Extra: bson.M{"createdAt": "yesterday"},
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestUserService_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("uses provided timestamp", func(t *testing.T) {
		repo := &mockUserRepo{}
		s := newTestUserService(repo)
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		repo.On("UpdateLastLogin", ctx, "ana@example.com", at).
			Return(&models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		res, err := s.UpdateLastLogin(ctx, models.UpdateLastLoginRequest{Email: "ana@example.com", LastLoginAt: &at})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		repo.AssertExpectations(t)
	})

	t.Run("defaults to server clock", func(t *testing.T) {
		repo := &mockUserRepo{}
		s := newTestUserService(repo)

		repo.On("UpdateLastLogin", ctx, "ana@example.com", fixedNow).
			Return(&models.UpdateResult{Acknowledged: true}, nil)

		_, err := s.UpdateLastLogin(ctx, models.UpdateLastLoginRequest{Email: "ana@example.com"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("sets provided fields", func(t *testing.T) {
		repo := &mockUserRepo{}
		s := newTestUserService(repo)
		phone := "0123"

		repo.On("UpdateProfile", ctx, "ana@example.com", models.UserProfile{Phone: &phone}).
			Return(&models.User{Email: "ana@example.com", Phone: phone}, nil)

		user, err := s.UpdateProfile(ctx, "ana@example.com", models.UpdateProfileRequest{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "0123", user.Phone)
		repo.AssertExpectations(t)
	})

	t.Run("empty body only checks existence", func(t *testing.T) {
		repo := &mockUserRepo{}
		s := newTestUserService(repo)

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repositories.ErrNotFound)

		_, err := s.UpdateProfile(ctx, "ghost@example.com", models.UpdateProfileRequest{})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}
