package services

import (
	"context"
	"time"

	"handicraft-server/models"
	"handicraft-server/repositories"
)

type UserService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// CreateUser stores the sign-in record as given, extra fields included. A
// second sign-in with the same email creates a second document. createdAt is
// stamped only when the client did not send one.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.InsertResult, error) {
	user := &models.User{
		Email:       req.Email,
		Name:        req.Name,
		Phone:       req.Phone,
		Image:       req.Image,
		Address:     req.Address,
		CreatedAt:   req.CreatedAt,
		LastLoginAt: req.LastLoginAt,
		Attributes:  req.Extra,
	}
	if !req.HasCreatedAt() {
		now := s.now().UTC()
		user.CreatedAt = &now
	}
	return s.userRepo.Create(ctx, user)
}

func (s *UserService) UpdateLastLogin(ctx context.Context, req models.UpdateLastLoginRequest) (*models.UpdateResult, error) {
	at := s.now().UTC()
	if req.LastLoginAt != nil {
		at = req.LastLoginAt.UTC()
	}
	return s.userRepo.UpdateLastLogin(ctx, req.Email, at)
}

// UpdateProfile returns repositories.ErrNotFound when no user has the email.
// A request without any profile field only checks that the user exists.
func (s *UserService) UpdateProfile(ctx context.Context, email string, req models.UpdateProfileRequest) (*models.User, error) {
	profile := models.UserProfile{
		Name:    req.Name,
		Phone:   req.Phone,
		Image:   req.Image,
		Address: req.Address,
	}
	if profile.IsEmpty() {
		return s.userRepo.FindByEmail(ctx, email)
	}
	return s.userRepo.UpdateProfile(ctx, email, profile)
}
