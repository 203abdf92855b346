package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// CreateUserRequest is the sign-in record posted by the client. Fields
// outside the profile are carried in Extra and stored as sent.
type CreateUserRequest struct {
	Email       string
	Name        string
	Phone       string
	Image       string
	Address     string
	CreatedAt   *time.Time
	LastLoginAt *time.Time
	Extra       bson.M
}

func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	var u User
	if err := u.UnmarshalJSON(data); err != nil {
		return err
	}
	delete(u.Attributes, "_id")

	*r = CreateUserRequest{
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		Image:       u.Image,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
		Extra:       u.Attributes,
	}
	return nil
}

// HasCreatedAt reports whether the client sent a createdAt of any shape.
func (r CreateUserRequest) HasCreatedAt() bool {
	if r.CreatedAt != nil {
		return true
	}
	_, ok := r.Extra["createdAt"]
	return ok
}

type UpdateLastLoginRequest struct {
	Email       string     `json:"email"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

func (r *UpdateLastLoginRequest) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	body, ok := v.(bson.M)
	if !ok && v != nil {
		return errors.New("body must be a JSON object")
	}

	*r = UpdateLastLoginRequest{}
	if email, present := body["email"]; present && email != nil {
		s, ok := email.(string)
		if !ok {
			return errors.New("email must be a string")
		}
		r.Email = s
	}
	if at, present := body["lastLoginAt"]; present && at != nil {
		t, ok := ParseTimestamp(at)
		if !ok {
			return fmt.Errorf("lastLoginAt %v is not a recognizable time", at)
		}
		r.LastLoginAt = &t
	}
	return nil
}

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Image   *string `json:"image"`
	Address *string `json:"address"`
}

// CreateOrderRequest references are stored as given; nothing checks that the
// product or the user exist.
type CreateOrderRequest struct {
	ProductID string   `json:"productId"`
	Quantity  Quantity `json:"quantity"`
	UserEmail string   `json:"userEmail"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
