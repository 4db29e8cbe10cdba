package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adventureawaits/api/internal/helpers"
	"github.com/adventureawaits/api/internal/models"
)

// RegisterInput is the signup payload. Password never touches the user
// document; only its bcrypt hash is stored.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (us *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.NewValidationError("body", err.Error())
	}
	if !helpers.IsPasswordStrong(input.Password) {
		return nil, models.NewValidationError("password", "password must contain upper and lower case letters, a number and a special character")
	}

	hash, err := helpers.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Name:         helpers.StringTrim(input.Name),
		Email:        helpers.StringTrim(input.Email),
		Phone:        helpers.StringTrim(input.Phone),
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return us.userRepo.CreateUser(ctx, user)
}

// Login checks credentials and returns the user together with a signed
// access token. A missing account and a wrong password report the same
// error.
func (us *UserService) Login(ctx context.Context, input LoginInput) (*models.User, string, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, "", models.NewValidationError("body", err.Error())
	}

	user, err := us.userRepo.GetUserByEmail(ctx, helpers.StringTrim(input.Email))
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", models.ErrUnauthorized
	}
	if err != nil {
		return nil, "", err
	}

	if !helpers.CheckPassword(user.PasswordHash, input.Password) {
		return nil, "", models.ErrUnauthorized
	}

	token, err := helpers.SignToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (us *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return us.userRepo.GetUserByID(ctx, oid)
}
