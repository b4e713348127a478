package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-records-api/internal/models"
)

const entityUser = "user"

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateUserRequest holds payload for creating user accounts.
type CreateUserRequest struct {
	Username string          `json:"username" validate:"required,min=3"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,oneof=admin teacher staff"`
	FullName string          `json:"fullName" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Avatar   string          `json:"avatar"`
}

// UpdateUserRequest is a partial update; a supplied password is re-hashed.
type UpdateUserRequest struct {
	Username *string          `json:"username" validate:"omitempty,min=3"`
	Password *string          `json:"password" validate:"omitempty,min=6"`
	Role     *models.UserRole `json:"role" validate:"omitempty,oneof=admin teacher staff"`
	FullName *string          `json:"fullName" validate:"omitempty,min=1"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Avatar   *string          `json:"avatar"`
}

// Apply merges the supplied non-secret fields onto user.
func (r UpdateUserRequest) Apply(user *models.User) {
	setString(&user.Username, r.Username)
	if r.Role != nil {
		user.Role = *r.Role
	}
	setString(&user.FullName, r.FullName)
	setString(&user.Email, r.Email)
	setString(&user.Avatar, r.Avatar)
}

// UserService manages user accounts.
type UserService struct {
	repo       userRepository
	activities activityRecorder
	validator  *validator.Validate
	logger     *zap.Logger
	hashCost   int
}

// NewUserService constructs the user service.
func NewUserService(repo userRepository, activities activityRecorder, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		repo:       repo,
		activities: defaultRecorder(activities),
		validator:  defaultValidator(validate),
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list users")
	}
	return users, nil
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityUser)
	}
	return user, nil
}

// Create registers a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := validatePayload(s.validator, req, "invalid user payload"); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, internalError(err, "failed to hash password")
	}
	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Role:     req.Role,
		FullName: req.FullName,
		Email:    req.Email,
		Avatar:   req.Avatar,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, writeError(err, "failed to create user")
	}
	s.activities.Record(ctx, entityUser, actionCreated, user.FullName+" ("+user.Username+")")
	return user, nil
}

// Update merges the supplied fields into an existing user.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error) {
	if err := validatePayload(s.validator, req, "invalid user payload"); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, entityUser)
	}
	req.Apply(user)
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.hashCost)
		if err != nil {
			return nil, internalError(err, "failed to hash password")
		}
		user.Password = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		if isNotFound(err) {
			return nil, notFound(entityUser)
		}
		return nil, writeError(err, "failed to update user")
	}
	s.activities.Record(ctx, entityUser, actionUpdated, user.FullName+" ("+user.Username+")")
	return user, nil
}

// Delete removes a user; linked teachers keep existing without an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, entityUser)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return internalError(err, "failed to delete user")
	}
	if !removed {
		return notFound(entityUser)
	}
	s.activities.Record(ctx, entityUser, actionDeleted, user.FullName+" ("+user.Username+")")
	return nil
}
