package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const userColumns = "id, username, password, role, full_name, email, avatar"

// UserRepository handles persistence of user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, "SELECT "+userColumns+" FROM users ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername fetches a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE username = $1 LIMIT 1", username); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user and assigns its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (username, password, role, full_name, email, avatar)
        VALUES (:username, :password, :role, :full_name, :email, :avatar) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, user, "create user")
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// Update writes the merged user record.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	const query = `UPDATE users SET username = :username, password = :password, role = :role, full_name = :full_name, email = :email, avatar = :avatar WHERE id = :id`
	return updateOne(ctx, r.db, query, user, "update user")
}

// Delete removes a user; teacher links are cleared by the foreign key.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "users", id)
}
