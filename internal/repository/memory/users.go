package memory

import (
	"context"
	"database/sql"

	"github.com/noah-isme/school-records-api/internal/models"
)

// UserRepository stores user accounts; username and email are unique.
type UserRepository struct {
	s *Store
}

// Users returns the user collection of the store.
func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

// List returns users in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.scan(nil), nil
}

// FindByID fetches a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

// FindByUsername fetches a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.usernames.keys[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	user, _ := r.s.users.get(id)
	return &user, nil
}

// Create inserts the user and assigns its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.usernames.check(user.Username, 0); err != nil {
		return err
	}
	if err := r.s.emails.check(user.Email, 0); err != nil {
		return err
	}
	user.ID = r.s.users.nextID()
	r.s.users.insert(user.ID, *user)
	r.s.usernames.claim(user.Username, user.ID)
	r.s.emails.claim(user.Email, user.ID)
	return nil
}

// Update replaces the stored user with the merged record.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users.get(user.ID)
	if !ok {
		return sql.ErrNoRows
	}
	if err := r.s.usernames.check(user.Username, user.ID); err != nil {
		return err
	}
	if err := r.s.emails.check(user.Email, user.ID); err != nil {
		return err
	}
	r.s.users.replace(user.ID, *user)
	r.s.usernames.move(existing.Username, user.Username, user.ID)
	r.s.emails.move(existing.Email, user.Email, user.ID)
	return nil
}

// Delete removes the user and unlinks any teacher profile referencing it.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users.get(id)
	if !ok {
		return false, nil
	}
	r.s.users.remove(id)
	r.s.usernames.release(existing.Username, id)
	r.s.emails.release(existing.Email, id)
	for _, tid := range r.s.teachers.ids(func(t models.Teacher) bool { return t.UserID != nil && *t.UserID == id }) {
		teacher, _ := r.s.teachers.get(tid)
		teacher.UserID = nil
		r.s.teachers.replace(tid, teacher)
	}
	return true, nil
}
