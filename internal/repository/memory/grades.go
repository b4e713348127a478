package memory

import (
	"context"
	"database/sql"

	"github.com/noah-isme/school-records-api/internal/models"
)

// GradeRepository stores grades.
type GradeRepository struct {
	s *Store
}

// Grades returns the grade collection of the store.
func (s *Store) Grades() *GradeRepository {
	return &GradeRepository{s: s}
}

// List returns grades matching the filter in insertion order.
func (r *GradeRepository) List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.grades.scan(filter.Matches), nil
}

// FindByID fetches a grade by id.
func (r *GradeRepository) FindByID(ctx context.Context, id int64) (*models.Grade, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	grade, ok := r.s.grades.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &grade, nil
}

// Create inserts the grade and assigns its id.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	grade.ID = r.s.grades.nextID()
	r.s.grades.insert(grade.ID, *grade)
	return nil
}

// Update replaces the stored grade with the merged record.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.grades.replace(grade.ID, *grade) {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the grade.
func (r *GradeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.grades.remove(id), nil
}
