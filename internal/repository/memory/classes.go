package memory

import (
	"context"
	"database/sql"

	"github.com/noah-isme/school-records-api/internal/models"
)

// ClassRepository stores classes; classCode is unique.
type ClassRepository struct {
	s *Store
}

// Classes returns the class collection of the store.
func (s *Store) Classes() *ClassRepository {
	return &ClassRepository{s: s}
}

func cloneClass(c models.Class) models.Class {
	c.TeacherID = cloneID(c.TeacherID)
	return c
}

// List returns classes in insertion order.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.classes.scan(nil)
	for i := range rows {
		rows[i] = cloneClass(rows[i])
	}
	return rows, nil
}

// Count returns the number of stored classes.
func (r *ClassRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.classes.len(), nil
}

// FindByID fetches a class by id.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	class, ok := r.s.classes.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	class = cloneClass(class)
	return &class, nil
}

// FindByClassCode fetches a class by business key.
func (r *ClassRepository) FindByClassCode(ctx context.Context, code string) (*models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.classCodes.keys[code]
	if !ok {
		return nil, sql.ErrNoRows
	}
	class, _ := r.s.classes.get(id)
	class = cloneClass(class)
	return &class, nil
}

// Create inserts the class and assigns its id.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.classCodes.check(class.ClassCode, 0); err != nil {
		return err
	}
	class.ID = r.s.classes.nextID()
	r.s.classes.insert(class.ID, cloneClass(*class))
	r.s.classCodes.claim(class.ClassCode, class.ID)
	return nil
}

// Update replaces the stored class with the merged record.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.classes.get(class.ID)
	if !ok {
		return sql.ErrNoRows
	}
	if err := r.s.classCodes.check(class.ClassCode, class.ID); err != nil {
		return err
	}
	r.s.classes.replace(class.ID, cloneClass(*class))
	r.s.classCodes.move(existing.ClassCode, class.ClassCode, class.ID)
	return nil
}

// Delete removes the class together with its enrollments, attendance and grades.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.classes.get(id)
	if !ok {
		return false, nil
	}
	r.s.classes.remove(id)
	r.s.classCodes.release(existing.ClassCode, id)
	r.s.dropDependents(func(classID, studentID int64) bool { return classID == id })
	return true, nil
}
