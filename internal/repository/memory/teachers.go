package memory

import (
	"context"
	"database/sql"

	"github.com/noah-isme/school-records-api/internal/models"
)

// TeacherRepository stores teachers; teacherId is unique.
type TeacherRepository struct {
	s *Store
}

// Teachers returns the teacher collection of the store.
func (s *Store) Teachers() *TeacherRepository {
	return &TeacherRepository{s: s}
}

func cloneTeacher(t models.Teacher) models.Teacher {
	if t.Subjects != nil {
		t.Subjects = append([]string(nil), t.Subjects...)
	}
	t.UserID = cloneID(t.UserID)
	return t
}

// List returns teachers in insertion order.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.teachers.scan(nil)
	for i := range rows {
		rows[i] = cloneTeacher(rows[i])
	}
	return rows, nil
}

// Count returns the number of stored teachers.
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.teachers.len(), nil
}

// FindByID fetches a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	teacher, ok := r.s.teachers.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	teacher = cloneTeacher(teacher)
	return &teacher, nil
}

// FindByTeacherID fetches a teacher by business key.
func (r *TeacherRepository) FindByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.teacherIDs.keys[teacherID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	teacher, _ := r.s.teachers.get(id)
	teacher = cloneTeacher(teacher)
	return &teacher, nil
}

// Create inserts the teacher and assigns its id.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.teacherIDs.check(teacher.TeacherID, 0); err != nil {
		return err
	}
	teacher.ID = r.s.teachers.nextID()
	r.s.teachers.insert(teacher.ID, cloneTeacher(*teacher))
	r.s.teacherIDs.claim(teacher.TeacherID, teacher.ID)
	return nil
}

// Update replaces the stored teacher with the merged record.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.teachers.get(teacher.ID)
	if !ok {
		return sql.ErrNoRows
	}
	if err := r.s.teacherIDs.check(teacher.TeacherID, teacher.ID); err != nil {
		return err
	}
	r.s.teachers.replace(teacher.ID, cloneTeacher(*teacher))
	r.s.teacherIDs.move(existing.TeacherID, teacher.TeacherID, teacher.ID)
	return nil
}

// Delete removes the teacher and clears it from any class it was assigned to.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.teachers.get(id)
	if !ok {
		return false, nil
	}
	r.s.teachers.remove(id)
	r.s.teacherIDs.release(existing.TeacherID, id)
	for _, cid := range r.s.classes.ids(func(c models.Class) bool { return c.TeacherID != nil && *c.TeacherID == id }) {
		class, _ := r.s.classes.get(cid)
		class.TeacherID = nil
		r.s.classes.replace(cid, class)
	}
	return true, nil
}
