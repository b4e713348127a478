// Package memory provides an in-process record store implementing the same
// repository contracts as the PostgreSQL repositories. All collections share one
// RWMutex: identifier assignment and insert happen under the write lock, lookups
// and scans take the read lock.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp activities.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store holds every collection of the school records in memory.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users       *table[models.User]
	students    *table[models.Student]
	teachers    *table[models.Teacher]
	classes     *table[models.Class]
	enrollments *table[models.ClassEnrollment]
	attendance  *table[models.Attendance]
	grades      *table[models.Grade]
	events      *table[models.Event]
	activities  *table[models.Activity]

	usernames   index
	emails      index
	studentIDs  index
	teacherIDs  index
	classCodes  index
	enrolled    index
	attendedDay index
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		users:       newTable[models.User](),
		students:    newTable[models.Student](),
		teachers:    newTable[models.Teacher](),
		classes:     newTable[models.Class](),
		enrollments: newTable[models.ClassEnrollment](),
		attendance:  newTable[models.Attendance](),
		grades:      newTable[models.Grade](),
		events:      newTable[models.Event](),
		activities:  newTable[models.Activity](),
		usernames:   index{field: "username"},
		emails:      index{field: "email"},
		studentIDs:  index{field: "studentId"},
		teacherIDs:  index{field: "teacherId"},
		classCodes:  index{field: "classCode"},
		enrolled:    index{field: "studentId", what: "student is already enrolled in this class"},
		attendedDay: index{field: "date", what: "attendance already recorded for this student, class and date"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// table is one collection keyed by surrogate id. order keeps insertion order for listings.
type table[T any] struct {
	seq   int64
	rows  map[int64]T
	order []int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

// nextID reserves the next identifier; identifiers are never reused.
func (t *table[T]) nextID() int64 {
	t.seq++
	return t.seq
}

func (t *table[T]) insert(id int64, row T) {
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) replace(id int64, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// scan returns rows in insertion order that satisfy match (all rows when match is nil).
func (t *table[T]) scan(match func(T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) ids(match func(T) bool) []int64 {
	var out []int64
	for _, id := range t.order {
		if match(t.rows[id]) {
			out = append(out, id)
		}
	}
	return out
}

func (t *table[T]) len() int {
	return len(t.rows)
}

// index maps a unique key value to the id owning it.
type index struct {
	field string
	what  string
	keys  map[string]int64
}

// check fails when key is owned by a record other than id.
func (ix *index) check(key string, id int64) error {
	if key == "" {
		return nil
	}
	if owner, ok := ix.keys[key]; ok && owner != id {
		message := ix.what
		if message == "" {
			message = fmt.Sprintf("%s %q already used", ix.field, key)
		}
		return appErrors.Clone(appErrors.ErrDuplicateKey, message)
	}
	return nil
}

func (ix *index) claim(key string, id int64) {
	if key == "" {
		return
	}
	if ix.keys == nil {
		ix.keys = make(map[string]int64)
	}
	ix.keys[key] = id
}

func (ix *index) release(key string, id int64) {
	if owner, ok := ix.keys[key]; ok && owner == id {
		delete(ix.keys, key)
	}
}

// move re-points an owner from oldKey to newKey; callers check newKey first.
func (ix *index) move(oldKey, newKey string, id int64) {
	if oldKey == newKey {
		return
	}
	ix.release(oldKey, id)
	ix.claim(newKey, id)
}

// sortNewestFirst orders activities by timestamp descending, newest id first on ties.
func sortNewestFirst(rows []models.Activity) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Timestamp.Equal(rows[j].Timestamp) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].Timestamp.After(rows[j].Timestamp)
	})
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
