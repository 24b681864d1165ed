package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInvalidStatus is returned for a status outside the model's set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidReference means a referenced record (company, student,
	// application) does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrConflict wraps business-rule conflicts such as a second offer for
	// the same application.
	ErrConflict = errors.New("conflict")
)

// Store is the CRUD plumbing shared by every resource service.
type Store[M any] struct {
	DB       *gorm.DB
	Preloads []string
}

func (s *Store[M]) query(ctx context.Context) *gorm.DB {
	q := s.DB.WithContext(ctx)
	for _, p := range s.Preloads {
		q = q.Preload(p)
	}
	return q
}

// List returns all rows ordered by id, optionally narrowed by a Where
// condition and its arguments.
func (s *Store[M]) List(ctx context.Context, conds ...any) ([]M, error) {
	out := []M{}
	q := s.query(ctx).Order("id")
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns gorm.ErrRecordNotFound when id does not exist.
func (s *Store[M]) Get(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := s.query(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts m without touching its associations, then reloads it so
// the response carries the preloaded relations.
func (s *Store[M]) Create(ctx context.Context, m *M) error {
	return s.create(s.DB.WithContext(ctx), m)
}

func (s *Store[M]) create(tx *gorm.DB, m *M) error {
	if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	return s.reload(tx, m)
}

// Save writes every column of an already loaded row.
func (s *Store[M]) Save(ctx context.Context, m *M) error {
	db := s.DB.WithContext(ctx)
	if err := db.Omit(clause.Associations).Save(m).Error; err != nil {
		return err
	}
	return s.reload(db, m)
}

// reload refreshes m by its primary key, which gorm takes from m itself.
func (s *Store[M]) reload(tx *gorm.DB, m *M) error {
	q := tx.Session(&gorm.Session{NewDB: true})
	for _, p := range s.Preloads {
		q = q.Preload(p)
	}
	return q.First(m).Error
}

// Delete soft-deletes the row with the given id.
func (s *Store[M]) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateColumn sets a single column on the row with the given id.
func (s *Store[M]) UpdateColumn(ctx context.Context, id uint, column string, value any) (*M, error) {
	res := s.DB.WithContext(ctx).Model(new(M)).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.Get(ctx, id)
}

func exists[M any](tx *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := tx.Model(new(M)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// refError classifies a failed lookup of a row the request refers to. Only
// a missing row is the caller's mistake; anything else is passed through.
func refError(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrInvalidReference, what, id)
	}
	return err
}

func validStatus(allowed []string, status string) bool {
	return slices.Contains(allowed, status)
}
