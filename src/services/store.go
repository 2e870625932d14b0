package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when no record has the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned when a user write collides with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)

// store holds the CRUD plumbing shared by the entity services. Writes never
// touch associations; reads preload the listed ones.
type store[T any] struct {
	db       *gorm.DB
	name     string
	preloads []string
}

func newStore[T any](db *gorm.DB, name string, preloads ...string) store[T] {
	return store[T]{db: db, name: name, preloads: preloads}
}

func (s store[T]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

func (s store[T]) notFound(key interface{}) error {
	return fmt.Errorf("%s %v: %w", s.name, key, ErrNotFound)
}

// findAll returns every record ordered by id. The result is never nil.
func (s store[T]) findAll(ctx context.Context) ([]T, error) {
	return s.findWhere(ctx, nil)
}

// findWhere returns the records matching an equality condition, ordered by id.
// A nil cond matches everything.
func (s store[T]) findWhere(ctx context.Context, cond clause.Expression) ([]T, error) {
	records := []T{}
	q := s.query(ctx)
	if cond != nil {
		q = q.Where(cond)
	}
	if err := q.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s store[T]) findByID(ctx context.Context, id int) (*T, error) {
	var record T
	if err := s.query(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound(id)
		}
		return nil, err
	}
	return &record, nil
}

// findOne returns the first record matching cond.
func (s store[T]) findOne(ctx context.Context, cond clause.Expression, key interface{}) (*T, error) {
	var record T
	if err := s.query(ctx).Where(cond).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound(key)
		}
		return nil, err
	}
	return &record, nil
}

// create inserts record and fills in its generated id. The caller must have
// cleared any id taken from the request body.
func (s store[T]) create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

// replace overwrites every column of the existing record with the given id.
// record must already carry that id. No row is inserted when the id is unknown.
func (s store[T]) replace(ctx context.Context, id int, record *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.notFound(id)
			}
			return err
		}
		return tx.Omit(clause.Associations).Save(record).Error
	})
}

func (s store[T]) delete(ctx context.Context, id int) error {
	var record T
	result := s.db.WithContext(ctx).Delete(&record, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.notFound(id)
	}
	return nil
}

// byColumn builds an equality condition on a single column.
func byColumn(column string, value interface{}) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}
