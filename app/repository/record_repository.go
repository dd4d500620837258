package repository

import (
	"context"

	"github.com/ManuelReschke/RazorSync/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordRepository implements Repository for any mirrored model
type recordRepository[T models.Record] struct {
	db *gorm.DB
}

// NewRecordRepository creates a repository backed by GORM for the model T
func NewRecordRepository[T models.Record](db *gorm.DB) Repository[T] {
	return &recordRepository[T]{db: db}
}

// FindByID returns gorm.ErrRecordNotFound when no row has the given id
func (r *recordRepository[T]) FindByID(ctx context.Context, id models.EntityID) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpsertByID inserts the record or overwrites every tracked column of the row
// with the same id. Associations are never written through this call.
func (r *recordRepository[T]) UpsertByID(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(record).Error
}

func (r *recordRepository[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	err := r.db.WithContext(ctx).Order("id").Find(&records).Error
	return records, err
}

func (r *recordRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var record T
	err := r.db.WithContext(ctx).Model(&record).Count(&count).Error
	return count, err
}
