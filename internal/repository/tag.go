package repository

import (
	"context"
	"errors"

	"brainly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	FindOrCreate(ctx context.Context, title string) (tag *models.Tag, created bool, err error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreate inserts the title with ON CONFLICT DO NOTHING and reads the
// surviving row back when another writer got there first.
func (r *tagRepository) FindOrCreate(ctx context.Context, title string) (*models.Tag, bool, error) {
	tag := models.Tag{Title: title}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true}).
		Create(&tag)
	if res.Error != nil {
		return nil, false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		return &tag, true, nil
	}

	var existing models.Tag
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, models.NewIntegrityError("tag vanished after conflicting insert", err)
		}
		return nil, false, models.NewInternalError(err)
	}
	return &existing, false, nil
}

// GetByIDs returns the tags that exist among ids, in no particular order.
func (r *tagRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
