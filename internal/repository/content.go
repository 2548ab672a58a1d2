package repository

import (
	"context"

	"brainly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository defines persistence operations for saved content.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	ListByUser(ctx context.Context, userID string) ([]models.Content, error)
	DeleteOwned(ctx context.Context, id, userID string) (bool, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository returns a new ContentRepository implementation.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Create stores content and its ordered tag references in one transaction.
func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(content).Error; err != nil {
			return err
		}
		if len(content.TagIDs) == 0 {
			return nil
		}

		rows := make([]models.ContentTag, len(content.TagIDs))
		for i, tagID := range content.TagIDs {
			rows[i] = models.ContentTag{ContentID: content.ID, Position: i, TagID: tagID}
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByUser returns the user's content oldest first with TagIDs populated
// in stored order.
func (r *contentRepository) ListByUser(ctx context.Context, userID string) ([]models.Content, error) {
	contents := []models.Content{}
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&contents).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for i := range contents {
		ids := make([]string, len(contents[i].Tags))
		for j, ct := range contents[i].Tags {
			ids[j] = ct.TagID
		}
		contents[i].TagIDs = ids
	}
	return contents, nil
}

// DeleteOwned removes the content only when userID owns it. It reports
// false when nothing matched.
func (r *contentRepository) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Content{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("content_id = ?", id).Delete(&models.ContentTag{}).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return deleted, nil
}
