package repository

import (
	"context"
	"errors"

	"brainly/internal/models"

	"gorm.io/gorm"
)

// LinkRepository defines persistence operations for share links.
type LinkRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Link, error)
	GetByHash(ctx context.Context, hash string) (*models.Link, error)
	Create(ctx context.Context, link *models.Link) error
	DeleteByUserID(ctx context.Context, userID string) (hash string, err error)
}

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository returns a new LinkRepository implementation.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

// GetByUserID returns nil, nil when the user has no link.
func (r *linkRepository) GetByUserID(ctx context.Context, userID string) (*models.Link, error) {
	return r.first(ctx, "user_id = ?", userID)
}

// GetByHash returns nil, nil when no link has that hash.
func (r *linkRepository) GetByHash(ctx context.Context, hash string) (*models.Link, error) {
	return r.first(ctx, "hash = ?", hash)
}

func (r *linkRepository) first(ctx context.Context, query string, arg string) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).Where(query, arg).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

// Create fails with a conflict error when the user already has a link or
// the hash is taken.
func (r *linkRepository) Create(ctx context.Context, link *models.Link) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Share link already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteByUserID removes the user's link and returns its hash, or "" when
// there was none.
func (r *linkRepository) DeleteByUserID(ctx context.Context, userID string) (string, error) {
	var hash string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := tx.Where("user_id = ?", userID).First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&link).Error; err != nil {
			return err
		}
		hash = link.Hash
		return nil
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return hash, nil
}
