package service

import (
	"context"

	"brainly/internal/models"
	"brainly/internal/repository"
	"brainly/internal/validation"
)

// CreateContentInput is the body of a content create request.
type CreateContentInput struct {
	Link  string   `json:"link" validate:"required"`
	Type  string   `json:"type" validate:"required,contenttype"`
	Title string   `json:"title" validate:"required"`
	Tags  []string `json:"tags"`
}

// ContentService manages a user's saved content.
type ContentService struct {
	contents  repository.ContentRepository
	tagRepo   repository.TagRepository
	tags      *TagService
	validator *validation.Validator
}

// NewContentService returns a new ContentService.
func NewContentService(contents repository.ContentRepository, tagRepo repository.TagRepository, tags *TagService, v *validation.Validator) *ContentService {
	return &ContentService{contents: contents, tagRepo: tagRepo, tags: tags, validator: v}
}

// CreateContent validates the input, resolves its tags and stores it for userID.
func (s *ContentService) CreateContent(ctx context.Context, userID string, in CreateContentInput) (*models.Content, error) {
	if violations := s.validator.Validate(in); len(violations) > 0 {
		return nil, models.NewValidationError("Error in inputs", violations...)
	}

	tagIDs, err := s.tags.Normalize(ctx, in.Tags)
	if err != nil {
		return nil, err
	}

	content := &models.Content{
		Link:   in.Link,
		Type:   models.ContentType(in.Type),
		Title:  in.Title,
		UserID: userID,
		TagIDs: tagIDs,
	}
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// ListContent returns userID's content with tags expanded to titles.
func (s *ContentService) ListContent(ctx context.Context, userID string) ([]models.ContentDetail, error) {
	contents, err := s.contents.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, contents)
}

// DeleteContent removes contentID if userID owns it. A missing row and a
// row owned by someone else are reported the same way.
func (s *ContentService) DeleteContent(ctx context.Context, userID, contentID string) error {
	if contentID == "" {
		return models.NewValidationError("Content ID is required")
	}

	deleted, err := s.contents.DeleteOwned(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewForbiddenError("You don't own this content or it doesn't exist")
	}
	return nil
}

// expand replaces tag ids with tag records. Ids with no matching tag are
// dropped.
func (s *ContentService) expand(ctx context.Context, contents []models.Content) ([]models.ContentDetail, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, c := range contents {
		for _, id := range c.TagIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}

	out := make([]models.ContentDetail, 0, len(contents))
	for _, c := range contents {
		expanded := make([]models.Tag, 0, len(c.TagIDs))
		for _, id := range c.TagIDs {
			if t, ok := byID[id]; ok {
				expanded = append(expanded, t)
			}
		}
		out = append(out, models.ContentDetail{
			ID:        c.ID,
			Link:      c.Link,
			Type:      c.Type,
			Title:     c.Title,
			UserID:    c.UserID,
			Tags:      expanded,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}
