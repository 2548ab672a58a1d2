package service

import (
	"context"
	"strings"

	"brainly/internal/models"
	"brainly/internal/observability"
	"brainly/internal/repository"

	"golang.org/x/sync/errgroup"
)

const defaultTagConcurrency = 8

// TagService resolves tag references to tag ids.
type TagService struct {
	tags        repository.TagRepository
	concurrency int
}

// NewTagService returns a new TagService.
func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags, concurrency: defaultTagConcurrency}
}

// Normalize maps each reference to a tag id, keeping input order.
// Identifier-shaped references are returned unchanged without checking that
// the tag exists. Everything else is a title and is found or created.
// Lookups run concurrently and the first failure cancels the rest.
func (s *TagService) Normalize(ctx context.Context, refs []string) ([]string, error) {
	out := make([]string, len(refs))
	if len(refs) == 0 {
		return out, nil
	}

	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			return nil, models.NewValidationError("Error in inputs", models.FieldViolation{
				Field:   "tags",
				Message: "tag titles must not be blank",
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, ref := range refs {
		if models.IsID(ref) {
			out[i] = ref
			continue
		}
		g.Go(func() error {
			tag, created, err := s.tags.FindOrCreate(gctx, ref)
			if err != nil {
				return err
			}
			if created {
				observability.TagsCreated.Inc()
			}
			out[i] = tag.ID
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
