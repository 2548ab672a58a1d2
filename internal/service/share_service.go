package service

import (
	"context"
	"fmt"

	"brainly/internal/cache"
	"brainly/internal/middleware"
	"brainly/internal/models"
	"brainly/internal/observability"
	"brainly/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	shareHashAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
	defaultShareHashSize = 10
	maxEnableAttempts    = 3
)

// revokedOwner is cached under a disabled hash.
const revokedOwner = ""

// SharedBrain is the public view of a user's collection.
type SharedBrain struct {
	Username string                 `json:"username"`
	Content  []models.ContentDetail `json:"content"`
}

// ShareService manages public share links.
type ShareService struct {
	links      repository.LinkRepository
	users      repository.UserRepository
	contents   *ContentService
	cache      *cache.Cache
	hashLength int
	newHash    func(size int) (string, error)
}

// NewShareService returns a new ShareService. c may be nil.
func NewShareService(links repository.LinkRepository, users repository.UserRepository, contents *ContentService, c *cache.Cache, hashLength int) *ShareService {
	if hashLength <= 0 {
		hashLength = defaultShareHashSize
	}
	return &ShareService{
		links:      links,
		users:      users,
		contents:   contents,
		cache:      c,
		hashLength: hashLength,
		newHash: func(size int) (string, error) {
			return gonanoid.Generate(shareHashAlphabet, size)
		},
	}
}

// Enable returns the user's share hash, minting one if the user has none.
// Calling it again returns the same hash.
func (s *ShareService) Enable(ctx context.Context, userID string) (string, error) {
	for range maxEnableAttempts {
		existing, err := s.links.GetByUserID(ctx, userID)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return existing.Hash, nil
		}

		hash, err := s.newHash(s.hashLength)
		if err != nil {
			return "", models.NewInternalError(err)
		}

		err = s.links.Create(ctx, &models.Link{Hash: hash, UserID: userID})
		if err == nil {
			// Clears a revocation marker left by an earlier link with this hash.
			s.cache.Invalidate(ctx, cache.ShareKey(hash))
			return hash, nil
		}
		// A conflict means a concurrent enable won or the hash collided;
		// the next pass sorts out which.
		if !models.IsCode(err, models.CodeConflict) {
			return "", err
		}
	}
	return "", models.NewInternalError(fmt.Errorf("share link for user %s not created after %d attempts", userID, maxEnableAttempts))
}

// Disable removes the user's share link. It is a no-op when there is none.
// The cached owner is replaced by a revocation marker for ShareTTL so a
// Resolve that read the row before the delete cannot cache it again.
func (s *ShareService) Disable(ctx context.Context, userID string) error {
	hash, err := s.links.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if hash == "" || !s.cache.Enabled() {
		return nil
	}
	if err := s.cache.SetJSON(ctx, cache.ShareKey(hash), revokedOwner, cache.ShareTTL); err != nil {
		middleware.Logger.ErrorContext(ctx, "share link revocation not cached", "hash", hash, "error", err)
		s.cache.Invalidate(ctx, cache.ShareKey(hash))
	}
	return nil
}

// Resolve returns the collection published under hash.
func (s *ShareService) Resolve(ctx context.Context, hash string) (*SharedBrain, error) {
	var ownerID string
	err := s.cache.Aside(ctx, cache.ShareKey(hash), &ownerID, cache.ShareTTL, func() error {
		link, err := s.links.GetByHash(ctx, hash)
		if err != nil {
			return err
		}
		if link == nil {
			return models.NewNotFoundError("Sorry Incorrect Url")
		}
		ownerID = link.UserID
		return nil
	})
	if err == nil && ownerID == revokedOwner {
		err = models.NewNotFoundError("Sorry Incorrect Url")
	}
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			observability.ShareResolutions.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			observability.ShareResolutions.WithLabelValues("integrity").Inc()
			return nil, models.NewIntegrityError("user not found, error should ideally not come", err)
		}
		return nil, err
	}

	content, err := s.contents.ListContent(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	observability.ShareResolutions.WithLabelValues("found").Inc()
	return &SharedBrain{Username: user.Username, Content: content}, nil
}
