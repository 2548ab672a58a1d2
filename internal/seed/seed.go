// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"brainly/internal/auth"
	"brainly/internal/models"
	"brainly/internal/repository"
	"brainly/internal/service"
	"brainly/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "Seed!Pass1"

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	ContentPerUser int
	// ShareEvery enables a share link for every n-th user. Zero disables sharing.
	ShareEvery int
	// Seed makes generated data reproducible. Zero picks a random seed.
	Seed int64
}

// SeededUser describes one generated account.
type SeededUser struct {
	ID        string
	Username  string
	ShareHash string
}

// Seeder populates the database through the same services the API uses.
type Seeder struct {
	db      *gorm.DB
	users   repository.UserRepository
	account *service.UserService
	content *service.ContentService
	share   *service.ShareService
}

// NewSeeder wires a seeder over db. Caching is not used while seeding.
func NewSeeder(db *gorm.DB, jwtSecret string, bcryptCost int) (*Seeder, error) {
	tokens, err := auth.NewTokenService(jwtSecret, 0)
	if err != nil {
		return nil, err
	}
	v := validation.New()

	userRepo := repository.NewUserRepository(db, nil)
	tagRepo := repository.NewTagRepository(db)
	content := service.NewContentService(repository.NewContentRepository(db), tagRepo, service.NewTagService(tagRepo), v)

	return &Seeder{
		db:      db,
		users:   userRepo,
		account: service.NewUserService(userRepo, tokens, v, bcryptCost),
		content: content,
		share:   service.NewShareService(repository.NewLinkRepository(db), userRepo, content, nil, 0),
	}, nil
}

// ClearAll removes every row the application owns.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.ContentTag{}, &models.Content{}, &models.Link{}, &models.Tag{}, &models.User{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run creates opts.NumUsers users with generated content.
func (s *Seeder) Run(ctx context.Context, opts Options) ([]SeededUser, error) {
	faker := gofakeit.New(opts.Seed)
	tagPool := make([]string, 12)
	for i := range tagPool {
		tagPool[i] = strings.ToLower(faker.BuzzWord())
	}

	out := make([]SeededUser, 0, opts.NumUsers)
	for i := range opts.NumUsers {
		username := makeUsername(faker.FirstName(), i)
		err := s.account.Signup(ctx, service.Credentials{Username: username, Password: DefaultPassword})
		if err != nil {
			return out, fmt.Errorf("create user %s: %w", username, err)
		}

		user, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return out, fmt.Errorf("reload user %s: %w", username, err)
		}
		if user == nil {
			return out, fmt.Errorf("user %s missing after signup", username)
		}
		seeded := SeededUser{ID: user.ID, Username: username}

		for range opts.ContentPerUser {
			in := service.CreateContentInput{
				Link:  faker.URL(),
				Type:  faker.RandomString([]string{string(models.ContentTypeTwitter), string(models.ContentTypeYoutube)}),
				Title: faker.Sentence(4),
				Tags:  pickTags(faker, tagPool),
			}
			if _, err := s.content.CreateContent(ctx, user.ID, in); err != nil {
				return out, fmt.Errorf("create content for %s: %w", username, err)
			}
		}

		if opts.ShareEvery > 0 && i%opts.ShareEvery == 0 {
			hash, err := s.share.Enable(ctx, user.ID)
			if err != nil {
				return out, fmt.Errorf("share brain of %s: %w", username, err)
			}
			seeded.ShareHash = hash
		}

		out = append(out, seeded)
	}
	return out, nil
}

// makeUsername builds a unique name of at most 10 characters from a first
// name and the user's index.
func makeUsername(first string, i int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(first) {
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	suffix := fmt.Sprintf("%d", i)
	name := b.String()
	if limit := validation.UsernameMaxLength - len(suffix); len(name) > limit {
		name = name[:limit]
	}
	for len(name)+len(suffix) < validation.UsernameMinLength {
		name += "x"
	}
	return name + suffix
}

func pickTags(faker *gofakeit.Faker, pool []string) []string {
	n := faker.Number(0, 3)
	tags := make([]string, n)
	for i := range tags {
		tags[i] = faker.RandomString(pool)
	}
	return tags
}
