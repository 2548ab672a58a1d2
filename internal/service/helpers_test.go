package service

import (
	"testing"

	"brainly/internal/auth"
	"brainly/internal/cache"
	"brainly/internal/repository"
	"brainly/internal/testutil"
	"brainly/internal/validation"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-for-testing-only-32chars"

type services struct {
	db      *gorm.DB
	cache   *cache.Cache
	redis   *miniredis.Miniredis
	users   *UserService
	tags    *TagService
	content *ContentService
	share   *ShareService
	tokens  *auth.TokenService
}

func newServices(t *testing.T) *services {
	t.Helper()
	db := testutil.NewDB(t)
	client, mr := testutil.NewRedis(t)
	c := cache.New(client)

	tokens, err := auth.NewTokenService(testSecret, 0)
	require.NoError(t, err)
	v := validation.New()

	userRepo := repository.NewUserRepository(db, c)
	tagRepo := repository.NewTagRepository(db)
	tags := NewTagService(tagRepo)
	content := NewContentService(repository.NewContentRepository(db), tagRepo, tags, v)

	return &services{
		db:      db,
		cache:   c,
		redis:   mr,
		users:   NewUserService(userRepo, tokens, v, bcrypt.MinCost),
		tags:    tags,
		content: content,
		share:   NewShareService(repository.NewLinkRepository(db), userRepo, content, c, 10),
		tokens:  tokens,
	}
}

func (s *services) signup(t *testing.T, username string) string {
	t.Helper()
	creds := Credentials{Username: username, Password: "Str0ng!Pass"}
	require.NoError(t, s.users.Signup(t.Context(), creds))
	token, err := s.users.Signin(t.Context(), creds)
	require.NoError(t, err)
	userID, err := s.tokens.Verify(token)
	require.NoError(t, err)
	return userID
}
