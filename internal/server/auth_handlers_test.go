package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brainly/internal/auth"
	"brainly/internal/models"
	"brainly/internal/service"
	"brainly/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthApp(t *testing.T, repo *MockUserRepository) (*fiber.App, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService(testSecret, 0)
	require.NoError(t, err)

	s := &Server{
		verifier:    tokens,
		userService: service.NewUserService(repo, tokens, validation.New(), bcrypt.MinCost),
	}
	app := fiber.New()
	app.Post("/signup", s.Signup)
	app.Post("/signin", s.Signin)
	return app, tokens
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(*MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Success",
			body: map[string]string{"username": "alice", "password": "Str0ng!Pass"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Username == "alice" && u.Password != "Str0ng!Pass"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Signed up successfully",
		},
		{
			name: "Username Taken",
			body: map[string]string{"username": "alice", "password": "Str0ng!Pass"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetByUsername", mock.Anything, "alice").Return(&models.User{ID: models.NewID(), Username: "alice"}, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "User already exists with this username",
		},
		{
			name: "Lost Insert Race",
			body: map[string]string{"username": "alice", "password": "Str0ng!Pass"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
				m.On("Create", mock.Anything, mock.Anything).Return(models.NewConflictError("User already exists with this username"))
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "User already exists with this username",
		},
		{
			name:           "Invalid Inputs",
			body:           map[string]string{"username": "al", "password": "weak"},
			setupMock:      func(*MockUserRepository) {},
			expectedStatus: http.StatusLengthRequired,
			expectedMsg:    "Error in inputs",
		},
		{
			name: "Store Failure",
			body: map[string]string{"username": "alice", "password": "Str0ng!Pass"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetByUsername", mock.Anything, "alice").Return(nil, models.NewInternalError(assert.AnError))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			app, _ := newAuthApp(t, repo)

			status, body := doJSON(t, app, http.MethodPost, "/signup", tt.body, "")
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, body["message"])
			if tt.expectedStatus == http.StatusLengthRequired {
				assert.NotEmpty(t, body["errors"])
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestSignup_InvalidBody(t *testing.T) {
	app, _ := newAuthApp(t, new(MockUserRepository))

	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid request body", body.Message)
}

func TestSignin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng!Pass"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.User{ID: models.NewID(), Username: "alice", Password: string(hash)}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		app, tokens := newAuthApp(t, repo)

		status, body := doJSON(t, app, http.MethodPost, "/signin", map[string]string{"username": "alice", "password": "Str0ng!Pass"}, "")
		require.Equal(t, http.StatusOK, status)

		token, _ := body["token"].(string)
		userID, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, userID)
	})

	t.Run("Unknown User", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", mock.Anything, "bob").Return(nil, nil)
		app, _ := newAuthApp(t, repo)

		status, body := doJSON(t, app, http.MethodPost, "/signin", map[string]string{"username": "bob", "password": "Str0ng!Pass"}, "")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "No User with this username exists", body["message"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		app, _ := newAuthApp(t, repo)

		status, body := doJSON(t, app, http.MethodPost, "/signin", map[string]string{"username": "alice", "password": "Wr0ng!Pass"}, "")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Wrong password entered", body["message"])
		_, hasToken := body["token"]
		assert.False(t, hasToken)
	})
}
