package validation

import (
	"strings"
	"testing"

	"brainly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username" validate:"required,min=3,max=10"`
	Password string `json:"password" validate:"required,password"`
}

type contentShape struct {
	Link  string   `json:"link" validate:"required"`
	Type  string   `json:"type" validate:"required,contenttype"`
	Title string   `json:"title" validate:"required"`
	Tags  []string `json:"tags,omitempty"`
}

func fields(vs []models.FieldViolation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

func TestPasswordViolations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"Valid", "Str0ng!Pass", 0},
		{"Exactly Min Length", "Abcdef1!", 0},
		{"Exactly Max Length", "A" + strings.Repeat("b", 17) + "1!", 0},
		{"Too Short", "Ab1!", 1},
		{"Too Long", "A" + strings.Repeat("b", 18) + "1!", 1},
		{"No Upper", "str0ng!pass", 1},
		{"No Lower", "STR0NG!PASS", 1},
		{"No Digit", "Strong!Pass", 1},
		{"No Special", "Str0ngPass", 1},
		{"Empty", "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, PasswordViolations(tt.password), tt.want)
		})
	}
}

func TestValidate_Credentials(t *testing.T) {
	v := New()

	assert.Nil(t, v.Validate(credentials{Username: "alice", Password: "Str0ng!Pass"}))

	got := v.Validate(credentials{Username: "al", Password: "weak"})
	require.NotEmpty(t, got)
	assert.Contains(t, fields(got), "username")
	assert.Contains(t, fields(got), "password")

	for _, vio := range got {
		if vio.Field == "username" {
			assert.Equal(t, "must be at least 3 characters", vio.Message)
		}
	}
}

func TestValidate_PasswordListsEveryRule(t *testing.T) {
	v := New()
	got := v.Validate(credentials{Username: "alice", Password: "abcdefgh"})
	require.Len(t, got, 3)
	for _, vio := range got {
		assert.Equal(t, "password", vio.Field)
	}
}

func TestValidate_ContentType(t *testing.T) {
	v := New()

	assert.Nil(t, v.Validate(contentShape{Link: "http://x", Type: "twitter", Title: "t"}))
	assert.Nil(t, v.Validate(contentShape{Link: "http://x", Type: "youtube", Title: "t"}))

	got := v.Validate(contentShape{Link: "http://x", Type: "podcast", Title: "t"})
	require.Len(t, got, 1)
	assert.Equal(t, "type", got[0].Field)
	assert.Equal(t, "must be one of: twitter youtube", got[0].Message)

	got = v.Validate(contentShape{})
	assert.ElementsMatch(t, []string{"link", "type", "title"}, fields(got))
}
