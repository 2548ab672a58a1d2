package service

import (
	"context"
	"testing"

	"brainly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_CreateAndList(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")

	created, err := s.content.CreateContent(ctx, alice, CreateContentInput{
		Link:  "http://x",
		Type:  "twitter",
		Title: "t",
		Tags:  []string{"music", "news"},
	})
	require.NoError(t, err)
	require.Len(t, created.TagIDs, 2)
	assert.True(t, models.IsID(created.ID))
	assert.Equal(t, alice, created.UserID)

	list, err := s.content.ListContent(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Tags, 2)
	assert.Equal(t, "music", list[0].Tags[0].Title)
	assert.Equal(t, created.TagIDs[0], list[0].Tags[0].ID)
	assert.Equal(t, "news", list[0].Tags[1].Title)
}

func TestContentService_UnknownTagIDDroppedOnList(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")

	dangling := models.NewID()
	created, err := s.content.CreateContent(ctx, alice, CreateContentInput{
		Link: "http://x", Type: "youtube", Title: "t", Tags: []string{dangling, "music"},
	})
	require.NoError(t, err)
	assert.Equal(t, dangling, created.TagIDs[0], "identifier-shaped refs are stored as given")

	list, err := s.content.ListContent(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list[0].Tags, 1)
	assert.Equal(t, "music", list[0].Tags[0].Title)
}

func TestContentService_CreateValidation(t *testing.T) {
	s := newServices(t)
	alice := s.signup(t, "alice")

	_, err := s.content.CreateContent(context.Background(), alice, CreateContentInput{Link: "http://x", Type: "podcast", Title: "t"})
	assert.True(t, models.IsCode(err, models.CodeValidation))

	_, err = s.content.CreateContent(context.Background(), alice, CreateContentInput{Link: "http://x", Type: "twitter", Title: "t", Tags: []string{""}})
	assert.True(t, models.IsCode(err, models.CodeValidation))

	list, err := s.content.ListContent(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, list, "rejected creates leave nothing behind")
}

func TestContentService_Isolation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")

	created, err := s.content.CreateContent(ctx, alice, CreateContentInput{Link: "http://x", Type: "twitter", Title: "mine"})
	require.NoError(t, err)

	bobs, err := s.content.ListContent(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	err = s.content.DeleteContent(ctx, bob, created.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
	assert.Equal(t, "You don't own this content or it doesn't exist", appErr.Message)

	err = s.content.DeleteContent(ctx, bob, models.NewID())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You don't own this content or it doesn't exist", appErr.Message, "missing and foreign content look the same")

	alices, err := s.content.ListContent(ctx, alice)
	require.NoError(t, err)
	require.Len(t, alices, 1)
	assert.Equal(t, "mine", alices[0].Title)

	require.NoError(t, s.content.DeleteContent(ctx, alice, created.ID))
	alices, err = s.content.ListContent(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, alices)
}

func TestContentService_DeleteRequiresID(t *testing.T) {
	s := newServices(t)
	err := s.content.DeleteContent(context.Background(), models.NewID(), "")
	assert.True(t, models.IsCode(err, models.CodeValidation))
}
