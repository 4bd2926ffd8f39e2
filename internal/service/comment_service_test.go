package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentCreate(t *testing.T) {
	ctx := context.Background()
	author := testUser("author")
	project := primitive.NewObjectID()

	t.Run("trims text and denormalizes author name", func(t *testing.T) {
		repo := newMockCommentRepo()
		svc := NewCommentService(repo)

		c, err := svc.Create(ctx, author, project, "  nice work  ")
		assert.NoError(t, err)
		assert.Equal(t, "nice work", c.Text)
		assert.Equal(t, author.ID, c.Author)
		assert.Equal(t, "author", c.AuthorName)
	})

	t.Run("whitespace-only text fails validation", func(t *testing.T) {
		repo := newMockCommentRepo()
		svc := NewCommentService(repo)

		_, err := svc.Create(ctx, author, project, "   ")
		assert.True(t, errors.Is(err, apperror.ErrValidation))

		n, _ := repo.Count(ctx)
		assert.Equal(t, int64(0), n)
	})
}

func TestCommentDelete(t *testing.T) {
	ctx := context.Background()
	author := testUser("author")
	repo := newMockCommentRepo()
	svc := NewCommentService(repo)

	c, err := svc.Create(ctx, author, primitive.NewObjectID(), "hello")
	assert.NoError(t, err)

	t.Run("missing comment", func(t *testing.T) {
		err := svc.Delete(ctx, author, primitive.NewObjectID())
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("only the author may delete", func(t *testing.T) {
		err := svc.Delete(ctx, testUser("intruder"), c.ID)
		assert.True(t, errors.Is(err, apperror.ErrForbidden))
	})

	t.Run("author delete succeeds", func(t *testing.T) {
		err := svc.Delete(ctx, author, c.ID)
		assert.NoError(t, err)
		n, _ := repo.Count(ctx)
		assert.Equal(t, int64(0), n)
	})
}

func TestCommentListByProject(t *testing.T) {
	ctx := context.Background()
	author := testUser("author")
	repo := newMockCommentRepo()
	svc := NewCommentService(repo)
	project := primitive.NewObjectID()

	first, _ := svc.Create(ctx, author, project, "first")
	first.CreatedAt = time.Now().Add(-time.Hour)
	_ = repo.Replace(first)

	_, _ = svc.Create(ctx, author, project, "second")
	_, _ = svc.Create(ctx, author, primitive.NewObjectID(), "other project")

	list, err := svc.ListByProject(ctx, project)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Text)
	assert.Equal(t, "first", list[1].Text)
}
