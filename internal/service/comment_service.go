package service

import (
	"context"
	"strings"
	"time"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/apperror"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService struct {
	comments repository.CommentRepository
}

func NewCommentService(c repository.CommentRepository) *CommentService {
	return &CommentService{comments: c}
}

// Create stores a trimmed comment. Whitespace-only text is rejected.
func (s *CommentService) Create(ctx context.Context, author *models.UserDoc, project primitive.ObjectID, text string) (*models.CommentDoc, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation("text", "comment text cannot be empty")
	}

	c := &models.CommentDoc{
		Text:       text,
		Project:    project,
		Author:     author.ID,
		AuthorName: author.DisplayName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.comments.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a comment; only its author may do so.
func (s *CommentService) Delete(ctx context.Context, actor *models.UserDoc, id primitive.ObjectID) error {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperror.NotFound("comment")
	}
	if c.Author != actor.ID {
		return apperror.Forbidden("not authorized to delete this comment")
	}
	return s.comments.Delete(ctx, id)
}

// ListByProject returns a project's comments, newest first.
func (s *CommentService) ListByProject(ctx context.Context, project primitive.ObjectID) ([]models.CommentDoc, error) {
	list, err := s.comments.FindByProject(ctx, project)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.CommentDoc{}
	}
	return list, nil
}
