package repository

import (
	"context"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookups return (nil, nil) when the document does not exist; the
// service layer decides whether that is a 404 or a create-on-read.

type ProjectRepository interface {
	Insert(ctx context.Context, p *models.ProjectDoc) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectDoc, error)
	FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.ProjectDoc, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ProjectDoc, error)
	List(ctx context.Context, search, tag string, skip, limit int) ([]models.ProjectDoc, error)
	Count(ctx context.Context, search, tag string) (int64, error)
	Replace(ctx context.Context, p *models.ProjectDoc) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	MostLiked(ctx context.Context) (*models.ProjectDoc, error)
	TopRated(ctx context.Context, limit int) ([]models.ProjectDoc, error)
	TagCounts(ctx context.Context, limit int) ([]models.TagCount, error)
}

type UserRepository interface {
	Insert(ctx context.Context, u *models.UserDoc) error
	FindByUID(ctx context.Context, uid string) (*models.UserDoc, error)
	Replace(ctx context.Context, u *models.UserDoc) error
	Count(ctx context.Context) (int64, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, c *models.CommentDoc) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommentDoc, error)
	FindByProject(ctx context.Context, project primitive.ObjectID) ([]models.CommentDoc, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
