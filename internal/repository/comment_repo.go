package repository

import (
	"context"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepo {
	return &CommentRepo{col: db.Collection("comments")}
}

func (r *CommentRepo) Insert(ctx context.Context, c *models.CommentDoc) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (r *CommentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommentDoc, error) {
	var c models.CommentDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &c, err
}

func (r *CommentRepo) FindByProject(ctx context.Context, project primitive.ObjectID) ([]models.CommentDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"project": project}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CommentDoc
	for cur.Next(ctx) {
		var c models.CommentDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *CommentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CommentRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
