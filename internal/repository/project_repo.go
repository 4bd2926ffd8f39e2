package repository

import (
	"context"
	"regexp"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepo struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{col: db.Collection("projects")}
}

func (r *ProjectRepo) Insert(ctx context.Context, p *models.ProjectDoc) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *ProjectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectDoc, error) {
	var p models.ProjectDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (r *ProjectRepo) FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.ProjectDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"author": author}, opts)
	if err != nil {
		return nil, err
	}
	return decodeProjects(ctx, cur)
}

func (r *ProjectRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ProjectDoc, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return decodeProjects(ctx, cur)
}

// listFilter builds the catalog filter: case-insensitive substring on
// title OR description, exact tag membership, ANDed when both given.
func listFilter(search, tag string) bson.M {
	filter := bson.M{}

	if search != "" {
		quoted := regexp.QuoteMeta(search)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": quoted, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": quoted, "$options": "i"}},
		}
	}
	if tag != "" {
		// tags is an array, this matches membership of the exact string
		filter["tags"] = tag
	}
	return filter
}

func (r *ProjectRepo) List(ctx context.Context, search, tag string, skip, limit int) ([]models.ProjectDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, listFilter(search, tag), opts)
	if err != nil {
		return nil, err
	}
	return decodeProjects(ctx, cur)
}

func (r *ProjectRepo) Count(ctx context.Context, search, tag string) (int64, error) {
	return r.col.CountDocuments(ctx, listFilter(search, tag))
}

// Replace saves the full document. Per-document atomicity is all we
// rely on; concurrent writers to the same project are last-writer-wins.
func (r *ProjectRepo) Replace(ctx context.Context, p *models.ProjectDoc) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ----- analytics queries -----

// MostLiked returns the project with the largest like set, ties broken
// by newest creation time so the result is deterministic.
func (r *ProjectRepo) MostLiked(ctx context.Context) (*models.ProjectDoc, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "likesCount", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
		{{Key: "$limit", Value: 1}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out, err := decodeProjects(ctx, cur)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// TopRated returns the projects with the highest mean rating among
// those with at least one rating. The average is computed inside the
// pipeline for sorting only; callers recompute it from the ratings
// array for the response.
func (r *ProjectRepo) TopRated(ctx context.Context, limit int) ([]models.ProjectDoc, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ratings.0": bson.M{"$exists": true}}}},
		{{Key: "$addFields", Value: bson.M{
			"avgRating": bson.M{"$avg": "$ratings.rating"},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "avgRating", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeProjects(ctx, cur)
}

// TagCounts is the tag frequency histogram, count desc then tag asc.
func (r *ProjectRepo) TagCounts(ctx context.Context, limit int) ([]models.TagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$tags",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TagCount
	for cur.Next(ctx) {
		var tc models.TagCount
		if err := cur.Decode(&tc); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, cur.Err()
}

func decodeProjects(ctx context.Context, cur *mongo.Cursor) ([]models.ProjectDoc, error) {
	defer cur.Close(ctx)

	var out []models.ProjectDoc
	for cur.Next(ctx) {
		var p models.ProjectDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
