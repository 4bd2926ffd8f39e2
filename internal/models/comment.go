package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentDoc struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Text       string             `json:"text" bson:"text"`
	Project    primitive.ObjectID `json:"project" bson:"project"`
	Author     primitive.ObjectID `json:"author" bson:"author"`
	AuthorName string             `json:"authorName" bson:"authorName"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type CommentCreateRequest struct {
	Text      string `json:"text"`
	ProjectID string `json:"projectId"`
}
