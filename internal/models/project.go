package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 2000
)

// RatingEntry is one user's rating of a project. The ratings array
// holds at most one entry per user.
type RatingEntry struct {
	User   primitive.ObjectID `json:"user" bson:"user"`
	Rating int                `json:"rating" bson:"rating"`
}

// ProjectDoc as stored in the projects collection. AverageRating is
// derived from Ratings on the way out and never persisted.
type ProjectDoc struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Tags        []string             `json:"tags" bson:"tags"`
	GithubLink  string               `json:"githubLink" bson:"githubLink"`
	LiveLink    string               `json:"liveLink" bson:"liveLink"`
	Author      primitive.ObjectID   `json:"author" bson:"author"`
	AuthorName  string               `json:"authorName" bson:"authorName"`
	Likes       []primitive.ObjectID `json:"likes" bson:"likes"`
	Ratings     []RatingEntry        `json:"ratings" bson:"ratings"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`

	AverageRating float64 `json:"averageRating" bson:"-"`
}

// AvgRating is the arithmetic mean of the ratings, 0 when there are none.
func (p *ProjectDoc) AvgRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Ratings))
}

// Decorate fills the derived fields before serialization.
func (p *ProjectDoc) Decorate() *ProjectDoc {
	p.AverageRating = p.AvgRating()
	return p
}

type ProjectCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	GithubLink  string   `json:"githubLink"`
	LiveLink    string   `json:"liveLink,omitempty"`
}

// Partial update. Title/Description/GithubLink only overwrite when
// present and non-empty; LiveLink overwrites whenever present, even
// with an empty string (it is how the demo link gets cleared).
type ProjectUpdateRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	GithubLink  *string   `json:"githubLink,omitempty"`
	LiveLink    *string   `json:"liveLink,omitempty"`
}

// ProjectListQuery groups the catalog listing parameters.
type ProjectListQuery struct {
	Page     int
	PageSize int
	Search   string
	Tag      string
}

// ProjectPage is one page of catalog results.
type ProjectPage struct {
	Projects    []ProjectDoc `json:"projects"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Total       int64        `json:"total"`
}
