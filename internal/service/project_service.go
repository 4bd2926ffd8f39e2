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

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ProjectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(p repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: p}
}

// List returns one page of the catalog, newest first. search matches
// title or description case-insensitively, tag matches exact membership,
// both filters AND together.
func (s *ProjectService) List(ctx context.Context, q models.ProjectListQuery) (*models.ProjectPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	skip := (page - 1) * size
	list, err := s.projects.List(ctx, q.Search, q.Tag, skip, size)
	if err != nil {
		return nil, err
	}
	total, err := s.projects.Count(ctx, q.Search, q.Tag)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].Decorate()
	}
	if list == nil {
		list = []models.ProjectDoc{}
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &models.ProjectPage{
		Projects:    list,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	}, nil
}

func (s *ProjectService) Get(ctx context.Context, id primitive.ObjectID) (*models.ProjectDoc, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("project")
	}
	return p.Decorate(), nil
}

func (s *ProjectService) ByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.ProjectDoc, error) {
	list, err := s.projects.FindByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Decorate()
	}
	if list == nil {
		list = []models.ProjectDoc{}
	}
	return list, nil
}

func validateProjectFields(title, description, githubLink string) error {
	if strings.TrimSpace(title) == "" {
		return apperror.Validation("title", "title is required")
	}
	if len(title) > models.MaxTitleLen {
		return apperror.Validation("title", "title must be at most 100 characters")
	}
	if strings.TrimSpace(description) == "" {
		return apperror.Validation("description", "description is required")
	}
	if len(description) > models.MaxDescriptionLen {
		return apperror.Validation("description", "description must be at most 2000 characters")
	}
	if strings.TrimSpace(githubLink) == "" {
		return apperror.Validation("githubLink", "githubLink is required")
	}
	return nil
}

func (s *ProjectService) Create(ctx context.Context, author *models.UserDoc, req *models.ProjectCreateRequest) (*models.ProjectDoc, error) {
	if err := validateProjectFields(req.Title, req.Description, req.GithubLink); err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	p := &models.ProjectDoc{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        tags,
		GithubLink:  strings.TrimSpace(req.GithubLink),
		LiveLink:    req.LiveLink,
		Author:      author.ID,
		AuthorName:  author.DisplayName,
		Likes:       []primitive.ObjectID{},
		Ratings:     []models.RatingEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projects.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p.Decorate(), nil
}

// Update applies partial-field semantics: title, description, tags and
// githubLink overwrite only when present (and non-empty for the
// strings); liveLink overwrites whenever present, empty included, so
// the demo link can be cleared.
func (s *ProjectService) Update(ctx context.Context, actor *models.UserDoc, id primitive.ObjectID, req *models.ProjectUpdateRequest) (*models.ProjectDoc, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("project")
	}
	if p.Author != actor.ID {
		return nil, apperror.Forbidden("not authorized")
	}

	if req.Title != nil && *req.Title != "" {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil && *req.Description != "" {
		p.Description = *req.Description
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.GithubLink != nil && *req.GithubLink != "" {
		p.GithubLink = strings.TrimSpace(*req.GithubLink)
	}
	if req.LiveLink != nil {
		p.LiveLink = *req.LiveLink
	}

	if err := validateProjectFields(p.Title, p.Description, p.GithubLink); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()

	if err := s.projects.Replace(ctx, p); err != nil {
		return nil, err
	}
	return p.Decorate(), nil
}

func (s *ProjectService) Delete(ctx context.Context, actor *models.UserDoc, id primitive.ObjectID) error {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperror.NotFound("project")
	}
	if p.Author != actor.ID {
		return apperror.Forbidden("not authorized")
	}
	return s.projects.Delete(ctx, id)
}

// ToggleLike flips the actor's membership in the like set and returns
// the new cardinality.
func (s *ProjectService) ToggleLike(ctx context.Context, actor *models.UserDoc, id primitive.ObjectID) (int, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, apperror.NotFound("project")
	}

	found := -1
	for i, uid := range p.Likes {
		if uid == actor.ID {
			found = i
			break
		}
	}
	if found >= 0 {
		p.Likes = append(p.Likes[:found], p.Likes[found+1:]...)
	} else {
		p.Likes = append(p.Likes, actor.ID)
	}

	if err := s.projects.Replace(ctx, p); err != nil {
		return 0, err
	}
	return len(p.Likes), nil
}

// Rate records the actor's rating, overwriting an existing entry in
// place so the ratings array never holds two entries for the same
// user. Returns the recomputed average.
func (s *ProjectService) Rate(ctx context.Context, actor *models.UserDoc, id primitive.ObjectID, rating int) (float64, error) {
	if rating < 1 || rating > 5 {
		return 0, apperror.Validation("rating", "rating must be between 1 and 5")
	}

	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, apperror.NotFound("project")
	}

	updated := false
	for i := range p.Ratings {
		if p.Ratings[i].User == actor.ID {
			p.Ratings[i].Rating = rating
			updated = true
			break
		}
	}
	if !updated {
		p.Ratings = append(p.Ratings, models.RatingEntry{User: actor.ID, Rating: rating})
	}

	if err := s.projects.Replace(ctx, p); err != nil {
		return 0, err
	}
	return p.AvgRating(), nil
}
