package service

import (
	"context"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/repository"
)

const (
	topRatedLimit    = 5
	popularTagsLimit = 10
)

type AnalyticsService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	comments repository.CommentRepository
}

func NewAnalyticsService(p repository.ProjectRepository, u repository.UserRepository, c repository.CommentRepository) *AnalyticsService {
	return &AnalyticsService{projects: p, users: u, comments: c}
}

// Rollup computes the full analytics object as of call time. Nothing
// here is cached; every call hits the collections fresh.
func (s *AnalyticsService) Rollup(ctx context.Context) (*models.Analytics, error) {
	totalProjects, err := s.projects.Count(ctx, "", "")
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.comments.Count(ctx)
	if err != nil {
		return nil, err
	}

	var mostLiked *models.MostLikedProject
	if p, err := s.projects.MostLiked(ctx); err != nil {
		return nil, err
	} else if p != nil {
		mostLiked = &models.MostLikedProject{
			Title:  p.Title,
			Likes:  len(p.Likes),
			Author: p.AuthorName,
		}
	}

	rated, err := s.projects.TopRated(ctx, topRatedLimit)
	if err != nil {
		return nil, err
	}
	topRated := make([]models.TopRatedProject, 0, len(rated))
	for i := range rated {
		topRated = append(topRated, models.TopRatedProject{
			Title:  rated[i].Title,
			Rating: rated[i].AvgRating(),
			Author: rated[i].AuthorName,
		})
	}

	tags, err := s.projects.TagCounts(ctx, popularTagsLimit)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.TagCount{}
	}

	return &models.Analytics{
		TotalProjects:    totalProjects,
		TotalUsers:       totalUsers,
		TotalComments:    totalComments,
		MostLikedProject: mostLiked,
		TopRatedProjects: topRated,
		PopularTags:      tags,
	}, nil
}
