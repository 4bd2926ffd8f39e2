package service

import (
	"context"
	"time"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/apperror"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/cache"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TTL for the uid -> user cache entry. Profile writes delete the key,
// so a stale entry can only outlive a write by a failed invalidation.
const userCacheTTL = 300

// Identity is what the external provider vouches for: a subject id
// plus whatever profile claims came with the token.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

type UserService struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	cache    *cache.Cache
}

func NewUserService(u repository.UserRepository, p repository.ProjectRepository, c *cache.Cache) *UserService {
	return &UserService{users: u, projects: p, cache: c}
}

func userCacheKey(uid string) string {
	return "user:uid:" + uid
}

// GetOrCreate resolves an externally-verified identity to a local user,
// provisioning one on first sight. Idempotent; runs once per
// authenticated request at the middleware boundary.
func (s *UserService) GetOrCreate(ctx context.Context, ident Identity) (*models.UserDoc, error) {
	var cached models.UserDoc
	if ok, err := s.cache.GetJSON(ctx, userCacheKey(ident.UID), &cached); err == nil && ok {
		return &cached, nil
	}

	u, err := s.users.FindByUID(ctx, ident.UID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		name := ident.Name
		if name == "" {
			name = "Anonymous"
		}
		u = &models.UserDoc{
			UID:         ident.UID,
			Email:       ident.Email,
			DisplayName: name,
			PhotoURL:    ident.Picture,
			Bio:         "",
			Favorites:   []primitive.ObjectID{},
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.users.Insert(ctx, u); err != nil {
			return nil, err
		}
	}

	_ = s.cache.SetJSON(ctx, userCacheKey(ident.UID), u, userCacheTTL)
	return u, nil
}

// UpsertProfile updates the caller's profile, creating the user first
// if this is their earliest contact. DisplayName and photoURL only
// overwrite when non-empty; bio overwrites whenever present so it can
// be cleared.
func (s *UserService) UpsertProfile(ctx context.Context, ident Identity, req *models.ProfileUpdateRequest) (*models.UserDoc, error) {
	u, err := s.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil && *req.DisplayName != "" {
		u.DisplayName = *req.DisplayName
	}
	if req.PhotoURL != nil && *req.PhotoURL != "" {
		u.PhotoURL = *req.PhotoURL
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}

	if err := s.users.Replace(ctx, u); err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, userCacheKey(u.UID))
	return u, nil
}

// GetByUID looks up a user for a public profile page.
func (s *UserService) GetByUID(ctx context.Context, uid string) (*models.UserDoc, error) {
	u, err := s.users.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("user")
	}
	return u, nil
}

// ToggleFavorite flips the project reference in the user's favorites.
// The reference is not checked for existence, matching the catalog's
// tolerance for dangling ids.
func (s *UserService) ToggleFavorite(ctx context.Context, user *models.UserDoc, projectID primitive.ObjectID) ([]primitive.ObjectID, error) {
	found := -1
	for i, id := range user.Favorites {
		if id == projectID {
			found = i
			break
		}
	}
	if found >= 0 {
		user.Favorites = append(user.Favorites[:found], user.Favorites[found+1:]...)
	} else {
		user.Favorites = append(user.Favorites, projectID)
	}

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, userCacheKey(user.UID))
	return user.Favorites, nil
}

// Favorites resolves the user's favorite references to project
// documents, keeping the bookmark order and skipping ids that no
// longer resolve.
func (s *UserService) Favorites(ctx context.Context, user *models.UserDoc) ([]models.ProjectDoc, error) {
	list, err := s.projects.FindByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.ProjectDoc, len(list))
	for i := range list {
		byID[list[i].ID] = &list[i]
	}

	out := make([]models.ProjectDoc, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if p, ok := byID[id]; ok {
			out = append(out, *p.Decorate())
		}
	}
	return out, nil
}

func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
