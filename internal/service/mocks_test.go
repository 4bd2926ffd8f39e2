package service

import (
	"context"
	"sort"
	"strings"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories for service tests. They store copies, so a
// document mutated by the service is only visible after Replace, the
// same way the real collections behave.

type mockProjectRepo struct {
	projects map[primitive.ObjectID]models.ProjectDoc
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[primitive.ObjectID]models.ProjectDoc)}
}

func (m *mockProjectRepo) Insert(_ context.Context, p *models.ProjectDoc) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.projects[p.ID] = *p
	return nil
}

func (m *mockProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.ProjectDoc, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockProjectRepo) FindByAuthor(_ context.Context, author primitive.ObjectID) ([]models.ProjectDoc, error) {
	var out []models.ProjectDoc
	for _, p := range m.projects {
		if p.Author == author {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *mockProjectRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.ProjectDoc, error) {
	var out []models.ProjectDoc
	for _, id := range ids {
		if p, ok := m.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) matches(p models.ProjectDoc, search, tag string) bool {
	if search != "" {
		s := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(p.Title), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	if tag != "" {
		ok := false
		for _, t := range p.Tags {
			if t == tag {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func (m *mockProjectRepo) List(_ context.Context, search, tag string, skip, limit int) ([]models.ProjectDoc, error) {
	var out []models.ProjectDoc
	for _, p := range m.projects {
		if m.matches(p, search, tag) {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)

	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProjectRepo) Count(_ context.Context, search, tag string) (int64, error) {
	var n int64
	for _, p := range m.projects {
		if m.matches(p, search, tag) {
			n++
		}
	}
	return n, nil
}

func (m *mockProjectRepo) Replace(_ context.Context, p *models.ProjectDoc) error {
	m.projects[p.ID] = *p
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) MostLiked(_ context.Context) (*models.ProjectDoc, error) {
	var best *models.ProjectDoc
	for _, p := range m.projects {
		p := p
		if best == nil ||
			len(p.Likes) > len(best.Likes) ||
			(len(p.Likes) == len(best.Likes) && p.CreatedAt.After(best.CreatedAt)) {
			best = &p
		}
	}
	return best, nil
}

func (m *mockProjectRepo) TopRated(_ context.Context, limit int) ([]models.ProjectDoc, error) {
	var out []models.ProjectDoc
	for _, p := range m.projects {
		if len(p.Ratings) > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].AvgRating(), out[j].AvgRating()
		if ai != aj {
			return ai > aj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProjectRepo) TagCounts(_ context.Context, limit int) ([]models.TagCount, error) {
	counts := map[string]int{}
	for _, p := range m.projects {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	var out []models.TagCount
	for tag, n := range counts {
		out = append(out, models.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func sortNewestFirst(list []models.ProjectDoc) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

type mockUserRepo struct {
	users   map[primitive.ObjectID]models.UserDoc
	inserts int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]models.UserDoc)}
}

func (m *mockUserRepo) Insert(_ context.Context, u *models.UserDoc) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.ID] = *u
	m.inserts++
	return nil
}

func (m *mockUserRepo) FindByUID(_ context.Context, uid string) (*models.UserDoc, error) {
	for _, u := range m.users {
		if u.UID == uid {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Replace(_ context.Context, u *models.UserDoc) error {
	m.users[u.ID] = *u
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type mockCommentRepo struct {
	comments map[primitive.ObjectID]models.CommentDoc
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[primitive.ObjectID]models.CommentDoc)}
}

func (m *mockCommentRepo) Insert(_ context.Context, c *models.CommentDoc) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.comments[c.ID] = *c
	return nil
}

func (m *mockCommentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.CommentDoc, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *mockCommentRepo) FindByProject(_ context.Context, project primitive.ObjectID) ([]models.CommentDoc, error) {
	var out []models.CommentDoc
	for _, c := range m.comments {
		if c.Project == project {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Replace is test-only plumbing to adjust a stored comment (e.g. to
// backdate its timestamp).
func (m *mockCommentRepo) Replace(c *models.CommentDoc) error {
	m.comments[c.ID] = *c
	return nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.comments)), nil
}

func testUser(name string) *models.UserDoc {
	return &models.UserDoc{
		ID:          primitive.NewObjectID(),
		UID:         "uid-" + name,
		Email:       name + "@example.com",
		DisplayName: name,
		Favorites:   []primitive.ObjectID{},
	}
}
