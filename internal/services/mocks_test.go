package services

import (
	"context"
	"sort"

	"careero_backend/internal/ai"
	"careero_backend/internal/models"
	"careero_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They replicate the one behavior the services
// rely on: every lookup is owner-scoped, so another user's record looks
// exactly like a missing one.

type fakeUserRepo struct {
	users map[string]*models.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeApplicationRepo struct {
	apps map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindAllByUser(_ *gorm.DB, userID string) ([]models.Application, error) {
	out := make([]models.Application, 0)
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppliedDate.After(out[j].AppliedDate)
	})
	return out, nil
}

func (r *fakeApplicationRepo) FindByIDForUser(_ *gorm.DB, id, userID string) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok || a.UserID != userID {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) Update(_ *gorm.DB, app *models.Application) error {
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) DeleteByIDForUser(_ *gorm.DB, id, userID string) error {
	a, ok := r.apps[id]
	if !ok || a.UserID != userID {
		return repositories.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile // keyed by user id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
}

func (r *fakeProfileRepo) Upsert(_ *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return profile, nil
}

func (r *fakeProfileRepo) FindByUser(_ *gorm.DB, userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

// fakeAIClient replays a fixed chunk sequence and records the prompts.
type fakeAIClient struct {
	chunks       []string
	err          error
	systemPrompt string
	userPrompt   string
	calls        int
}

func (c *fakeAIClient) StreamCompletion(_ context.Context, systemPrompt, userPrompt string, fn ai.ChunkFunc) error {
	c.calls++
	c.systemPrompt = systemPrompt
	c.userPrompt = userPrompt
	if c.err != nil {
		return c.err
	}
	for _, chunk := range c.chunks {
		if err := fn(chunk); err != nil {
			return err
		}
	}
	return nil
}

// recordingEmailProvider captures welcome emails; Register sends them on a
// goroutine, so tests wait on the channel.
type recordingEmailProvider struct {
	sent chan string
}

func newRecordingEmailProvider() *recordingEmailProvider {
	return &recordingEmailProvider{sent: make(chan string, 1)}
}

func (p *recordingEmailProvider) SendWelcome(to, _ string) error {
	p.sent <- to
	return nil
}
