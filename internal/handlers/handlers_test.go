package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"sort"
	"testing"

	"careero_backend/internal/ai"
	"careero_backend/internal/config"
	"careero_backend/internal/email"
	"careero_backend/internal/handlers"
	"careero_backend/internal/middleware"
	"careero_backend/internal/models"
	"careero_backend/internal/repositories"
	"careero_backend/internal/routes"
	"careero_backend/internal/services"
	"careero_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTL = 7
	config.AppConfig = cfg

	os.Exit(m.Run())
}

// --- in-memory repository fakes (no database behind the handlers) ---

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*models.User{}} }

func (r *memUserRepo) Create(_ *gorm.DB, user *models.User) error {
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

func (r *memUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type memApplicationRepo struct {
	apps map[string]*models.Application
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: map[string]*models.Application{}}
}

func (r *memApplicationRepo) Create(_ *gorm.DB, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *memApplicationRepo) FindAllByUser(_ *gorm.DB, userID string) ([]models.Application, error) {
	out := make([]models.Application, 0)
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	return out, nil
}

func (r *memApplicationRepo) FindByIDForUser(_ *gorm.DB, id, userID string) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok || a.UserID != userID {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memApplicationRepo) Update(_ *gorm.DB, app *models.Application) error {
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *memApplicationRepo) DeleteByIDForUser(_ *gorm.DB, id, userID string) error {
	a, ok := r.apps[id]
	if !ok || a.UserID != userID {
		return repositories.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

type memProfileRepo struct {
	profiles map[string]*models.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]*models.Profile{}}
}

func (r *memProfileRepo) Upsert(_ *gorm.DB, profile *models.Profile) (*models.Profile, error) {
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

func (r *memProfileRepo) FindByUser(_ *gorm.DB, userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

// scriptedAI replays fixed chunks in place of the completion API.
type scriptedAI struct {
	chunks []string
}

func (c *scriptedAI) StreamCompletion(_ context.Context, _, _ string, fn ai.ChunkFunc) error {
	for _, chunk := range c.chunks {
		if err := fn(chunk); err != nil {
			return err
		}
	}
	return nil
}

// --- test server ---

type testServer struct {
	Server   *httptest.Server
	Client   *http.Client
	AppRepo  *memApplicationRepo
	UserRepo *memUserRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	userRepo := newMemUserRepo()
	appRepo := newMemApplicationRepo()
	profileRepo := newMemProfileRepo()

	sc := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, &email.NoopProvider{}),
		ApplicationService: services.NewApplicationService(appRepo),
		ProfileService:     services.NewProfileService(profileRepo),
		GenerationService: services.NewGenerationService(appRepo, profileRepo,
			&scriptedAI{chunks: []string{"Generated ", "document"}}),
	}

	engine := gin.New()
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.DBMiddleware(nil))
	routes.RegisterRoutes(engine, handlers.NewAppHandlers(sc, validator.New()), middleware.AuthMiddleware(userRepo))

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return &testServer{
		Server:   server,
		Client:   &http.Client{Jar: jar},
		AppRepo:  appRepo,
		UserRepo: userRepo,
	}
}

// sendJSON performs a request with the server's cookie-aware client and
// returns the response plus the raw body.
func (ts *testServer) sendJSON(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(raw)
}

func (ts *testServer) register(t *testing.T, emailAddr, password, name string) {
	t.Helper()
	res, body := ts.sendJSON(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    emailAddr,
		"password": password,
		"name":     name,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed: %d %s", res.StatusCode, body)
	}
}
