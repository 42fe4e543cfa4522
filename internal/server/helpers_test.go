package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp builds a Fiber app wired to an in-memory sqlite database.
// Rate limiting is bypassed because APP_ENV is "test". Foreign key
// enforcement is switched on so schema-level constraint behavior matches a
// strict production database; the migrator must still not emit association
// constraints, or hard post deletes would orphan-reject their comments.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:             "unit-test-secret-key-32-characters!",
		AccessTokenTTLMinutes: 30,
		BcryptCost:            bcrypt.MinCost,
		Port:                  "8000",
		Env:                   "test",
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	srv := &Server{
		config:      cfg,
		db:          db,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		hasher:      auth.NewPasswordHasher(cfg.BcryptCost),
		tokens:      tokens,
	}
	srv.postService = service.NewPostService(postRepo, userRepo)
	srv.commentService = service.NewCommentService(commentRepo, postRepo, userRepo)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

// doRequest runs a request against the app and decodes the JSON body.
func doRequest(t *testing.T, app *fiber.App, method, target, token string, form url.Values) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doRequestList is doRequest for endpoints returning a JSON array.
func doRequestList(t *testing.T, app *fiber.App, target, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// registerAndLogin creates a user via the API and returns a bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	status, _ := doRequest(t, app, http.MethodPost,
		"/register?email="+url.QueryEscape(email)+"&password="+url.QueryEscape(password), "", nil)
	require.Equal(t, http.StatusCreated, status)

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	status, body := doRequest(t, app, http.MethodPost, "/login", "", form)
	require.Equal(t, http.StatusOK, status)

	token, ok := body["access_token"].(string)
	require.True(t, ok, "login response must contain access_token")
	return token
}

// createPost creates a post via the API and returns its id.
func createPost(t *testing.T, app *fiber.App, token, title, content string) uint {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost,
		"/posts?title="+url.QueryEscape(title)+"&content="+url.QueryEscape(content), token, nil)
	require.Equal(t, http.StatusCreated, status)

	id, ok := body["id"].(float64)
	require.True(t, ok, "post response must contain id")
	return uint(id)
}
