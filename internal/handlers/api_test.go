package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"film-catalog/internal/config"
	"film-catalog/internal/database"
	"film-catalog/internal/handlers"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"
	"film-catalog/internal/routes"
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.DatabaseConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		QueryTimeout:    5 * time.Second,
	}
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	filmRepo := repository.NewFilmRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	filmHandler := handlers.NewFilmHandler(services.NewFilmService(filmRepo, log), log)
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo, log), log)
	favoriteHandler := handlers.NewFavoriteHandler(
		services.NewFavoriteService(favoriteRepo, filmRepo, userRepo, log), log)

	app := fiber.New()
	routes.Setup(app, filmHandler, userHandler, favoriteHandler, nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestFilmLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	// Create with all seven fields.
	resp := doJSON(t, app, http.MethodPost, "/admin/films/", fiber.Map{
		"title":        "A",
		"movie_banner": "u",
		"description":  "d",
		"director":     "x",
		"producer":     "y",
		"release_date": 1999,
		"rt_score":     80,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Film
	decode(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "A", created.Title)

	// Case-insensitive substring search finds it.
	resp = doJSON(t, app, http.MethodGet, "/user/search?title=a", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var films []models.Film
	decode(t, resp, &films)
	require.Len(t, films, 1)
	assert.Equal(t, created.ID, films[0].ID)

	// Partial update touches only rt_score.
	resp = doJSON(t, app, http.MethodPut, "/admin/films/1", fiber.Map{"rt_score": 85})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var msg utils.MessageBody
	decode(t, resp, &msg)
	assert.Equal(t, "Film updated", msg.Message)

	resp = doJSON(t, app, http.MethodGet, "/admin/films/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.Film
	decode(t, resp, &updated)
	assert.Equal(t, 85, updated.RTScore)
	assert.Equal(t, "A", updated.Title)

	// Delete, then the film is gone on both surfaces.
	resp = doJSON(t, app, http.MethodDelete, "/admin/films/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/user/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &films)
	assert.Empty(t, films)
}

func TestCreateFilmMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/admin/films/", fiber.Map{
		"title": "A",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body utils.ErrorBody
	decode(t, resp, &body)
	assert.Equal(t, fiber.StatusBadRequest, body.StatusCode)
	assert.Contains(t, body.Detail, "Missing required fields")
}

func TestUpdateFilmErrors(t *testing.T) {
	app := newTestApp(t)

	// Unknown id, regardless of patch content.
	resp := doJSON(t, app, http.MethodPut, "/admin/films/42", fiber.Map{"title": "X"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body utils.ErrorBody
	decode(t, resp, &body)
	assert.Equal(t, "Film not found", body.Detail)

	// Existing id, empty patch.
	resp = doJSON(t, app, http.MethodPost, "/admin/films/", fiber.Map{
		"title": "A", "movie_banner": "u", "description": "d",
		"director": "x", "producer": "y", "release_date": 1999, "rt_score": 80,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/admin/films/1", fiber.Map{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "No update data provided", body.Detail)
}

// Covers the full favorites flow: register, add, duplicate add, list,
// user deletion cascading to favorites.
func TestFavoritesScenario(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/admin/films/", fiber.Map{
		"title": "A", "movie_banner": "u", "description": "d",
		"director": "x", "producer": "y", "release_date": 1999, "rt_score": 80,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/user/register/", fiber.Map{
		"username": "bob", "password": "p",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var reg utils.RegisterBody
	decode(t, resp, &reg)
	assert.Equal(t, uint(1), reg.UserID)

	// Registering the same username again conflicts.
	resp = doJSON(t, app, http.MethodPost, "/user/register/", fiber.Map{
		"username": "bob", "password": "q",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body utils.ErrorBody
	decode(t, resp, &body)
	assert.Equal(t, "Username already exists", body.Detail)

	// Add favorite (1,1).
	resp = doJSON(t, app, http.MethodPost, "/user/favorites/1/1", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/user/favorites/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var films []models.Film
	decode(t, resp, &films)
	require.Len(t, films, 1)
	assert.Equal(t, uint(1), films[0].ID)

	// Same pair again is a 400 conflict.
	resp = doJSON(t, app, http.MethodPost, "/user/favorites/1/1", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Film already in favorites", body.Detail)

	// Unknown film wins over unknown user in error precedence.
	resp = doJSON(t, app, http.MethodPost, "/user/favorites/99/99", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Film not found", body.Detail)

	// Delete the user; its favorites go with it.
	resp = doJSON(t, app, http.MethodDelete, "/admin/users/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/user/favorites/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &films)
	assert.Empty(t, films)
}

func TestRemoveFavoriteOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/admin/films/", fiber.Map{
		"title": "A", "movie_banner": "u", "description": "d",
		"director": "x", "producer": "y", "release_date": 1999, "rt_score": 80,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/user/register/", fiber.Map{
		"username": "bob", "password": "p",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Pair never added.
	resp = doJSON(t, app, http.MethodDelete, "/user/favorites/1/1", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body utils.ErrorBody
	decode(t, resp, &body)
	assert.Equal(t, "Favorite not found", body.Detail)

	resp = doJSON(t, app, http.MethodPost, "/user/favorites/1/1", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/user/favorites/1/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var msg utils.MessageBody
	decode(t, resp, &msg)
	assert.Equal(t, "Film removed from favorites", msg.Message)

	resp = doJSON(t, app, http.MethodGet, "/user/favorites/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var films []models.Film
	decode(t, resp, &films)
	assert.Empty(t, films)
}

func TestListUsersHidesPasswords(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/user/register/", fiber.Map{
		"username": "bob", "password": "hunter2",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/admin/users/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var raw []map[string]interface{}
	decode(t, resp, &raw)
	require.Len(t, raw, 1)
	assert.Equal(t, "bob", raw[0]["username"])
	assert.NotContains(t, raw[0], "password")
}
