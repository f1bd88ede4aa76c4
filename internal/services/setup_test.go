package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"film-catalog/internal/config"
	"film-catalog/internal/database"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	cfg := config.DatabaseConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		QueryTimeout:    5 * time.Second,
	}

	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedFilm(t *testing.T, repo repository.FilmRepository, title string, year, score int) *models.Film {
	t.Helper()

	film := &models.Film{
		Title:       title,
		MovieBanner: "https://example.com/" + title + ".jpg",
		Description: "description of " + title,
		Director:    "Director",
		Producer:    "Producer",
		ReleaseDate: year,
		RTScore:     score,
	}
	require.NoError(t, repo.Create(context.Background(), film))
	return film
}
