package services

import (
	"context"
	"testing"

	"film-catalog/internal/apperr"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilmService(t *testing.T) (FilmService, repository.FilmRepository) {
	db := newTestDB(t)
	repo := repository.NewFilmRepository(db)
	return NewFilmService(repo, newTestLogger()), repo
}

func TestCreateAndListFilms(t *testing.T) {
	svc, _ := newFilmService(t)
	ctx := context.Background()

	film := &models.Film{
		Title:       "A",
		MovieBanner: "u",
		Description: "d",
		Director:    "x",
		Producer:    "y",
		ReleaseDate: 1999,
		RTScore:     80,
	}
	require.NoError(t, svc.CreateFilm(ctx, film))
	assert.NotZero(t, film.ID)

	films, err := svc.ListFilms(ctx)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "A", films[0].Title)
	assert.Equal(t, 1999, films[0].ReleaseDate)
	assert.Equal(t, 80, films[0].RTScore)
}

func TestListFilmsEmpty(t *testing.T) {
	svc, _ := newFilmService(t)

	films, err := svc.ListFilms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestSearchFilms(t *testing.T) {
	svc, repo := newFilmService(t)
	ctx := context.Background()

	castle := seedFilm(t, repo, "Castle in the Sky", 1986, 95)
	totoro := seedFilm(t, repo, "My Neighbor Totoro", 1988, 93)
	seedFilm(t, repo, "Porco Rosso", 1992, 95)

	t.Run("title is a case-insensitive substring match", func(t *testing.T) {
		films, err := svc.SearchFilms(ctx, repository.FilmFilter{Title: "CASTLE"})
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, castle.ID, films[0].ID)
	})

	t.Run("rt_score matches exactly", func(t *testing.T) {
		score := 95
		films, err := svc.SearchFilms(ctx, repository.FilmFilter{RTScore: &score})
		require.NoError(t, err)
		assert.Len(t, films, 2)

		// 9 is a substring of 95 and 93 but must not match anything
		score = 9
		films, err = svc.SearchFilms(ctx, repository.FilmFilter{RTScore: &score})
		require.NoError(t, err)
		assert.Empty(t, films)
	})

	t.Run("release_date matches exactly", func(t *testing.T) {
		year := 1988
		films, err := svc.SearchFilms(ctx, repository.FilmFilter{ReleaseDate: &year})
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, totoro.ID, films[0].ID)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		score := 95
		year := 1986
		films, err := svc.SearchFilms(ctx, repository.FilmFilter{RTScore: &score, ReleaseDate: &year})
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, castle.ID, films[0].ID)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		films, err := svc.SearchFilms(ctx, repository.FilmFilter{})
		require.NoError(t, err)
		assert.Len(t, films, 3)
	})
}

func TestGetFilmByID(t *testing.T) {
	svc, repo := newFilmService(t)
	ctx := context.Background()

	film := seedFilm(t, repo, "Spirited Away", 2001, 97)

	got, err := svc.GetFilmByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, film.Title, got.Title)

	_, err = svc.GetFilmByID(ctx, 9999)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestUpdateFilm(t *testing.T) {
	svc, repo := newFilmService(t)
	ctx := context.Background()

	film := seedFilm(t, repo, "Ponyo", 2008, 91)

	t.Run("unknown id is not found regardless of patch", func(t *testing.T) {
		err := svc.UpdateFilm(ctx, 9999, map[string]interface{}{"title": "X"})
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})

	t.Run("empty patch is a validation error", func(t *testing.T) {
		err := svc.UpdateFilm(ctx, film.ID, map[string]interface{}{})
		assert.True(t, apperr.IsKind(err, apperr.Validation))
	})

	t.Run("partial patch changes only the given fields", func(t *testing.T) {
		err := svc.UpdateFilm(ctx, film.ID, map[string]interface{}{"rt_score": 92})
		require.NoError(t, err)

		got, err := svc.GetFilmByID(ctx, film.ID)
		require.NoError(t, err)
		assert.Equal(t, 92, got.RTScore)
		assert.Equal(t, "Ponyo", got.Title)
		assert.Equal(t, 2008, got.ReleaseDate)
		assert.Equal(t, film.Director, got.Director)
	})
}

func TestDeleteFilm(t *testing.T) {
	svc, repo := newFilmService(t)
	ctx := context.Background()

	film := seedFilm(t, repo, "The Wind Rises", 2013, 88)

	require.NoError(t, svc.DeleteFilm(ctx, film.ID))

	films, err := svc.ListFilms(ctx)
	require.NoError(t, err)
	assert.Empty(t, films)

	err = svc.DeleteFilm(ctx, film.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
