package services

import (
	"context"

	"film-catalog/internal/apperr"
	"film-catalog/internal/database"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type FilmService interface {
	ListFilms(ctx context.Context) ([]models.Film, error)
	SearchFilms(ctx context.Context, filter repository.FilmFilter) ([]models.Film, error)
	GetFilmByID(ctx context.Context, id uint) (*models.Film, error)
	CreateFilm(ctx context.Context, film *models.Film) error
	UpdateFilm(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteFilm(ctx context.Context, id uint) error
}

type filmService struct {
	repo   repository.FilmRepository
	logger *logrus.Logger
}

func NewFilmService(repo repository.FilmRepository, logger *logrus.Logger) FilmService {
	return &filmService{
		repo:   repo,
		logger: logger,
	}
}

func (s *filmService) ListFilms(ctx context.Context) ([]models.Film, error) {
	films, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Failed to fetch films", err)
	}
	return films, nil
}

func (s *filmService) SearchFilms(ctx context.Context, filter repository.FilmFilter) ([]models.Film, error) {
	// No filters behaves exactly like the unfiltered listing.
	if filter.Empty() {
		return s.ListFilms(ctx)
	}

	films, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Failed to search films", err)
	}
	return films, nil
}

func (s *filmService) GetFilmByID(ctx context.Context, id uint) (*models.Film, error) {
	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Failed to fetch film", err)
	}
	if film == nil {
		return nil, apperr.New(apperr.NotFound, "Film not found")
	}
	return film, nil
}

func (s *filmService) CreateFilm(ctx context.Context, film *models.Film) error {
	if err := s.repo.Create(ctx, film); err != nil {
		// A NOT NULL violation means the caller omitted a required column;
		// report it as a client error, not a server failure.
		if database.IsNotNullViolation(err) {
			return apperr.Wrap(apperr.Validation, "Database error: Required field missing", err)
		}
		return err
	}
	return nil
}

func (s *filmService) UpdateFilm(ctx context.Context, id uint, fields map[string]interface{}) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.New(apperr.NotFound, "Film not found")
	}
	if len(fields) == 0 {
		return apperr.New(apperr.Validation, "No update data provided")
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *filmService) DeleteFilm(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.New(apperr.NotFound, "Film not found")
	}

	// Favorites referencing this film are left in place. Whether film
	// deletion should cascade is an open product question; see DESIGN.md.
	return s.repo.Delete(ctx, id)
}
