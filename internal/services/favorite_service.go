package services

import (
	"context"

	"film-catalog/internal/apperr"
	"film-catalog/internal/database"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, filmID uint) error
	ListFavorites(ctx context.Context, userID uint) ([]models.Film, error)
	RemoveFavorite(ctx context.Context, userID, filmID uint) error
}

type favoriteService struct {
	repo     repository.FavoriteRepository
	filmRepo repository.FilmRepository
	userRepo repository.UserRepository
	logger   *logrus.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, filmRepo repository.FilmRepository, userRepo repository.UserRepository, logger *logrus.Logger) FavoriteService {
	return &favoriteService{
		repo:     repo,
		filmRepo: filmRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// AddFavorite checks film existence, then user existence, then the duplicate
// pair, in that order. The order fixes which error wins when several
// preconditions fail at once, so callers see deterministic responses.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, filmID uint) error {
	film, err := s.filmRepo.FindByID(ctx, filmID)
	if err != nil {
		return err
	}
	if film == nil {
		return apperr.New(apperr.NotFound, "Film not found")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.New(apperr.NotFound, "User not found")
	}

	existing, err := s.repo.FindByUserAndFilm(ctx, userID, filmID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.New(apperr.Conflict, "Film already in favorites")
	}

	favorite := &models.Favorite{UserID: userID, FilmID: filmID}
	if err := s.repo.Create(ctx, favorite); err != nil {
		// Concurrent add of the same pair slips past the pre-check and
		// trips the unique index instead.
		if database.IsDuplicateKey(err) {
			s.logger.WithFields(logrus.Fields{
				"user_id": userID,
				"film_id": filmID,
			}).Warn("Favorite insert lost race, unique index rejected duplicate")
			return apperr.Wrap(apperr.Conflict, "Film already in favorites", err)
		}
		return err
	}
	return nil
}

// ListFavorites returns the full film records for a user's favorites. An
// unknown user id and a user with no favorites both yield an empty list;
// the two cases are deliberately not distinguished.
func (s *favoriteService) ListFavorites(ctx context.Context, userID uint) ([]models.Film, error) {
	filmIDs, err := s.repo.FilmIDsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Failed to get favorite films", err)
	}
	if len(filmIDs) == 0 {
		return []models.Film{}, nil
	}

	films, err := s.filmRepo.FindByIDs(ctx, filmIDs)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Failed to get favorite films", err)
	}
	return films, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, filmID uint) error {
	existing, err := s.repo.FindByUserAndFilm(ctx, userID, filmID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.New(apperr.NotFound, "Favorite not found")
	}
	return s.repo.Delete(ctx, userID, filmID)
}
