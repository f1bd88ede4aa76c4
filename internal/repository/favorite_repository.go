package repository

import (
	"context"
	"errors"
	"time"

	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	FindByUserAndFilm(ctx context.Context, userID, filmID uint) (*models.Favorite, error)
	FilmIDsByUser(ctx context.Context, userID uint) ([]uint, error)
	Delete(ctx context.Context, userID, filmID uint) error
}

type favoriteRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFavoriteRepository(db *database.Database) FavoriteRepository {
	return &favoriteRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *favoriteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) FindByUserAndFilm(ctx context.Context, userID, filmID uint) (*models.Favorite, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FilmIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("film_id").
		Pluck("film_id", &ids).Error
	return ids, err
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, filmID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Delete(&models.Favorite{}).Error
}
