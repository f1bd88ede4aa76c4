package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"gorm.io/gorm"
)

// FilmFilter is a conjunctive search filter. Nil/empty fields are ignored.
// Title matches as a case-insensitive substring; numeric fields match
// exactly.
type FilmFilter struct {
	ID          *uint
	Title       string
	RTScore     *int
	ReleaseDate *int
}

func (f FilmFilter) Empty() bool {
	return f.ID == nil && f.Title == "" && f.RTScore == nil && f.ReleaseDate == nil
}

type FilmRepository interface {
	Create(ctx context.Context, film *models.Film) error
	FindAll(ctx context.Context) ([]models.Film, error)
	Search(ctx context.Context, filter FilmFilter) ([]models.Film, error)
	FindByID(ctx context.Context, id uint) (*models.Film, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Film, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type filmRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFilmRepository(db *database.Database) FilmRepository {
	return &filmRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *filmRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(film).Error
}

func (r *filmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	films := []models.Film{}
	err := r.db.WithContext(ctx).Order("id").Find(&films).Error
	return films, err
}

func (r *filmRepository) Search(ctx context.Context, filter FilmFilter) ([]models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Film{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Title != "" {
		// LOWER+LIKE works the same on postgres and sqlite
		pattern := "%" + strings.ToLower(filter.Title) + "%"
		query = query.Where("LOWER(title) LIKE ?", pattern)
	}
	if filter.RTScore != nil {
		query = query.Where("rt_score = ?", *filter.RTScore)
	}
	if filter.ReleaseDate != nil {
		query = query.Where("release_date = ?", *filter.ReleaseDate)
	}

	films := []models.Film{}
	err := query.Order("id").Find(&films).Error
	return films, err
}

func (r *filmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err := r.db.WithContext(ctx).First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &film, nil
}

func (r *filmRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	films := []models.Film{}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&films).Error
	return films, err
}

func (r *filmRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Film{}).Where("id = ?", id).Updates(fields).Error
}

func (r *filmRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Film{}, id).Error
}
