package handlers

import (
	"fmt"
	"strconv"

	"film-catalog/internal/apperr"
	"film-catalog/internal/repository"
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// FilmHandler serves the film catalog on both the /admin and /user mounts;
// the route table decides which operations each surface gets.
type FilmHandler struct {
	service services.FilmService
	logger  *logrus.Logger
}

func NewFilmHandler(service services.FilmService, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		logger:  logger,
	}
}

// ListFilms godoc
// @Summary List all films
// @Description Get the full film catalog
// @Tags films
// @Produce json
// @Success 200 {array} models.Film
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/ [get]
func (h *FilmHandler) ListFilms(c *fiber.Ctx) error {
	films, err := h.service.ListFilms(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch films")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to fetch films"))
	}
	return c.JSON(films)
}

// SearchFilms godoc
// @Summary Search films
// @Description Filter films by id, title, rt_score and release_date. Title matches case-insensitive substrings; numeric fields match exactly.
// @Tags films
// @Produce json
// @Param id query int false "Film ID"
// @Param title query string false "Title substring"
// @Param rt_score query int false "Rotten Tomatoes score"
// @Param release_date query int false "Release year"
// @Success 200 {array} models.Film
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/search [get]
func (h *FilmHandler) SearchFilms(c *fiber.Ctx) error {
	filter, err := parseFilmFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	films, err := h.service.SearchFilms(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to search films")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to search films"))
	}
	return c.JSON(films)
}

// GetFilm godoc
// @Summary Get film by ID
// @Tags films
// @Produce json
// @Param film_id path int true "Film ID"
// @Success 200 {object} models.Film
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /admin/films/{film_id} [get]
func (h *FilmHandler) GetFilm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "film_id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	film, err := h.service.GetFilmByID(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("film_id", id).Error("Failed to fetch film")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to fetch film"))
	}
	return c.JSON(film)
}

// CreateFilm godoc
// @Summary Create a film
// @Description Create a film; all seven fields are required
// @Tags films
// @Accept json
// @Produce json
// @Param film body FilmCreateRequest true "Film draft"
// @Success 201 {object} models.Film
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/films/ [post]
func (h *FilmHandler) CreateFilm(c *fiber.Ctx) error {
	var req FilmCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if missing := req.Missing(); len(missing) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Missing required fields. Required: %v", requiredFilmFields))
	}

	film := req.Film()
	if err := h.service.CreateFilm(c.Context(), film); err != nil {
		h.logger.WithError(err).Error("Failed to create film")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to create film"))
	}
	return c.Status(fiber.StatusCreated).JSON(film)
}

// UpdateFilm godoc
// @Summary Update a film
// @Description Partially update a film; only supplied fields change
// @Tags films
// @Accept json
// @Produce json
// @Param film_id path int true "Film ID"
// @Param film body FilmUpdateRequest true "Fields to update"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/films/{film_id} [put]
func (h *FilmHandler) UpdateFilm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "film_id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	var req FilmUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.UpdateFilm(c.Context(), id, req.Fields()); err != nil {
		h.logger.WithError(err).WithField("film_id", id).Error("Failed to update film")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to update film"))
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Film updated")
}

// DeleteFilm godoc
// @Summary Delete a film
// @Tags films
// @Produce json
// @Param film_id path int true "Film ID"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/films/{film_id} [delete]
func (h *FilmHandler) DeleteFilm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "film_id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	if err := h.service.DeleteFilm(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("film_id", id).Error("Failed to delete film")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to delete film"))
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Film deleted")
}

func parseFilmFilter(c *fiber.Ctx) (repository.FilmFilter, error) {
	var filter repository.FilmFilter

	if v := c.Query("id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filter, fmt.Errorf("Invalid id filter")
		}
		u := uint(id)
		filter.ID = &u
	}
	filter.Title = c.Query("title")
	if v := c.Query("rt_score"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("Invalid rt_score filter")
		}
		filter.RTScore = &score
	}
	if v := c.Query("release_date"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("Invalid release_date filter")
		}
		filter.ReleaseDate = &year
	}
	return filter, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
