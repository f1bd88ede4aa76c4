package handlers

import (
	"film-catalog/internal/apperr"
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	service services.FavoriteService
	logger  *logrus.Logger
}

func NewFavoriteHandler(service services.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger,
	}
}

// AddFavorite godoc
// @Summary Add a film to a user's favorites
// @Tags favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Param film_id path int true "Film ID"
// @Success 201 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /user/favorites/{user_id}/{film_id} [post]
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID, filmID, err := parseFavoriteParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.AddFavorite(c.Context(), userID, filmID); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"film_id": filmID,
		}).Error("Failed to add favorite film")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to add favorite film"))
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Film added to favorites")
}

// ListFavorites godoc
// @Summary List a user's favorite films
// @Description Returns full film records; an unknown user id yields an empty list
// @Tags favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Film
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /user/favorites/{user_id} [get]
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	films, err := h.service.ListFavorites(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to get favorite films")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to get favorite films"))
	}
	return c.JSON(films)
}

// RemoveFavorite godoc
// @Summary Remove a film from a user's favorites
// @Tags favorites
// @Produce json
// @Param user_id path int true "User ID"
// @Param film_id path int true "Film ID"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /user/favorites/{user_id}/{film_id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID, filmID, err := parseFavoriteParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.RemoveFavorite(c.Context(), userID, filmID); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"film_id": filmID,
		}).Error("Failed to remove favorite film")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to remove favorite film"))
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Film removed from favorites")
}

func parseFavoriteParams(c *fiber.Ctx) (uint, uint, error) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	filmID, err := parseIDParam(c, "film_id")
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid film ID")
	}
	return userID, filmID, nil
}
