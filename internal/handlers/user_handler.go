package handlers

import (
	"film-catalog/internal/apperr"
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a user
// @Description Create a user account; usernames are unique
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Credentials"
// @Success 201 {object} utils.RegisterBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /user/register/ [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userID, err := h.service.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WithError(err).Error("Failed to register user")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to register user"))
	}

	return c.Status(fiber.StatusCreated).JSON(utils.RegisterBody{
		Message: "User created successfully",
		UserID:  userID,
	})
}

// ListUsers godoc
// @Summary List all users
// @Description Get all registered users. Password hashes are never included.
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/users/ [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch users")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to fetch users"))
	}
	return c.JSON(users)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user and all of their favorites
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /admin/users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "user_id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.service.DeleteUser(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to delete user")
		return utils.ErrorResponse(c, apperr.Status(err), apperr.Detail(err, "Failed to delete user"))
	}
	return utils.MessageResponse(c, fiber.StatusOK, "User deleted")
}
