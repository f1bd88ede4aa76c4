package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the single error shape for every failed request.
type ErrorBody struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}

// MessageBody is the success shape for mutations that return no entity.
type MessageBody struct {
	Message string `json:"message"`
}

// RegisterBody is the success shape for user registration.
type RegisterBody struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// ErrorResponse sends the standard error body.
func ErrorResponse(c *fiber.Ctx, code int, detail string) error {
	return c.Status(code).JSON(ErrorBody{
		StatusCode: code,
		Detail:     detail,
	})
}

// MessageResponse sends a plain message body.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageBody{
		Message: message,
	})
}
