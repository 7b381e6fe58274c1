package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrNotFound marks service errors that should surface as a 404.
var ErrNotFound = errors.New("not found")

// ErrorHandlerMiddleware converts errors returned by handlers into the
// standard JSON envelope so controllers never build error bodies.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		}

		log.Printf("[ERROR] unhandled: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
