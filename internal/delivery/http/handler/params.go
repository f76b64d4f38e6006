package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tourism-route-service/internal/pkg/errors"
)

// uuidParam разбирает path-параметр как uuid
func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"param": name,
		})
	}
	return id, nil
}

// parseBody - BodyParser с ошибкой в формате AppError
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		})
	}
	return nil
}
