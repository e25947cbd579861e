package validate

import (
	"cinema_booking/constants"
	"cinema_booking/utils"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}

// DraftId kiểm tra id phiên đặt vé là uuid hợp lệ
func DraftId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if _, err := uuid.Parse(id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DRAFT_NOT_FOUND, errors.New("draft id invalid"))
		}

		c.Locals("draftId", id)
		return c.Next()
	}
}
