package validate

import (
	"cinema_booking/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CheckoutBody parse body form thanh toán và kiểm tra cấu trúc (phương thức
// thanh toán phải là một trong ba biến thể). Rule theo từng field chạy trong
// handler để trả về bản đồ lỗi inline.
func CheckoutBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("checkoutInput", input)
		return c.Next()
	}
}

// SelectBody body các bước chọn của đặt vé nhanh
type SelectBody struct {
	MovieId    uint   `json:"movie_id"`
	Date       string `json:"date"`
	TheaterId  uint   `json:"theater_id"`
	ShowtimeId uint   `json:"showtime_id"`
}

func SelectStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input SelectBody
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		c.Locals("selectInput", input)
		return c.Next()
	}
}
