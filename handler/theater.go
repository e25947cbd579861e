package handler

import (
	"cinema_booking/catalog"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTheaters(c *fiber.Ctx) error {
	snap := catalog.Current()
	city := c.Query("city")
	return utils.SuccessResponse(c, fiber.StatusOK, snap.TheatersByCity(city))
}

// GetTheaterCities danh sách thành phố có rạp, khử trùng, giữ thứ tự
func GetTheaterCities(c *fiber.Ctx) error {
	snap := catalog.Current()

	seen := map[string]bool{}
	cities := []string{}
	for _, t := range snap.Theaters {
		if t.City == "" || seen[t.City] {
			continue
		}
		seen[t.City] = true
		cities = append(cities, t.City)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cities)
}
