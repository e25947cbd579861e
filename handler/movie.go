package handler

import (
	"cinema_booking/catalog"
	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// MovieListItem view model cho danh sách phim
type MovieListItem struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Status   string   `json:"status"`
	Duration int      `json:"duration"`
	Genres   []string `json:"genres"`
	Poster   string   `json:"poster,omitempty"`
}

func toMovieList(movies []model.Movie) []MovieListItem {
	items := []MovieListItem{}
	for _, m := range movies {
		var item MovieListItem
		if err := copier.Copy(&item, &m); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

func GetMovieNowShowing(c *fiber.Ctx) error {
	snap := catalog.Current()
	return utils.SuccessResponse(c, fiber.StatusOK, toMovieList(snap.NowShowing()))
}

func GetMovieUpcoming(c *fiber.Ctx) error {
	snap := catalog.Current()
	return utils.SuccessResponse(c, fiber.StatusOK, toMovieList(snap.ComingSoon()))
}

func GetMovieDetail(c *fiber.Ctx) error {
	snap := catalog.Current()
	movie := snap.MovieBySlug(c.Params("slug"))
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, nil)
	}

	// Đếm suất chiếu sắp tới để UI biết phim có đặt được không
	showtimes := snap.ShowtimesByMovie(movie.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"movie":         movie,
		"showtimeCount": len(showtimes),
	})
}

// GetMovieGenres danh sách thể loại đã khử trùng từ catalog
func GetMovieGenres(c *fiber.Ctx) error {
	snap := catalog.Current()

	seen := map[string]bool{}
	genres := []string{}
	for _, m := range snap.Movies {
		for _, g := range m.Genres {
			key := strings.ToLower(g)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			genres = append(genres, g)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}
