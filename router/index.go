package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	// Danh mục phim / rạp cho trang browse
	phim := v1.Group("/phim")
	phim.Get("/dang-chieu", middleware.OptionalJWT(), handler.GetMovieNowShowing)
	phim.Get("/sap-chieu", middleware.OptionalJWT(), handler.GetMovieUpcoming)
	phim.Get("/genres", middleware.OptionalJWT(), handler.GetMovieGenres)
	phim.Get("/:slug", middleware.OptionalJWT(), handler.GetMovieDetail)

	rap := v1.Group("/rap")
	rap.Get("/", middleware.OptionalJWT(), handler.GetTheaters)
	rap.Get("/tinh", middleware.OptionalJWT(), handler.GetTheaterCities)

	// Đặt vé nhanh: phim → ngày → rạp → suất → ghế → thanh toán
	datve := v1.Group("/dat-ve", middleware.Session(), middleware.OptionalJWT())
	datve.Post("/bat-dau", handler.StartDraft)
	datve.Post("/:draftId/chon-phim", validate.DraftId("draftId"), validate.SelectStep(), handler.ChooseMovie)
	datve.Post("/:draftId/chon-ngay", validate.DraftId("draftId"), validate.SelectStep(), handler.ChooseDate)
	datve.Post("/:draftId/chon-rap", validate.DraftId("draftId"), validate.SelectStep(), handler.ChooseTheater)
	datve.Post("/:draftId/chon-suat", validate.DraftId("draftId"), validate.SelectStep(), handler.ChooseShowtime)
	datve.Get("/:draftId/ghe", validate.DraftId("draftId"), handler.GetSeatMap)
	datve.Post("/:draftId/ghe/:seatId", validate.DraftId("draftId"), handler.ToggleSeat)
	datve.Post("/:draftId/thanh-toan", validate.DraftId("draftId"), validate.CheckoutBody(), handler.Checkout)
	datve.Delete("/:draftId", validate.DraftId("draftId"), handler.AbandonDraft)

	// Trang xác nhận và huỷ vé
	donhang := v1.Group("/don-hang", middleware.Session(), middleware.OptionalJWT())
	donhang.Get("/:bookingId", validate.GetById("bookingId"), handler.GetBookingDetail)
	donhang.Post("/:bookingId/cancel", validate.GetById("bookingId"), handler.CancelBooking)

	// Sơ đồ ghế realtime
	lichchieu := v1.Group("/lich-chieu")
	lichchieu.Get("/ghe/:showtimeId", websocket.New(handler.SeatWebsocket))
}
