package handler

import (
	"cinema_booking/booking"
	"cinema_booking/catalog"
	"cinema_booking/constants"
	"cinema_booking/middleware"
	"cinema_booking/model"
	"cinema_booking/utils"
	"cinema_booking/validate"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func getDraft(c *fiber.Ctx) *booking.Draft {
	draftId, _ := c.Locals("draftId").(string)
	return Drafts.Get(draftId, middleware.SessionId(c))
}

func selectInput(c *fiber.Ctx) validate.SelectBody {
	input, _ := c.Locals("selectInput").(validate.SelectBody)
	return input
}

// StartDraft mở phiên đặt vé nhanh mới cho session hiện tại
func StartDraft(c *fiber.Ctx) error {
	snap := catalog.Current()
	draft := Drafts.Create(middleware.SessionId(c), snap)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"draftId": draft.ID,
		"movies":  toMovieList(snap.NowShowing()),
	})
}

// ChooseMovie bước 1: chọn phim → trả về các ngày chiếu trong 7 ngày tới
func ChooseMovie(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	draft.Lock()
	defer draft.Unlock()
	draft.Touch()

	if err := draft.Selection.SetMovie(selectInput(c).MovieId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err)
	}
	draft.SeatMap = nil

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"dates": draft.Selection.AvailableDates(),
	})
}

// ChooseDate bước 2: chọn ngày → trả về các rạp có suất
func ChooseDate(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	draft.Lock()
	defer draft.Unlock()
	draft.Touch()

	if err := draft.Selection.SetDate(selectInput(c).Date); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày chiếu không hợp lệ", err)
	}
	draft.SeatMap = nil

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"theaters": draft.Selection.AvailableTheaters(),
	})
}

// ChooseTheater bước 3: chọn rạp → trả về các suất chiếu theo giờ tăng dần
func ChooseTheater(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	draft.Lock()
	defer draft.Unlock()
	draft.Touch()

	if err := draft.Selection.SetTheater(selectInput(c).TheaterId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Rạp không hợp lệ", err)
	}
	draft.SeatMap = nil

	showtimes := draft.Selection.AvailableShowtimes()
	out := []fiber.Map{}
	for _, st := range showtimes {
		out = append(out, fiber.Map{
			"id":       st.ID,
			"showTime": st.ShowTime,
			"prices":   st.Prices,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtimes": out,
	})
}

// ChooseShowtime bước 4: chốt suất → dựng sơ đồ ghế
func ChooseShowtime(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	draft.Lock()
	defer draft.Unlock()
	draft.Touch()

	if err := draft.ChooseShowtime(selectInput(c).ShowtimeId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND, err)
	}

	return seatMapResponse(c, draft)
}

func seatMapResponse(c *fiber.Ctx, draft *booking.Draft) error {
	if draft.SeatMap == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND,
			errors.New("chưa chọn suất chiếu"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":     draft.SeatMap.Rows(),
		"selected": draft.SeatMap.SelectedSeats(),
		"subtotal": draft.SeatMap.Subtotal(),
	})
}

// GetSeatMap sơ đồ ghế hiện tại của phiên
func GetSeatMap(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	draft.Lock()
	defer draft.Unlock()
	draft.Touch()

	return seatMapResponse(c, draft)
}

// ToggleSeat chọn/bỏ chọn ghế. Ghế occupied bị từ chối nhưng không phải lỗi:
// trả về changed=false để UI giữ nguyên.
func ToggleSeat(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	draft.Lock()
	defer draft.Unlock()
	draft.Touch()

	if draft.SeatMap == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND,
			errors.New("chưa chọn suất chiếu"))
	}

	seatId := c.Params("seatId")
	if _, ok := draft.SeatMap.Status(seatId); !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, nil)
	}

	seat, changed := draft.SeatMap.Toggle(seatId)
	resp := fiber.Map{
		"seat":     seat,
		"changed":  changed,
		"selected": draft.SeatMap.SelectedSeats(),
		"subtotal": draft.SeatMap.Subtotal(),
	}
	if !changed {
		resp["reason"] = constants.SEAT_ALREADY_TAKEN
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

// Checkout validate form rồi gửi đặt vé lên backend qua guard
func Checkout(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	input, _ := c.Locals("checkoutInput").(model.CheckoutInput)

	draft.Lock()
	draft.Touch()
	if draft.Selection.ShowtimeId == 0 || draft.SeatMap == nil {
		draft.Unlock()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND,
			errors.New("chưa chọn suất chiếu"))
	}
	if len(draft.SeatMap.SelectedSeats()) == 0 {
		draft.Unlock()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SEAT_NONE_SELECTED, nil)
	}
	draft.Unlock()

	result := draft.Submit(c.Context(), input, middleware.AuthToken(c))

	if !result.Accepted {
		// Đang có yêu cầu bay: lượt bấm này bị nuốt, không gửi thêm request
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":   "pending",
			"message":  constants.BOOKING_IN_FLIGHT,
			"inFlight": true,
		})
	}
	if !result.Errors.Valid() {
		return utils.ValidationErrorResponse(c, "Thông tin thanh toán chưa hợp lệ", result.Errors)
	}
	if result.ErrorMsg != "" {
		// Draft giữ nguyên để thử lại
		return utils.ErrorResponse(c, fiber.StatusBadGateway, result.ErrorMsg, nil)
	}

	recordConfirmedBooking(draft, input, result.Booking)
	Drafts.Delete(draft.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"booking": result.Booking,
	})
}

// AbandonDraft người dùng rời luồng đặt vé
func AbandonDraft(c *fiber.Ctx) error {
	draft := getDraft(c)
	if draft == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRAFT_NOT_FOUND, nil)
	}

	Drafts.Delete(draft.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
