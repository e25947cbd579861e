package handler

import (
	"cinema_booking/booking"
	"cinema_booking/client"
	"cinema_booking/constants"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// ConfirmedBooking chi tiết đặt vé đã xác nhận, giữ trong bộ nhớ để render
// trang xác nhận. Trạng thái gốc vẫn thuộc backend.
type ConfirmedBooking struct {
	Booking       model.Booking
	MovieTitle    string
	TheaterName   string
	Showtime      string
	Seats         []string
	PaymentMethod string
	CustomerEmail string
	Cancelled     bool
}

var (
	confirmedMu sync.Mutex
	confirmed   = make(map[uint]*ConfirmedBooking)
)

// recordConfirmedBooking chụp lại chi tiết suất chiếu tại thời điểm đặt
// (catalog có thể refresh sau đó) và gửi email xác nhận
func recordConfirmedBooking(draft *booking.Draft, input model.CheckoutInput, b *model.Booking) {
	draft.Lock()
	st := draft.Selection.Showtime()
	movie := draft.Selection.Movie()
	theater := draft.Selection.Theater()
	draft.Unlock()

	cb := &ConfirmedBooking{
		Booking:       *b,
		Seats:         b.Seats,
		PaymentMethod: input.PaymentMethod,
		CustomerEmail: input.Email,
	}
	if st != nil {
		cb.Showtime = helper.FormatShowtime(st.ShowDate, st.ShowTime)
	}
	if movie != nil {
		cb.MovieTitle = movie.Title
	}
	if theater != nil {
		cb.TheaterName = theater.Name
	}

	confirmedMu.Lock()
	confirmed[b.ID] = cb
	confirmedMu.Unlock()

	utils.SendBookingConfirmationEmail(input.Email, utils.BookingConfirmationData{
		BookingCode:   b.BookingCode,
		MovieTitle:    cb.MovieTitle,
		TheaterName:   cb.TheaterName,
		Showtime:      cb.Showtime,
		Seats:         helper.JoinSeats(b.Seats),
		TotalAmount:   helper.FormatVND(b.TotalAmount),
		PaymentMethod: input.PaymentMethod,
	})
}

// GetBookingDetail trang xác nhận đặt vé kèm QR code
func GetBookingDetail(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	confirmedMu.Lock()
	cb, ok := confirmed[uint(id)]
	confirmedMu.Unlock()
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", nil)
	}

	qrCode, err := utils.BookingQR(cb.Booking.BookingCode, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn %s: %v", cb.Booking.BookingCode, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":       cb.Booking,
		"movieTitle":    cb.MovieTitle,
		"theaterName":   cb.TheaterName,
		"showtime":      cb.Showtime,
		"seats":         cb.Seats,
		"totalAmount":   helper.FormatVND(cb.Booking.TotalAmount),
		"paymentMethod": cb.PaymentMethod,
		"cancelled":     cb.Cancelled,
		"qrCode":        qrCode,
	})
}

// CancelBooking huỷ vé, proxy sang backend, idempotent
func CancelBooking(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	if err := client.API.CancelBooking(c.Context(), uint(id)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.BOOKING_GENERIC_ERROR, err)
	}

	confirmedMu.Lock()
	if cb, ok := confirmed[uint(id)]; ok {
		cb.Cancelled = true
	}
	confirmedMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"cancelled": true})
}
