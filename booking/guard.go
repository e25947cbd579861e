package booking

import (
	"cinema_booking/client"
	"cinema_booking/constants"
	"cinema_booking/model"
	"context"
	"errors"
	"sync/atomic"
)

// SubmitFunc lời gọi đặt vé lên backend (client.API.CreateBooking khi chạy thật)
type SubmitFunc func(ctx context.Context, req model.BookingRequest, authToken string) (*model.Booking, error)

// Guard bảo đảm mỗi phiên đặt vé chỉ có tối đa một yêu cầu đang bay.
// Gọi lại trong lúc đang bay là no-op (không xếp hàng, không lỗi);
// thành công hay thất bại đều trả guard về trạng thái sẵn sàng.
type Guard struct {
	inFlight atomic.Bool
	submit   SubmitFunc
}

func NewGuard(submit SubmitFunc) *Guard {
	return &Guard{submit: submit}
}

// InFlight đang có yêu cầu chưa xong hay không (UI disable nút submit)
func (g *Guard) InFlight() bool {
	return g.inFlight.Load()
}

// Submit gửi payload qua submit func. Trả về false nếu đã có yêu cầu đang bay
// và khi đó callback không được gọi. Lỗi backend đưa message người đọc được
// vào onError, không có message thì dùng thông báo chung.
func (g *Guard) Submit(
	ctx context.Context,
	req model.BookingRequest,
	authToken string,
	onSuccess func(*model.Booking),
	onError func(string),
) bool {
	if !g.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer g.inFlight.Store(false)

	result, err := g.submit(ctx, req, authToken)
	if err != nil {
		var subErr *client.SubmissionError
		if errors.As(err, &subErr) && subErr.Message != "" {
			onError(subErr.Message)
		} else {
			onError(constants.BOOKING_GENERIC_ERROR)
		}
		return true
	}

	onSuccess(result)
	return true
}
