package constants

// Trạng thái phim (theo backend)
const (
	MOVIE_NOW_SHOWING = "now_showing"
	MOVIE_COMING_SOON = "coming_soon"
	MOVIE_ENDED       = "ended"
)

// Trạng thái ghế trong sơ đồ ghế
const (
	SEAT_AVAILABLE = "available"
	SEAT_OCCUPIED  = "occupied"
	SEAT_SELECTED  = "selected"
)

// Hạng ghế
const (
	SEAT_TYPE_GOLD     = "gold"
	SEAT_TYPE_PLATINUM = "platinum"
	SEAT_TYPE_BOX      = "box"
)

var SeatTypes = []string{SEAT_TYPE_GOLD, SEAT_TYPE_PLATINUM, SEAT_TYPE_BOX}

// Phương thức thanh toán
const (
	PAYMENT_CREDIT_CARD   = "credit_card"
	PAYMENT_DEBIT_CARD    = "debit_card"
	PAYMENT_BANK_TRANSFER = "bank_transfer"
)

var PaymentMethods = []string{PAYMENT_CREDIT_CARD, PAYMENT_DEBIT_CARD, PAYMENT_BANK_TRANSFER}

// Cửa sổ đặt vé nhanh: hôm nay + 6 ngày tới
const QUICK_BOOKING_WINDOW_DAYS = 7

// Thông báo lỗi dùng chung
const (
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu truyền vào không phải là số"
	DRAFT_NOT_FOUND          = "Không tìm thấy phiên đặt vé"
	DRAFT_EXPIRED            = "Phiên đặt vé đã hết hạn"
	MOVIE_NOT_FOUND          = "Không tìm thấy phim"
	SHOWTIME_NOT_FOUND       = "Không tìm thấy suất chiếu"
	SEAT_NOT_FOUND           = "Không tìm thấy ghế"
	SEAT_ALREADY_TAKEN       = "Ghế đã có người đặt"
	SEAT_NONE_SELECTED       = "Vui lòng chọn ít nhất một ghế"
	BOOKING_GENERIC_ERROR    = "Đặt vé thất bại. Vui lòng thử lại sau"
	BOOKING_IN_FLIGHT        = "Yêu cầu đặt vé đang được xử lý"
	BACKEND_UNREACHABLE      = "Không thể kết nối hệ thống đặt vé"
)
