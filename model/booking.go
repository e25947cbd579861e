package model

// BookingSeat ghế trong payload gửi backend, không kèm giá vì backend tự tính
type BookingSeat struct {
	Seat string `json:"seat"`
	Type string `json:"type"`
}

// BookingRequest body POST /bookings của backend
type BookingRequest struct {
	ShowtimeId    uint          `json:"showtime_id"`
	Seats         []BookingSeat `json:"seats"`
	PaymentMethod string        `json:"payment_method"`
}

// Booking kết quả đặt vé backend trả về
type Booking struct {
	ID            uint     `json:"id"`
	BookingCode   string   `json:"booking_code"`
	Seats         []string `json:"seats"`
	TotalAmount   float64  `json:"total_amount"`
	PaymentStatus string   `json:"payment_status"`
}

// CardInfo thông tin thẻ, chỉ bắt buộc với phương thức thẻ
type CardInfo struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// CheckoutInput form thanh toán phía người dùng
type CheckoutInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=credit_card debit_card bank_transfer"`
	Card          CardInfo `json:"card"`
	TermsAccepted bool     `json:"terms_accepted"`
}
