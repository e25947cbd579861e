package booking

import (
	"cinema_booking/model"
	"regexp"
	"strings"
)

// Tên field trong bản đồ lỗi validation
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldCardNumber = "card_number"
	FieldCardHolder = "card_holder"
	FieldExpiry     = "expiry"
	FieldCVV        = "cvv"
	FieldTerms      = "terms_accepted"
)

// Thông báo lỗi hiển thị inline trên form
const (
	MsgNameRequired   = "Vui lòng nhập họ tên"
	MsgEmailRequired  = "Vui lòng nhập email"
	MsgEmailFormat    = "Email không hợp lệ"
	MsgPhoneRequired  = "Vui lòng nhập số điện thoại"
	MsgPhoneFormat    = "Số điện thoại không hợp lệ"
	MsgCardRequired   = "Vui lòng nhập số thẻ"
	MsgCardFormat     = "Số thẻ không hợp lệ"
	MsgHolderRequired = "Vui lòng nhập tên chủ thẻ"
	MsgExpiryRequired = "Vui lòng nhập ngày hết hạn"
	MsgExpiryFormat   = "Ngày hết hạn không hợp lệ (MM/YY)"
	MsgCVVRequired    = "Vui lòng nhập CVV"
	MsgCVVFormat      = "CVV không hợp lệ"
	MsgTermsRequired  = "Vui lòng đồng ý điều khoản sử dụng"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^0(3|5|7|8|9)\d{8}$`)
	cardRegex   = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidationErrors bản đồ field → thông báo, tính lại mỗi lượt validate
type ValidationErrors map[string]string

func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

// ValidateCheckout chạy toàn bộ rule khi submit. Các field thẻ chỉ bắt buộc
// khi phương thức thanh toán là thẻ.
func ValidateCheckout(input model.CheckoutInput) ValidationErrors {
	errs := ValidationErrors{}
	fields := []string{
		FieldName, FieldEmail, FieldPhone,
		FieldCardNumber, FieldCardHolder, FieldExpiry, FieldCVV,
		FieldTerms,
	}
	for _, field := range fields {
		if msg := ValidateCheckoutField(input, field); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateCheckoutField validate một field (khi blur), chuỗi rỗng nghĩa là hợp lệ
func ValidateCheckoutField(input model.CheckoutInput, field string) string {
	method, _ := ParsePaymentMethod(input.PaymentMethod)

	switch field {
	case FieldName:
		if strings.TrimSpace(input.Name) == "" {
			return MsgNameRequired
		}
	case FieldEmail:
		email := strings.TrimSpace(input.Email)
		if email == "" {
			return MsgEmailRequired
		}
		if !emailRegex.MatchString(email) {
			return MsgEmailFormat
		}
	case FieldPhone:
		phone := strings.TrimSpace(input.Phone)
		if phone == "" {
			return MsgPhoneRequired
		}
		if !phoneRegex.MatchString(phone) {
			return MsgPhoneFormat
		}
	case FieldCardNumber:
		if !method.RequiresCardDetails() {
			return ""
		}
		if strings.TrimSpace(input.Card.Number) == "" {
			return MsgCardRequired
		}
		if !cardRegex.MatchString(input.Card.Number) {
			return MsgCardFormat
		}
	case FieldCardHolder:
		if !method.RequiresCardDetails() {
			return ""
		}
		if strings.TrimSpace(input.Card.Holder) == "" {
			return MsgHolderRequired
		}
	case FieldExpiry:
		if !method.RequiresCardDetails() {
			return ""
		}
		if strings.TrimSpace(input.Card.Expiry) == "" {
			return MsgExpiryRequired
		}
		if !expiryRegex.MatchString(input.Card.Expiry) {
			return MsgExpiryFormat
		}
	case FieldCVV:
		if !method.RequiresCardDetails() {
			return ""
		}
		if strings.TrimSpace(input.Card.CVV) == "" {
			return MsgCVVRequired
		}
		if !cvvRegex.MatchString(input.Card.CVV) {
			return MsgCVVFormat
		}
	case FieldTerms:
		if !input.TermsAccepted {
			return MsgTermsRequired
		}
	}
	return ""
}

// FormatCardNumber gom số thẻ thành nhóm 4 cách nhau một khoảng trắng,
// tối đa 16 chữ số. Áp dụng khi người dùng gõ, không phải validation
func FormatCardNumber(raw string) string {
	digits := onlyDigits(raw, 16)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatExpiry tự chèn "/" sau 2 chữ số, tối đa 4 chữ số
func FormatExpiry(raw string) string {
	digits := onlyDigits(raw, 4)
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV cắt còn tối đa 3 chữ số. Ô nhập cắt ở 3 dù rule chấp nhận 3-4,
// giữ nguyên cả hai hành vi quan sát được.
func FormatCVV(raw string) string {
	return onlyDigits(raw, 3)
}

func onlyDigits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// BuildPayload gom payload gửi backend, không kèm giá vì backend tự tính lại
func BuildPayload(showtimeId uint, seats []model.SelectedSeat, method PaymentMethod) model.BookingRequest {
	out := make([]model.BookingSeat, 0, len(seats))
	for _, s := range seats {
		out = append(out, model.BookingSeat{Seat: s.Seat, Type: s.Type})
	}
	return model.BookingRequest{
		ShowtimeId:    showtimeId,
		Seats:         out,
		PaymentMethod: method.String(),
	}
}
