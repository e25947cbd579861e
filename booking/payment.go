package booking

import "cinema_booking/constants"

// PaymentMethod biến thể phương thức thanh toán; logic thẻ rẽ nhánh qua
// RequiresCardDetails thay vì so chuỗi rải rác
type PaymentMethod string

const (
	CreditCard   PaymentMethod = constants.PAYMENT_CREDIT_CARD
	DebitCard    PaymentMethod = constants.PAYMENT_DEBIT_CARD
	BankTransfer PaymentMethod = constants.PAYMENT_BANK_TRANSFER
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case CreditCard, DebitCard, BankTransfer:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

// RequiresCardDetails true với các phương thức thẻ
func (p PaymentMethod) RequiresCardDetails() bool {
	return p == CreditCard || p == DebitCard
}

func (p PaymentMethod) String() string {
	return string(p)
}
