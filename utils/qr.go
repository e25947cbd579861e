package utils

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// BookingQR sinh QR code cho mã đặt vé, trả về data URI PNG base64
// nhúng thẳng vào trang xác nhận
func BookingQR(bookingCode string, size int) (string, error) {
	qr, err := qrcode.New(bookingCode, qrcode.Medium)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
