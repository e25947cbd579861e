package utils

import (
	"bytes"
	"cinema_booking/config"
	"html/template"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho email xác nhận đặt vé
type BookingConfirmationData struct {
	BookingCode   string
	MovieTitle    string
	TheaterName   string
	Showtime      string
	Seats         string
	TotalAmount   string
	PaymentMethod string
}

var confirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<h2>Đặt vé thành công!</h2>
<p>Mã đặt vé: <b>{{.BookingCode}}</b></p>
<p>Phim: {{.MovieTitle}}</p>
<p>Rạp: {{.TheaterName}}</p>
<p>Suất chiếu: {{.Showtime}}</p>
<p>Ghế: {{.Seats}}</p>
<p>Tổng tiền: {{.TotalAmount}}</p>
<p>Thanh toán: {{.PaymentMethod}}</p>
<p>Vui lòng đưa mã đặt vé tại quầy để nhận vé.</p>
`))

// SendBookingConfirmationEmail gửi email xác nhận đặt vé (async, best effort)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		host := config.Config("SMTP_HOST")
		if host == "" || to == "" {
			return
		}

		var body bytes.Buffer
		if err := confirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigOr("SMTP_FROM", username)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt vé "+data.BookingCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email xác nhận %s: %v", data.BookingCode, err)
		}
	}()
}
