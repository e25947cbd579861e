package helper

import (
	"fmt"
	"strings"
)

// FormatVND định dạng tiền Việt: 120000 → "120.000 ₫"
func FormatVND(amount float64) string {
	n := int64(amount)
	negative := n < 0
	if negative {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ".")
	if negative {
		out = "-" + out
	}
	return out + " ₫"
}

// FormatShowtime ghép ngày "2006-01-02" và giờ "15:04" thành "02/01/2006 15:04"
func FormatShowtime(showDate, showTime string) string {
	parts := strings.Split(showDate, "-")
	if len(parts) != 3 {
		return showDate + " " + showTime
	}
	return fmt.Sprintf("%s/%s/%s %s", parts[2], parts[1], parts[0], showTime)
}

// JoinSeats "A1, A2, B5"
func JoinSeats(seats []string) string {
	return strings.Join(seats, ", ")
}
