package model

// Showtime suất chiếu: thuộc đúng một phim và một rạp
type Showtime struct {
	ID        uint               `json:"id"`
	MovieId   uint               `json:"movie_id"`
	TheaterId uint               `json:"theater_id"`
	ShowDate  string             `json:"show_date"` // YYYY-MM-DD
	ShowTime  string             `json:"show_time"` // HH:MM
	Prices    map[string]float64 `json:"prices"`    // theo hạng ghế
	Status    string             `json:"status"`
	Seats     []Seat             `json:"seats,omitempty"`
}

// PriceFor giá vé theo hạng ghế, 0 nếu hạng không có trong bảng giá
func (s Showtime) PriceFor(seatType string) float64 {
	if s.Prices == nil {
		return 0
	}
	return s.Prices[seatType]
}
