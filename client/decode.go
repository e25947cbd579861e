package client

import (
	"cinema_booking/model"
	"encoding/json"
	"fmt"
	"strings"
)

// Các hàm decode chấp nhận phần tử lệch kiểu: phần tử hỏng bị bỏ qua,
// danh sách còn lại vẫn dùng được

func decodeMovie(raw json.RawMessage) (model.Movie, bool) {
	var row struct {
		ID       uint            `json:"id"`
		Title    string          `json:"title"`
		Status   string          `json:"status"`
		Duration int             `json:"duration"`
		Genre    json.RawMessage `json:"genre"`
		Genres   json.RawMessage `json:"genres"`
		Poster   string          `json:"poster"`
	}
	if err := json.Unmarshal(raw, &row); err != nil || row.ID == 0 || row.Title == "" {
		return model.Movie{}, false
	}

	genres := NormalizeStringList(row.Genres)
	if len(genres) == 0 {
		genres = NormalizeStringList(row.Genre)
	}

	return model.Movie{
		ID:       row.ID,
		Title:    row.Title,
		Status:   strings.ToLower(row.Status),
		Duration: row.Duration,
		Genres:   genres,
		Poster:   row.Poster,
	}, true
}

func decodeTheater(raw json.RawMessage) (model.Theater, bool) {
	var row struct {
		ID         uint            `json:"id"`
		Name       string          `json:"name"`
		City       string          `json:"city"`
		Facilities json.RawMessage `json:"facilities"`
	}
	if err := json.Unmarshal(raw, &row); err != nil || row.ID == 0 || row.Name == "" {
		return model.Theater{}, false
	}

	return model.Theater{
		ID:         row.ID,
		Name:       row.Name,
		City:       row.City,
		Facilities: NormalizeStringList(row.Facilities),
	}, true
}

func decodeShowtime(raw json.RawMessage) (model.Showtime, bool) {
	var row struct {
		ID        uint               `json:"id"`
		MovieId   uint               `json:"movie_id"`
		TheaterId uint               `json:"theater_id"`
		ShowDate  string             `json:"show_date"`
		ShowTime  string             `json:"show_time"`
		Prices    map[string]float64 `json:"prices"`
		Status    string             `json:"status"`
		Seats     []json.RawMessage  `json:"seats"`
	}
	if err := json.Unmarshal(raw, &row); err != nil || row.ID == 0 {
		return model.Showtime{}, false
	}

	st := model.Showtime{
		ID:        row.ID,
		MovieId:   row.MovieId,
		TheaterId: row.TheaterId,
		ShowDate:  row.ShowDate,
		ShowTime:  row.ShowTime,
		Prices:    row.Prices,
		Status:    strings.ToLower(row.Status),
	}
	for _, item := range row.Seats {
		if seat, ok := decodeSeat(item, st); ok {
			st.Seats = append(st.Seats, seat)
		}
	}
	return st, true
}

func decodeSeat(raw json.RawMessage, st model.Showtime) (model.Seat, bool) {
	var row struct {
		ID     string  `json:"id"`
		Seat   string  `json:"seat"`
		Row    string  `json:"row"`
		Number int     `json:"number"`
		Type   string  `json:"type"`
		Price  float64 `json:"price"`
		Status string  `json:"status"`
	}
	if err := json.Unmarshal(raw, &row); err != nil {
		return model.Seat{}, false
	}

	id := row.ID
	if id == "" {
		id = row.Seat
	}
	if id == "" && row.Row != "" && row.Number > 0 {
		id = fmt.Sprintf("%s%d", row.Row, row.Number)
	}
	if id == "" {
		return model.Seat{}, false
	}

	seat := model.Seat{
		ID:     id,
		Row:    row.Row,
		Number: row.Number,
		Type:   strings.ToLower(row.Type),
		Price:  row.Price,
		Status: strings.ToLower(row.Status),
	}
	if seat.Row == "" || seat.Number == 0 {
		row, num := splitSeatId(id)
		if seat.Row == "" {
			seat.Row = row
		}
		if seat.Number == 0 {
			seat.Number = num
		}
	}
	if seat.Price == 0 {
		seat.Price = st.PriceFor(seat.Type)
	}
	if seat.Status == "" {
		seat.Status = "available"
	}
	return seat, true
}

// splitSeatId tách "A12" thành hàng "A" và số 12
func splitSeatId(id string) (string, int) {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	num := 0
	for j := i; j < len(id); j++ {
		if id[j] < '0' || id[j] > '9' {
			return id[:i], 0
		}
		num = num*10 + int(id[j]-'0')
	}
	return id[:i], num
}
