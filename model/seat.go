package model

// Seat ghế trong sơ đồ ghế của một suất chiếu, vd "A1"
type Seat struct {
	ID     string  `json:"id"` // row + number
	Row    string  `json:"row"`
	Number int     `json:"number"`
	Type   string  `json:"type"` // gold | platinum | box
	Price  float64 `json:"price"`
	Status string  `json:"status"` // available | occupied | selected
}

// SelectedSeat ghế đã chọn kèm giá, dùng cho tính tạm tính và hiển thị
type SelectedSeat struct {
	Seat  string  `json:"seat"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}
