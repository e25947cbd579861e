package model

// Theater rạp chiếu lấy từ backend, bất biến sau khi fetch
type Theater struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Facilities []string `json:"facilities"`
}
