package model

// Movie phim lấy từ backend, bất biến sau khi fetch
type Movie struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug,omitempty"`
	Status   string   `json:"status"` // now_showing | coming_soon | ended
	Duration int      `json:"duration"` // phút
	Genres   []string `json:"genres"`
	Poster   string   `json:"poster,omitempty"`
}

func (m Movie) IsNowShowing() bool {
	return m.Status == "now_showing"
}
