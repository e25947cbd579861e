package booking

import (
	"cinema_booking/catalog"
	"cinema_booking/constants"
	"cinema_booking/model"
	"errors"
	"sort"
	"time"
)

var ictLocation = time.FixedZone("ICT", 7*3600)

var (
	ErrNotInOptions = errors.New("giá trị không nằm trong danh sách lựa chọn")
)

// Selection chuỗi lựa chọn phụ thuộc của đặt vé nhanh:
// phim → ngày → rạp → suất chiếu. Đổi một bước thì mọi bước sau bị xoá.
type Selection struct {
	MovieId    uint
	Date       string // YYYY-MM-DD
	TheaterId  uint
	ShowtimeId uint

	snap *catalog.Snapshot
	now  func() time.Time
}

func NewSelection(snap *catalog.Snapshot) *Selection {
	return &Selection{snap: snap, now: time.Now}
}

// SetMovie chọn phim, xoá ngày/rạp/suất chiếu đã chọn trước đó
func (s *Selection) SetMovie(movieId uint) error {
	if s.snap.MovieById(movieId) == nil {
		return ErrNotInOptions
	}
	s.MovieId = movieId
	s.Date = ""
	s.TheaterId = 0
	s.ShowtimeId = 0
	return nil
}

// SetDate chọn ngày trong cửa sổ 7 ngày, xoá rạp và suất chiếu
func (s *Selection) SetDate(date string) error {
	if !contains(s.AvailableDates(), date) {
		return ErrNotInOptions
	}
	s.Date = date
	s.TheaterId = 0
	s.ShowtimeId = 0
	return nil
}

// SetTheater chọn rạp, xoá suất chiếu
func (s *Selection) SetTheater(theaterId uint) error {
	found := false
	for _, t := range s.AvailableTheaters() {
		if t.ID == theaterId {
			found = true
			break
		}
	}
	if !found {
		return ErrNotInOptions
	}
	s.TheaterId = theaterId
	s.ShowtimeId = 0
	return nil
}

func (s *Selection) SetShowtime(showtimeId uint) error {
	found := false
	for _, st := range s.AvailableShowtimes() {
		if st.ID == showtimeId {
			found = true
			break
		}
	}
	if !found {
		return ErrNotInOptions
	}
	s.ShowtimeId = showtimeId
	return nil
}

// AvailableDates các ngày chiếu của phim đã chọn trong [hôm nay, hôm nay+6],
// sắp xếp tăng dần, không trùng. Chưa chọn phim thì trả về rỗng.
func (s *Selection) AvailableDates() []string {
	if s.MovieId == 0 {
		return []string{}
	}

	today := s.now().In(ictLocation)
	min := today.Format("2006-01-02")
	max := today.AddDate(0, 0, constants.QUICK_BOOKING_WINDOW_DAYS-1).Format("2006-01-02")

	seen := map[string]bool{}
	dates := []string{}
	for _, st := range s.snap.ShowtimesByMovie(s.MovieId) {
		d := st.ShowDate
		if d < min || d > max || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// AvailableTheaters các rạp có suất chiếu phim đã chọn vào ngày đã chọn,
// khử trùng theo id, giữ thứ tự gặp đầu tiên trong danh sách suất chiếu
func (s *Selection) AvailableTheaters() []model.Theater {
	if s.MovieId == 0 || s.Date == "" {
		return []model.Theater{}
	}

	seen := map[uint]bool{}
	theaters := []model.Theater{}
	for _, st := range s.snap.ShowtimesByMovie(s.MovieId) {
		if st.ShowDate != s.Date || seen[st.TheaterId] {
			continue
		}
		t := s.snap.TheaterById(st.TheaterId)
		if t == nil {
			continue
		}
		seen[st.TheaterId] = true
		theaters = append(theaters, *t)
	}
	return theaters
}

// AvailableShowtimes các suất khớp phim + ngày + rạp, theo giờ chiếu tăng dần
func (s *Selection) AvailableShowtimes() []model.Showtime {
	if s.MovieId == 0 || s.Date == "" || s.TheaterId == 0 {
		return []model.Showtime{}
	}

	showtimes := []model.Showtime{}
	for _, st := range s.snap.ShowtimesByMovie(s.MovieId) {
		if st.ShowDate == s.Date && st.TheaterId == s.TheaterId {
			showtimes = append(showtimes, st)
		}
	}
	sort.SliceStable(showtimes, func(i, j int) bool {
		return showtimes[i].ShowTime < showtimes[j].ShowTime
	})
	return showtimes
}

// Movie phim đã chọn, nil nếu chưa chọn
func (s *Selection) Movie() *model.Movie {
	if s.MovieId == 0 {
		return nil
	}
	return s.snap.MovieById(s.MovieId)
}

// Theater rạp đã chọn, nil nếu chưa chọn
func (s *Selection) Theater() *model.Theater {
	if s.TheaterId == 0 {
		return nil
	}
	return s.snap.TheaterById(s.TheaterId)
}

// Showtime suất chiếu đã chọn, nil nếu chưa chọn xong
func (s *Selection) Showtime() *model.Showtime {
	if s.ShowtimeId == 0 {
		return nil
	}
	return s.snap.ShowtimeById(s.ShowtimeId)
}

// Revalidate gắn snapshot mới và kiểm tra lại cả bốn bước: bước nào có giá trị
// rời khỏi danh sách lựa chọn thì bị xoá, các bước sau bị xoá theo đúng như
// người dùng tự đổi lựa chọn
func (s *Selection) Revalidate(snap *catalog.Snapshot) {
	s.snap = snap

	if s.MovieId != 0 && snap.MovieById(s.MovieId) == nil {
		s.MovieId = 0
		s.Date = ""
		s.TheaterId = 0
		s.ShowtimeId = 0
		return
	}
	if s.Date != "" && !contains(s.AvailableDates(), s.Date) {
		s.Date = ""
		s.TheaterId = 0
		s.ShowtimeId = 0
		return
	}
	if s.TheaterId != 0 {
		found := false
		for _, t := range s.AvailableTheaters() {
			if t.ID == s.TheaterId {
				found = true
				break
			}
		}
		if !found {
			s.TheaterId = 0
			s.ShowtimeId = 0
			return
		}
	}
	if s.ShowtimeId != 0 {
		found := false
		for _, st := range s.AvailableShowtimes() {
			if st.ID == s.ShowtimeId {
				found = true
				break
			}
		}
		if !found {
			s.ShowtimeId = 0
		}
	}
}

func contains(arr []string, val string) bool {
	for _, a := range arr {
		if a == val {
			return true
		}
	}
	return false
}
