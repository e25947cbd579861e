package catalog

import (
	"cinema_booking/client"
	"cinema_booking/constants"
	"cinema_booking/model"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gosimple/slug"
)

// Snapshot dữ liệu catalog đã chuẩn hoá của một lần fetch. Bất biến sau khi
// build: refresh tạo snapshot mới rồi swap, không sửa tại chỗ.
type Snapshot struct {
	Movies    []model.Movie
	Theaters  []model.Theater
	Showtimes []model.Showtime
	FetchedAt time.Time

	movieById    map[uint]*model.Movie
	movieBySlug  map[string]*model.Movie
	theaterById  map[uint]*model.Theater
	showtimeById map[uint]*model.Showtime
	byMovie      map[uint][]model.Showtime
}

var (
	mu      sync.RWMutex
	current = NewSnapshot(nil, nil, nil)
)

// NewSnapshot build snapshot kèm index tra cứu; slug phim được sinh và
// chống trùng ngay tại đây
func NewSnapshot(movies []model.Movie, theaters []model.Theater, showtimes []model.Showtime) *Snapshot {
	s := &Snapshot{
		Movies:       movies,
		Theaters:     theaters,
		Showtimes:    showtimes,
		FetchedAt:    time.Now(),
		movieById:    make(map[uint]*model.Movie),
		movieBySlug:  make(map[string]*model.Movie),
		theaterById:  make(map[uint]*model.Theater),
		showtimeById: make(map[uint]*model.Showtime),
		byMovie:      make(map[uint][]model.Showtime),
	}

	for i := range s.Movies {
		m := &s.Movies[i]
		m.Slug = s.uniqueSlug(m.Title)
		s.movieById[m.ID] = m
		s.movieBySlug[m.Slug] = m
	}
	for i := range s.Theaters {
		t := &s.Theaters[i]
		s.theaterById[t.ID] = t
	}
	for i := range s.Showtimes {
		st := &s.Showtimes[i]
		s.showtimeById[st.ID] = st
		s.byMovie[st.MovieId] = append(s.byMovie[st.MovieId], *st)
	}
	return s
}

func (s *Snapshot) uniqueSlug(title string) string {
	base := slug.Make(title)
	result := base
	i := 1
	for {
		if _, exists := s.movieBySlug[result]; !exists {
			return result
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}
}

func (s *Snapshot) MovieById(id uint) *model.Movie {
	return s.movieById[id]
}

func (s *Snapshot) MovieBySlug(sl string) *model.Movie {
	return s.movieBySlug[sl]
}

func (s *Snapshot) TheaterById(id uint) *model.Theater {
	return s.theaterById[id]
}

func (s *Snapshot) ShowtimeById(id uint) *model.Showtime {
	return s.showtimeById[id]
}

// ShowtimesByMovie giữ nguyên thứ tự trong danh sách fetch
func (s *Snapshot) ShowtimesByMovie(movieId uint) []model.Showtime {
	return s.byMovie[movieId]
}

func (s *Snapshot) MoviesByStatus(status string) []model.Movie {
	out := []model.Movie{}
	for _, m := range s.Movies {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

func (s *Snapshot) NowShowing() []model.Movie {
	return s.MoviesByStatus(constants.MOVIE_NOW_SHOWING)
}

func (s *Snapshot) ComingSoon() []model.Movie {
	return s.MoviesByStatus(constants.MOVIE_COMING_SOON)
}

// TheatersByCity lọc theo thành phố, chuỗi rỗng trả về tất cả
func (s *Snapshot) TheatersByCity(city string) []model.Theater {
	if city == "" {
		return s.Theaters
	}
	out := []model.Theater{}
	for _, t := range s.Theaters {
		if t.City == city {
			out = append(out, t)
		}
	}
	return out
}

// Current trả về snapshot hiện tại, không bao giờ nil
func Current() *Snapshot {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func swap(s *Snapshot) {
	mu.Lock()
	current = s
	mu.Unlock()
}

// Load fetch toàn bộ catalog từ backend và swap snapshot.
// Showtime chỉ fetch cho phim đang chiếu, phim sắp chiếu chưa có suất.
func Load(ctx context.Context) error {
	movies, err := client.API.FetchMovies(ctx)
	if err != nil {
		return fmt.Errorf("fetch movies: %w", err)
	}
	theaters, err := client.API.FetchTheaters(ctx)
	if err != nil {
		return fmt.Errorf("fetch theaters: %w", err)
	}

	showtimes := []model.Showtime{}
	for _, m := range movies {
		if !m.IsNowShowing() {
			continue
		}
		list, err := client.API.FetchShowtimes(ctx, m.ID)
		if err != nil {
			log.Printf("Lỗi fetch suất chiếu phim %d: %v", m.ID, err)
			continue
		}
		showtimes = append(showtimes, list...)
	}

	snap := NewSnapshot(movies, theaters, showtimes)
	swap(snap)
	notifyRefresh(snap)
	log.Printf("Catalog loaded: %d phim, %d rạp, %d suất chiếu",
		len(movies), len(theaters), len(showtimes))
	return nil
}
