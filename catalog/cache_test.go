package catalog

import (
	"cinema_booking/model"
	"testing"
)

func sampleSnapshot() *Snapshot {
	movies := []model.Movie{
		{ID: 1, Title: "Mai", Status: "now_showing"},
		{ID: 2, Title: "Đào, Phở và Piano", Status: "now_showing"},
		{ID: 3, Title: "Mai", Status: "coming_soon"}, // trùng tên
	}
	theaters := []model.Theater{
		{ID: 10, Name: "CGV Vincom", City: "Hà Nội"},
		{ID: 11, Name: "BHD Star", City: "Hồ Chí Minh"},
		{ID: 12, Name: "CGV Landmark", City: "Hồ Chí Minh"},
	}
	showtimes := []model.Showtime{
		{ID: 100, MovieId: 1, TheaterId: 10, ShowDate: "2026-08-30", ShowTime: "20:00"},
		{ID: 101, MovieId: 1, TheaterId: 11, ShowDate: "2026-08-30", ShowTime: "14:00"},
		{ID: 102, MovieId: 2, TheaterId: 11, ShowDate: "2026-08-31", ShowTime: "18:00"},
	}
	return NewSnapshot(movies, theaters, showtimes)
}

func TestSnapshotIndexes(t *testing.T) {
	s := sampleSnapshot()

	if m := s.MovieById(1); m == nil || m.Title != "Mai" {
		t.Errorf("MovieById(1) = %+v", m)
	}
	if s.MovieById(99) != nil {
		t.Error("MovieById(99) phai tra nil")
	}
	if th := s.TheaterById(11); th == nil || th.Name != "BHD Star" {
		t.Errorf("TheaterById(11) = %+v", th)
	}
	if st := s.ShowtimeById(102); st == nil || st.MovieId != 2 {
		t.Errorf("ShowtimeById(102) = %+v", st)
	}
	if got := s.ShowtimesByMovie(1); len(got) != 2 {
		t.Errorf("ShowtimesByMovie(1) = %d suat, want 2", len(got))
	}
	if got := s.ShowtimesByMovie(3); len(got) != 0 {
		t.Errorf("phim chua co suat phai tra rong, got %d", len(got))
	}
}

func TestSnapshotSlugs(t *testing.T) {
	s := sampleSnapshot()

	if m := s.MovieBySlug("mai"); m == nil || m.ID != 1 {
		t.Fatalf("MovieBySlug(mai) = %+v", m)
	}
	if m := s.MovieBySlug("dao-pho-va-piano"); m == nil || m.ID != 2 {
		t.Errorf("slug co dau phai duoc bo dau: %+v", m)
	}
	// Phim trùng tên nhận slug có hậu tố, không đè phim cũ
	if m := s.MovieBySlug("mai-1"); m == nil || m.ID != 3 {
		t.Errorf("MovieBySlug(mai-1) = %+v", m)
	}
}

func TestSnapshotMoviesByStatus(t *testing.T) {
	s := sampleSnapshot()

	if got := s.NowShowing(); len(got) != 2 {
		t.Errorf("NowShowing = %d, want 2", len(got))
	}
	if got := s.ComingSoon(); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("ComingSoon = %+v", got)
	}
	if got := s.MoviesByStatus("khong-ton-tai"); len(got) != 0 {
		t.Errorf("status la phai tra rong, got %d", len(got))
	}
}

func TestSnapshotTheatersByCity(t *testing.T) {
	s := sampleSnapshot()

	if got := s.TheatersByCity(""); len(got) != 3 {
		t.Errorf("city rong phai tra tat ca, got %d", len(got))
	}
	got := s.TheatersByCity("Hồ Chí Minh")
	if len(got) != 2 {
		t.Fatalf("TheatersByCity(HCM) = %d, want 2", len(got))
	}
	if got[0].ID != 11 || got[1].ID != 12 {
		t.Errorf("thu tu rap phai giu nguyen: %+v", got)
	}
}

func TestCurrentNeverNil(t *testing.T) {
	if Current() == nil {
		t.Fatal("Current khong bao gio nil")
	}
}

func TestSwapReplacesSnapshot(t *testing.T) {
	old := Current()
	fresh := sampleSnapshot()
	swap(fresh)
	defer swap(old)

	if Current() != fresh {
		t.Error("Current phai tra snapshot moi sau swap")
	}
}

func TestOnRefreshNotifies(t *testing.T) {
	var got *Snapshot
	OnRefresh(func(s *Snapshot) { got = s })

	fresh := sampleSnapshot()
	notifyRefresh(fresh)

	if got != fresh {
		t.Error("subscriber phai nhan snapshot vua refresh")
	}
}
