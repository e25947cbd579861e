package booking

import (
	"cinema_booking/catalog"
	"cinema_booking/model"
	"testing"
	"time"
)

func fixedNow() time.Time {
	// Thứ bảy 29/08/2026 10:00 ICT
	return time.Date(2026, 8, 29, 10, 0, 0, 0, ictLocation)
}

func testSnapshot() *catalog.Snapshot {
	movies := []model.Movie{
		{ID: 1, Title: "Mai", Status: "now_showing", Duration: 131},
		{ID: 2, Title: "Đào, Phở và Piano", Status: "now_showing", Duration: 100},
		{ID: 3, Title: "Phim Sắp Chiếu", Status: "coming_soon", Duration: 90},
	}
	theaters := []model.Theater{
		{ID: 10, Name: "CGV Vincom", City: "Hà Nội"},
		{ID: 11, Name: "BHD Star", City: "Hồ Chí Minh"},
		{ID: 12, Name: "Lotte Cinema", City: "Đà Nẵng"},
	}
	showtimes := []model.Showtime{
		// Phim 1: hai ngày trong cửa sổ, một ngày ngoài cửa sổ, một ngày quá khứ
		{ID: 100, MovieId: 1, TheaterId: 10, ShowDate: "2026-08-30", ShowTime: "20:00"},
		{ID: 101, MovieId: 1, TheaterId: 10, ShowDate: "2026-08-30", ShowTime: "14:00"},
		{ID: 102, MovieId: 1, TheaterId: 11, ShowDate: "2026-08-30", ShowTime: "17:30"},
		{ID: 103, MovieId: 1, TheaterId: 10, ShowDate: "2026-08-29", ShowTime: "21:00"},
		{ID: 104, MovieId: 1, TheaterId: 12, ShowDate: "2026-09-10", ShowTime: "19:00"}, // ngoài cửa sổ
		{ID: 105, MovieId: 1, TheaterId: 12, ShowDate: "2026-08-28", ShowTime: "19:00"}, // quá khứ
		// Phim 2: một suất ngày cuối cửa sổ
		{ID: 110, MovieId: 2, TheaterId: 11, ShowDate: "2026-09-04", ShowTime: "18:00"},
	}
	return catalog.NewSnapshot(movies, theaters, showtimes)
}

func newTestSelection(t *testing.T) *Selection {
	t.Helper()
	s := NewSelection(testSnapshot())
	s.now = fixedNow
	return s
}

func TestSelectionGettersBeforePrerequisite(t *testing.T) {
	s := newTestSelection(t)

	if got := s.AvailableDates(); len(got) != 0 {
		t.Errorf("AvailableDates truoc khi chon phim = %v, want rong", got)
	}
	if got := s.AvailableTheaters(); len(got) != 0 {
		t.Errorf("AvailableTheaters truoc khi chon ngay = %v, want rong", got)
	}
	if got := s.AvailableShowtimes(); len(got) != 0 {
		t.Errorf("AvailableShowtimes truoc khi chon rap = %v, want rong", got)
	}
}

func TestSelectionAvailableDates(t *testing.T) {
	s := newTestSelection(t)

	if err := s.SetMovie(1); err != nil {
		t.Fatalf("SetMovie: %v", err)
	}

	got := s.AvailableDates()
	want := []string{"2026-08-29", "2026-08-30"}
	if len(got) != len(want) {
		t.Fatalf("AvailableDates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AvailableDates[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectionDateWindowBounds(t *testing.T) {
	s := newTestSelection(t)
	if err := s.SetMovie(2); err != nil {
		t.Fatalf("SetMovie: %v", err)
	}

	// 2026-09-04 = hôm nay + 6, vẫn trong cửa sổ
	got := s.AvailableDates()
	if len(got) != 1 || got[0] != "2026-09-04" {
		t.Errorf("AvailableDates = %v, want [2026-09-04]", got)
	}
}

func TestSelectionCascadeOnMovieChange(t *testing.T) {
	s := newTestSelection(t)

	mustSet := func(name string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	mustSet("SetMovie", s.SetMovie(1))
	mustSet("SetDate", s.SetDate("2026-08-30"))
	mustSet("SetTheater", s.SetTheater(10))
	mustSet("SetShowtime", s.SetShowtime(100))

	// Đổi phim phải xoá sạch ngày, rạp, suất
	mustSet("SetMovie lan 2", s.SetMovie(2))
	if s.Date != "" || s.TheaterId != 0 || s.ShowtimeId != 0 {
		t.Errorf("sau khi doi phim: date=%q theater=%d showtime=%d, want rong",
			s.Date, s.TheaterId, s.ShowtimeId)
	}
}

func TestSelectionCascadePartial(t *testing.T) {
	s := newTestSelection(t)

	if err := s.SetMovie(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("2026-08-30"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTheater(10); err != nil {
		t.Fatal(err)
	}
	if err := s.SetShowtime(101); err != nil {
		t.Fatal(err)
	}

	// Đổi ngày xoá rạp và suất, giữ phim
	if err := s.SetDate("2026-08-29"); err != nil {
		t.Fatal(err)
	}
	if s.MovieId != 1 {
		t.Errorf("MovieId = %d, want 1", s.MovieId)
	}
	if s.TheaterId != 0 || s.ShowtimeId != 0 {
		t.Errorf("sau khi doi ngay: theater=%d showtime=%d, want 0", s.TheaterId, s.ShowtimeId)
	}
}

func TestSelectionAvailableTheatersFirstSeenOrder(t *testing.T) {
	s := newTestSelection(t)
	if err := s.SetMovie(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("2026-08-30"); err != nil {
		t.Fatal(err)
	}

	got := s.AvailableTheaters()
	if len(got) != 2 {
		t.Fatalf("AvailableTheaters = %d rap, want 2", len(got))
	}
	// Rạp 10 xuất hiện trước rạp 11 trong danh sách suất chiếu
	if got[0].ID != 10 || got[1].ID != 11 {
		t.Errorf("thu tu rap = [%d %d], want [10 11]", got[0].ID, got[1].ID)
	}
}

func TestSelectionShowtimesSortedByTime(t *testing.T) {
	s := newTestSelection(t)
	if err := s.SetMovie(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("2026-08-30"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTheater(10); err != nil {
		t.Fatal(err)
	}

	got := s.AvailableShowtimes()
	if len(got) != 2 {
		t.Fatalf("AvailableShowtimes = %d suat, want 2", len(got))
	}
	if got[0].ShowTime != "14:00" || got[1].ShowTime != "20:00" {
		t.Errorf("thu tu suat = [%s %s], want [14:00 20:00]", got[0].ShowTime, got[1].ShowTime)
	}
}

func TestSelectionRejectsOutOfOptions(t *testing.T) {
	s := newTestSelection(t)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"phim khong ton tai", func() error { return s.SetMovie(999) }},
		{"ngay khi chua chon phim", func() error { return s.SetDate("2026-08-30") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err == nil {
				t.Error("want error, got nil")
			}
		})
	}

	if err := s.SetMovie(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("2026-09-10"); err == nil {
		t.Error("SetDate ngoai cua so 7 ngay: want error, got nil")
	}
	if err := s.SetDate("2026-08-28"); err == nil {
		t.Error("SetDate qua khu: want error, got nil")
	}
}

func TestSelectionRevalidateAfterRefresh(t *testing.T) {
	s := newTestSelection(t)
	if err := s.SetMovie(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDate("2026-08-30"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTheater(10); err != nil {
		t.Fatal(err)
	}
	if err := s.SetShowtime(100); err != nil {
		t.Fatal(err)
	}

	t.Run("suat chieu bien mat", func(t *testing.T) {
		sel := *s
		fresh := catalog.NewSnapshot(
			testSnapshot().Movies,
			testSnapshot().Theaters,
			[]model.Showtime{
				{ID: 101, MovieId: 1, TheaterId: 10, ShowDate: "2026-08-30", ShowTime: "14:00"},
			},
		)
		sel.Revalidate(fresh)
		if sel.ShowtimeId != 0 {
			t.Errorf("ShowtimeId = %d, want 0", sel.ShowtimeId)
		}
		if sel.MovieId != 1 || sel.Date != "2026-08-30" || sel.TheaterId != 10 {
			t.Errorf("cac buoc truoc bi xoa oan: %+v", sel)
		}
	})

	t.Run("phim bien mat keo theo tat ca", func(t *testing.T) {
		sel := *s
		fresh := catalog.NewSnapshot(nil, nil, nil)
		sel.Revalidate(fresh)
		if sel.MovieId != 0 || sel.Date != "" || sel.TheaterId != 0 || sel.ShowtimeId != 0 {
			t.Errorf("selection chua bi xoa het: %+v", sel)
		}
	})
}
