package client

import (
	"cinema_booking/constants"
	"cinema_booking/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message goc", `{"message":"Ghế A1 đã được đặt"}`, "Ghế A1 đã được đặt"},
		{"message trong data", `{"data":{"message":"Suất chiếu đã đóng"}}`, "Suất chiếu đã đóng"},
		{"uu tien message goc", `{"message":"A","data":{"message":"B"}}`, "A"},
		{"khong co message", `{"success":false}`, constants.BOOKING_GENERIC_ERROR},
		{"json hong", `<html>502</html>`, constants.BOOKING_GENERIC_ERROR},
		{"body rong", ``, constants.BOOKING_GENERIC_ERROR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("ExtractMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchMoviesNormalizesWrapper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies" {
			t.Errorf("path = %s, want /movies", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"data":[
			{"id":1,"title":"Mai","status":"now_showing","duration":131},
			{"title":"thieu id"},
			{"id":2,"title":"Đào, Phở và Piano","status":"coming_soon","genres":"Lịch sử, Tâm lý"}
		],"total":3}}`))
	}))
	defer srv.Close()

	movies, err := New(srv.URL).FetchMovies(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// Phan tu thieu id bi bo qua, khong lam hong ca danh sach
	if len(movies) != 2 {
		t.Fatalf("len = %d, want 2", len(movies))
	}
	if movies[0].ID != 1 || movies[0].Title != "Mai" {
		t.Errorf("movies[0] = %+v", movies[0])
	}
	if len(movies[1].Genres) != 2 {
		t.Errorf("genres chuoi phay phai tach ra: %v", movies[1].Genres)
	}
}

func TestFetchMoviesBackendDown(t *testing.T) {
	cl := New("http://127.0.0.1:1")
	_, err := cl.FetchMovies(context.Background())
	if err == nil {
		t.Fatal("backend chet phai tra loi")
	}
	if err.Error() != constants.BACKEND_UNREACHABLE {
		t.Errorf("err = %q, want %q", err.Error(), constants.BACKEND_UNREACHABLE)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Errorf("%s %s, want POST /bookings", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}
		var req model.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.ShowtimeId != 100 || len(req.Seats) != 2 {
			t.Errorf("request = %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"booking":{
			"id":42,"booking_code":"CB123456","seats":["A1","A2"],
			"total_amount":240000,"payment_status":"pending"}}}`))
	}))
	defer srv.Close()

	booking, err := New(srv.URL).CreateBooking(context.Background(), model.BookingRequest{
		ShowtimeId: 100,
		Seats: []model.BookingSeat{
			{Seat: "A1", Type: "gold"},
			{Seat: "A2", Type: "gold"},
		},
		PaymentMethod: "bank_transfer",
	}, "tok123")
	if err != nil {
		t.Fatal(err)
	}
	if booking.BookingCode != "CB123456" {
		t.Errorf("booking_code = %q, want CB123456", booking.BookingCode)
	}
	if booking.TotalAmount != 240000 {
		t.Errorf("total_amount = %v, want 240000", booking.TotalAmount)
	}
}

func TestCreateBookingBackendRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Ghế A1 đã được đặt"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateBooking(context.Background(), model.BookingRequest{}, "")
	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("err = %T, want *SubmissionError", err)
	}
	if subErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", subErr.StatusCode)
	}
	if subErr.Message != "Ghế A1 đã được đặt" {
		t.Errorf("message = %q", subErr.Message)
	}
}

func TestCreateBookingSuccessFalse(t *testing.T) {
	// 200 nhung success:false van la tu choi
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"data":{"message":"Hết ghế"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateBooking(context.Background(), model.BookingRequest{}, "")
	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("err = %T, want *SubmissionError", err)
	}
	if subErr.Message != "Hết ghế" {
		t.Errorf("message = %q, want Hết ghế", subErr.Message)
	}
}

func TestCreateBookingBackendDown(t *testing.T) {
	_, err := New("http://127.0.0.1:1").CreateBooking(context.Background(), model.BookingRequest{}, "")
	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("err = %T, want *SubmissionError", err)
	}
	if subErr.Message != constants.BOOKING_GENERIC_ERROR {
		t.Errorf("message = %q, want generic", subErr.Message)
	}
}

func TestCancelBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/42/cancel" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	if err := New(srv.URL).CancelBooking(context.Background(), 42); err != nil {
		t.Fatal(err)
	}
}
