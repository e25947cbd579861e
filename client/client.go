package client

import (
	"bytes"
	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// API client dùng chung tới backend rạp chiếu (khởi tạo trong main)
var API *Client

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func Connect() {
	API = New(config.ConfigOr("BACKEND_URL", "http://localhost:8002"))
	fmt.Println("Booking backend:", API.BaseURL)
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SubmissionError lỗi backend trả về khi đặt vé, giữ nguyên message cho UI
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// ExtractMessage lấy message người đọc được từ body lỗi của backend,
// không có thì dùng thông báo chung
func ExtractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Data.Message != "" {
			return payload.Data.Message
		}
	}
	return constants.BOOKING_GENERIC_ERROR
}

func (cl *Client) get(ctx context.Context, path string) ([]byte, error) {
	if cached, ok := cacheGet(ctx, path); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cl.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.New(constants.BACKEND_UNREACHABLE)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend %s: status %d", path, resp.StatusCode)
	}

	cacheSet(ctx, path, body)
	return body, nil
}

// FetchMovies GET /movies, dữ liệu hỏng trả về danh sách rỗng
func (cl *Client) FetchMovies(ctx context.Context) ([]model.Movie, error) {
	body, err := cl.get(ctx, "/movies")
	if err != nil {
		return nil, err
	}

	movies := []model.Movie{}
	for _, item := range NormalizeCollection(body) {
		if m, ok := decodeMovie(item); ok {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// FetchTheaters GET /theaters
func (cl *Client) FetchTheaters(ctx context.Context) ([]model.Theater, error) {
	body, err := cl.get(ctx, "/theaters")
	if err != nil {
		return nil, err
	}

	theaters := []model.Theater{}
	for _, item := range NormalizeCollection(body) {
		if t, ok := decodeTheater(item); ok {
			theaters = append(theaters, t)
		}
	}
	return theaters, nil
}

// FetchShowtimes GET /movies/{id}/showtimes
func (cl *Client) FetchShowtimes(ctx context.Context, movieId uint) ([]model.Showtime, error) {
	body, err := cl.get(ctx, fmt.Sprintf("/movies/%d/showtimes", movieId))
	if err != nil {
		return nil, err
	}

	showtimes := []model.Showtime{}
	for _, item := range NormalizeCollection(body) {
		if s, ok := decodeShowtime(item); ok {
			showtimes = append(showtimes, s)
		}
	}
	return showtimes, nil
}

// CreateBooking POST /bookings; lỗi trả về *SubmissionError với message của backend
func (cl *Client) CreateBooking(ctx context.Context, input model.BookingRequest, authToken string) (*model.Booking, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.BaseURL+"/bookings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return nil, &SubmissionError{StatusCode: 0, Message: constants.BOOKING_GENERIC_ERROR}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: constants.BOOKING_GENERIC_ERROR}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: ExtractMessage(body)}
	}

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			Booking model.Booking `json:"booking"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil || !result.Success {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: ExtractMessage(body)}
	}
	return &result.Data.Booking, nil
}

// CancelBooking POST /bookings/{id}/cancel, không body, idempotent
func (cl *Client) CancelBooking(ctx context.Context, bookingId uint) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/bookings/%d/cancel", cl.BaseURL, bookingId), nil)
	if err != nil {
		return err
	}

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return errors.New(constants.BACKEND_UNREACHABLE)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &SubmissionError{StatusCode: resp.StatusCode, Message: ExtractMessage(body)}
	}
	return nil
}
