package booking

import (
	"cinema_booking/catalog"
	"cinema_booking/constants"
	"cinema_booking/model"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Draft phiên đặt vé đang dở: lựa chọn suất chiếu, sơ đồ ghế, form thanh toán.
// Thuộc về đúng một session; bỏ đi khi đặt thành công hoặc người dùng rời đi,
// không bao giờ lưu dở dang.
type Draft struct {
	ID        string
	SessionId string
	CreatedAt time.Time
	TouchedAt time.Time

	Selection *Selection
	SeatMap   *SeatMap
	Checkout  model.CheckoutInput

	guard *Guard
	mu    sync.Mutex
}

func newDraft(sessionId string, snap *catalog.Snapshot, submit SubmitFunc) *Draft {
	now := time.Now()
	return &Draft{
		ID:        uuid.NewString(),
		SessionId: sessionId,
		CreatedAt: now,
		TouchedAt: now,
		Selection: NewSelection(snap),
		guard:     NewGuard(submit),
	}
}

// Lock khoá draft trong một thao tác handler
func (d *Draft) Lock()   { d.mu.Lock() }
func (d *Draft) Unlock() { d.mu.Unlock() }

func (d *Draft) Touch() {
	d.TouchedAt = time.Now()
}

// ChooseShowtime chốt suất chiếu và dựng sơ đồ ghế từ danh sách ghế
// backend trả về cho suất đó
func (d *Draft) ChooseShowtime(showtimeId uint) error {
	if err := d.Selection.SetShowtime(showtimeId); err != nil {
		return err
	}
	st := d.Selection.Showtime()
	if st != nil {
		d.SeatMap = NewSeatMap(st.Seats)
	}
	return nil
}

// Revalidate sau khi catalog refresh: kiểm tra lại chuỗi lựa chọn, suất chiếu
// mất thì bỏ sơ đồ ghế, còn thì nạp lại trạng thái ghế từ snapshot mới.
// Trả về các ghế chọn bị mất chỗ.
func (d *Draft) Revalidate(snap *catalog.Snapshot) []string {
	d.Selection.Revalidate(snap)

	if d.Selection.ShowtimeId == 0 {
		d.SeatMap = nil
		return nil
	}
	if d.SeatMap == nil {
		return nil
	}
	st := d.Selection.Showtime()
	if st == nil {
		d.SeatMap = nil
		return nil
	}
	return d.SeatMap.Refresh(st.Seats)
}

// SubmitResult kết quả một lượt bấm đặt vé
type SubmitResult struct {
	Accepted bool             // false: đang có yêu cầu bay, lượt bấm bị nuốt
	Errors   ValidationErrors // lỗi form, chặn submit tại chỗ
	Booking  *model.Booking
	ErrorMsg string // lỗi backend, cho phép thử lại
}

// Submit validate form rồi gửi payload qua guard. Lỗi validation không bao giờ
// rời khỏi máy; draft giữ nguyên khi backend từ chối để người dùng thử lại.
// Không giữ khoá draft trong lúc request đang bay, guard mới là thứ chặn
// double-submit, bấm lại khi đang bay là no-op.
func (d *Draft) Submit(ctx context.Context, input model.CheckoutInput, authToken string) SubmitResult {
	// Tái hiện side effect định dạng của ô nhập trước khi validate
	input.Card.Number = FormatCardNumber(input.Card.Number)
	input.Card.Expiry = FormatExpiry(input.Card.Expiry)

	d.mu.Lock()
	// Request song song trên cùng draft có thể đổi bước chọn giữa lúc handler
	// kiểm tra và lúc vào đây, phải kiểm tra lại dưới khoá
	if d.Selection.ShowtimeId == 0 || d.SeatMap == nil {
		d.mu.Unlock()
		return SubmitResult{Accepted: true, ErrorMsg: constants.SHOWTIME_NOT_FOUND}
	}
	selected := d.SeatMap.SelectedSeats()
	if len(selected) == 0 {
		d.mu.Unlock()
		return SubmitResult{Accepted: true, ErrorMsg: constants.SEAT_NONE_SELECTED}
	}
	d.Checkout = input
	if errs := ValidateCheckout(input); !errs.Valid() {
		d.mu.Unlock()
		return SubmitResult{Accepted: true, Errors: errs}
	}
	method, _ := ParsePaymentMethod(input.PaymentMethod)
	payload := BuildPayload(d.Selection.ShowtimeId, selected, method)
	d.mu.Unlock()

	var result SubmitResult
	accepted := d.guard.Submit(ctx, payload, authToken,
		func(b *model.Booking) { result.Booking = b },
		func(msg string) { result.ErrorMsg = msg },
	)
	result.Accepted = accepted
	return result
}

// Store giữ các draft đang sống theo id
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
	submit SubmitFunc
}

func NewStore(submit SubmitFunc) *Store {
	return &Store{
		drafts: make(map[string]*Draft),
		submit: submit,
	}
}

func (s *Store) Create(sessionId string, snap *catalog.Snapshot) *Draft {
	d := newDraft(sessionId, snap, s.submit)
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d
}

// Get trả về draft thuộc đúng session, nil nếu không có hoặc khác session
func (s *Store) Get(id, sessionId string) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok || d.SessionId != sessionId {
		return nil
	}
	return d
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}

// SweepExpired bỏ các draft không đụng tới quá ttl, trả về số draft đã bỏ
func (s *Store) SweepExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, d := range s.drafts {
		if d.TouchedAt.Before(cutoff) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}

// RevalidateAll chạy Revalidate trên mọi draft sau một lần catalog refresh
func (s *Store) RevalidateAll(snap *catalog.Snapshot) {
	s.mu.Lock()
	drafts := make([]*Draft, 0, len(s.drafts))
	for _, d := range s.drafts {
		drafts = append(drafts, d)
	}
	s.mu.Unlock()

	for _, d := range drafts {
		d.Lock()
		d.Revalidate(snap)
		d.Unlock()
	}
}
