package booking

import (
	"cinema_booking/constants"
	"cinema_booking/model"
	"sort"
)

// SeatMap trạng thái sơ đồ ghế của một suất chiếu. Mỗi ghế luôn ở đúng
// một trong ba trạng thái: available, occupied, selected.
type SeatMap struct {
	seats []model.Seat // thứ tự row-major cố định
	index map[string]int
}

// NewSeatMap khởi tạo từ danh sách ghế của backend: ghế occupied giữ nguyên,
// mọi ghế khác bắt đầu available
func NewSeatMap(seats []model.Seat) *SeatMap {
	m := &SeatMap{
		seats: make([]model.Seat, len(seats)),
		index: make(map[string]int, len(seats)),
	}
	copy(m.seats, seats)

	for i := range m.seats {
		if m.seats[i].Status != constants.SEAT_OCCUPIED {
			m.seats[i].Status = constants.SEAT_AVAILABLE
		}
	}

	// Row-major: hàng chữ cái trước, số ghế sau
	sort.SliceStable(m.seats, func(i, j int) bool {
		if m.seats[i].Row != m.seats[j].Row {
			return m.seats[i].Row < m.seats[j].Row
		}
		return m.seats[i].Number < m.seats[j].Number
	})
	for i, seat := range m.seats {
		m.index[seat.ID] = i
	}
	return m
}

// Status trạng thái hiện tại của ghế, false nếu ghế không tồn tại
func (m *SeatMap) Status(seatId string) (string, bool) {
	i, ok := m.index[seatId]
	if !ok {
		return "", false
	}
	return m.seats[i].Status, true
}

// Toggle đảo trạng thái chọn của ghế. Ghế occupied hoặc không tồn tại bị từ
// chối (changed=false), không phải lỗi. available ↔ selected.
func (m *SeatMap) Toggle(seatId string) (model.Seat, bool) {
	i, ok := m.index[seatId]
	if !ok {
		return model.Seat{}, false
	}

	switch m.seats[i].Status {
	case constants.SEAT_AVAILABLE:
		m.seats[i].Status = constants.SEAT_SELECTED
		return m.seats[i], true
	case constants.SEAT_SELECTED:
		m.seats[i].Status = constants.SEAT_AVAILABLE
		return m.seats[i], true
	default: // occupied
		return m.seats[i], false
	}
}

// SelectedSeats ghế đang chọn theo thứ tự row-major (không phải thứ tự click)
func (m *SeatMap) SelectedSeats() []model.SelectedSeat {
	out := []model.SelectedSeat{}
	for _, seat := range m.seats {
		if seat.Status == constants.SEAT_SELECTED {
			out = append(out, model.SelectedSeat{
				Seat:  seat.ID,
				Type:  seat.Type,
				Price: seat.Price,
			})
		}
	}
	return out
}

// Subtotal tổng giá ghế đang chọn, tính lại mỗi lần gọi
func (m *SeatMap) Subtotal() float64 {
	total := 0.0
	for _, seat := range m.seats {
		if seat.Status == constants.SEAT_SELECTED {
			total += seat.Price
		}
	}
	return total
}

// Seats bản sao danh sách ghế để render
func (m *SeatMap) Seats() []model.Seat {
	out := make([]model.Seat, len(m.seats))
	copy(out, m.seats)
	return out
}

// Rows gom ghế theo hàng để render sơ đồ
func (m *SeatMap) Rows() map[string][]model.Seat {
	rows := map[string][]model.Seat{}
	for _, seat := range m.seats {
		rows[seat.Row] = append(rows[seat.Row], seat)
	}
	return rows
}

// Refresh nạp lại sơ đồ từ danh sách ghế mới của backend. Ghế đang chọn được
// giữ nếu backend vẫn báo trống; ghế vừa bị người khác đặt rơi về occupied.
// Trả về các ghế chọn bị mất.
func (m *SeatMap) Refresh(seats []model.Seat) []string {
	selected := map[string]bool{}
	for _, seat := range m.seats {
		if seat.Status == constants.SEAT_SELECTED {
			selected[seat.ID] = true
		}
	}

	fresh := NewSeatMap(seats)
	lost := []string{}
	for id := range selected {
		i, ok := fresh.index[id]
		if ok && fresh.seats[i].Status == constants.SEAT_AVAILABLE {
			fresh.seats[i].Status = constants.SEAT_SELECTED
		} else {
			lost = append(lost, id)
		}
	}
	sort.Strings(lost)

	m.seats = fresh.seats
	m.index = fresh.index
	return lost
}
