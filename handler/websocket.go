package handler

import (
	"cinema_booking/catalog"
	"cinema_booking/config"
	"cinema_booking/model"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	pubsubClient *redis.Client

	seatConnections = make(map[uint]map[*websocket.Conn]bool)
	seatMutex       sync.Mutex
)

// ConnectPubSub khởi tạo Redis pubsub cho kênh ghế realtime.
// Không có Redis thì websocket vẫn chạy, chỉ broadcast trực tiếp trong process.
func ConnectPubSub() {
	c := redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
	if err := c.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis pubsub disabled: %v", err)
		return
	}
	pubsubClient = c
}

func seatChannel(showtimeId uint) string {
	return fmt.Sprintf("showtime:%d", showtimeId)
}

// seatRows gom ghế của một suất theo hàng để client vẽ sơ đồ
func seatRows(st *model.Showtime) map[string][]model.Seat {
	rows := map[string][]model.Seat{}
	for _, seat := range st.Seats {
		rows[seat.Row] = append(rows[seat.Row], seat)
	}
	return rows
}

// SeatWebsocket đẩy trạng thái sơ đồ ghế của một suất chiếu cho client.
// Client mới connect nhận ngay trạng thái hiện tại, sau đó nhận update mỗi
// lần catalog refresh.
func SeatWebsocket(c *websocket.Conn) {
	showtimeIdStr := c.Params("showtimeId")
	id64, err := strconv.ParseUint(showtimeIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid showtimeId: %s", showtimeIdStr)
		c.Close()
		return
	}
	id := uint(id64)

	seatMutex.Lock()
	if seatConnections[id] == nil {
		seatConnections[id] = make(map[*websocket.Conn]bool)
	}
	seatConnections[id][c] = true
	seatMutex.Unlock()

	defer func() {
		seatMutex.Lock()
		delete(seatConnections[id], c)
		if len(seatConnections[id]) == 0 {
			delete(seatConnections, id)
		}
		seatMutex.Unlock()
		c.Close()
	}()

	// Gửi ngay trạng thái hiện tại cho client mới
	if st := catalog.Current().ShowtimeById(id); st != nil {
		c.WriteJSON(seatRows(st))
	}

	if pubsubClient == nil {
		// Không có Redis: giữ connection, update đến qua broadcast trực tiếp
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}

	pubsub := pubsubClient.Subscribe(context.Background(), seatChannel(id))
	defer pubsub.Close()

	// Mỗi connection tự sub và tự ghi cho chính nó
	channel := pubsub.Channel()
	for msg := range channel {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

// BroadcastSeatMaps đẩy sơ đồ ghế mới cho các suất đang có client theo dõi,
// gọi sau mỗi lần catalog refresh
func BroadcastSeatMaps(snap *catalog.Snapshot) {
	seatMutex.Lock()
	ids := make([]uint, 0, len(seatConnections))
	for id := range seatConnections {
		ids = append(ids, id)
	}
	seatMutex.Unlock()

	for _, id := range ids {
		st := snap.ShowtimeById(id)
		if st == nil {
			continue
		}
		payload, err := json.Marshal(seatRows(st))
		if err != nil {
			continue
		}

		if pubsubClient != nil {
			pubsubClient.Publish(context.Background(), seatChannel(id), payload)
			continue
		}

		// Fallback: ghi thẳng cho các connection trong process
		seatMutex.Lock()
		for conn := range seatConnections[id] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(seatConnections[id], conn)
			}
		}
		seatMutex.Unlock()
	}
}
