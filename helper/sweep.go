package helper

import (
	"cinema_booking/booking"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var sweeper *cron.Cron

// Draft bỏ dở quá 30 phút coi như người dùng đã rời đi
const draftTTL = 30 * time.Minute

// StartDraftSweeper quét định kỳ các phiên đặt vé bị bỏ dở
func StartDraftSweeper(store *booking.Store) {
	sweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := sweeper.AddFunc("*/5 * * * *", func() {
		if n := store.SweepExpired(draftTTL); n > 0 {
			log.Printf("Đã bỏ %d phiên đặt vé hết hạn", n)
		}
	})
	if err != nil {
		log.Printf("Lỗi khởi tạo sweeper: %v", err)
		return
	}

	sweeper.Start()
	log.Println("Sweeper phiên đặt vé đã khởi động (mỗi 5 phút)")
}

// Dừng sweeper khi tắt server
func StopDraftSweeper() {
	if sweeper != nil {
		sweeper.Stop()
		log.Println("Sweeper phiên đặt vé đã dừng")
	}
}
