package catalog

import (
	"cinema_booking/client"
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var catalogScheduler gocron.Scheduler

var (
	subMu       sync.Mutex
	subscribers []func(*Snapshot)
)

// OnRefresh đăng ký callback chạy sau mỗi lần swap snapshot
// (revalidate phiên đặt vé, broadcast sơ đồ ghế)
func OnRefresh(fn func(*Snapshot)) {
	subMu.Lock()
	subscribers = append(subscribers, fn)
	subMu.Unlock()
}

func notifyRefresh(s *Snapshot) {
	subMu.Lock()
	subs := make([]func(*Snapshot), len(subscribers))
	copy(subs, subscribers)
	subMu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

func refreshCatalog() {
	log.Println("[CRON] refreshCatalog triggered")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := Load(ctx); err != nil {
		log.Printf("Lỗi refresh catalog: %v", err)
	}
}

func forceRefreshCatalog() {
	log.Println("[CRON] forceRefreshCatalog triggered")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client.InvalidateCatalogCache(ctx)
	if err := Load(ctx); err != nil {
		log.Printf("Lỗi force refresh catalog: %v", err)
	}
}

func StartCatalogScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	catalogScheduler = s

	// Refresh đều đặn mỗi 5 phút
	_, err = s.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(refreshCatalog),
	)
	if err != nil {
		log.Fatal(err)
	}

	// 00:05 mỗi ngày: xoá cache rồi nạp lại để lấy lịch chiếu ngày mới
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(forceRefreshCatalog),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Catalog scheduler started (5m interval, force 00:05 ICT)")
}

func StopCatalogScheduler() {
	if catalogScheduler != nil {
		_ = catalogScheduler.Shutdown()
		log.Println("Catalog scheduler đã dừng")
	}
}
