package handler

import (
	"cinema_booking/booking"
	"cinema_booking/catalog"
	"cinema_booking/client"
)

// Drafts store phiên đặt vé dùng chung cho mọi handler
var Drafts *booking.Store

// Init nối store với client backend và đăng ký revalidate sau mỗi lần
// catalog refresh
func Init() {
	Drafts = booking.NewStore(client.API.CreateBooking)

	catalog.OnRefresh(func(snap *catalog.Snapshot) {
		Drafts.RevalidateAll(snap)
		BroadcastSeatMaps(snap)
	})
}
