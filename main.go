package main

import (
	"cinema_booking/catalog"
	"cinema_booking/client"
	"cinema_booking/config"
	"cinema_booking/handler"
	"cinema_booking/helper"
	"cinema_booking/router"
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "cinema_booking",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	client.Connect()
	client.ConnectCache()
	handler.ConnectPubSub()
	handler.Init()

	// Nạp catalog lần đầu; backend chết thì vẫn lên server, catalog rỗng
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := catalog.Load(ctx); err != nil {
		log.Printf("Lỗi nạp catalog lần đầu: %v", err)
	}
	cancel()

	catalog.StartCatalogScheduler()
	defer catalog.StopCatalogScheduler()
	helper.StartDraftSweeper(handler.Drafts)
	defer helper.StopDraftSweeper()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8003")))
}
