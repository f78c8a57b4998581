package main

import (
	"log"
	"net/http"
	"os"

	"truck_companion/internal/config"
	"truck_companion/internal/controllers"
	"truck_companion/internal/logger"
	"truck_companion/internal/middleware"
	"truck_companion/internal/notify"
	"truck_companion/internal/routes"
	"truck_companion/internal/telemetry"

	"github.com/robfig/cron/v3"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Optional Telegram notifications for telemetry events
	notifier, err := notify.NewTelegramFromEnv()
	if err != nil {
		log.Fatalf("telegram notifier: %v", err)
	}
	if notifier == nil {
		log.Println("Telegram notifications disabled (BOT_TOKEN / NOTIFY_CHAT_ID not set)")
	}

	// Telemetry poller, fed by the game plugin's snapshot file
	reader := telemetry.NewSnapshotReader(os.Getenv("TELEMETRY_FILE"))
	poller := telemetry.NewPoller(config.DB, reader, notifier)
	poller.BindDriver(os.Getenv("TELEMETRY_DRIVER"))
	poller.OnTick = controllers.BroadcastTelemetry
	controllers.TelemetryPoller = poller

	// 1 Hz poll for the lifetime of the process
	c := cron.New()
	c.AddFunc("@every 1s", poller.Tick)
	c.Start()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + getEnv("PORT", "8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
