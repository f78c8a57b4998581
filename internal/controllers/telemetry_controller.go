package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"truck_companion/internal/telemetry"
)

// TelemetryPoller is wired in by main at startup, alongside config.DB.
var TelemetryPoller *telemetry.Poller

// upgrader configures the WebSocket connection for the live dashboard.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the dashboard runs from file:// and localhost
	},
}

var (
	wsClients   = make(map[*websocket.Conn]bool)
	wsClientsMu sync.Mutex
)

// GetSnapshot returns the most recent telemetry snapshot — the same
// request/response the Electron renderer made over IPC. Always succeeds;
// when the game is not running the snapshot reads connected=false.
func GetSnapshot(c *gin.Context) {
	if TelemetryPoller == nil {
		c.JSON(http.StatusOK, telemetry.Disconnected())
		return
	}
	c.JSON(http.StatusOK, TelemetryPoller.Latest())
}

// BindTelemetryDriver points the poller's trip/fine records at the caller.
func BindTelemetryDriver(c *gin.Context) {
	if TelemetryPoller == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "telemetry is not running"})
		return
	}

	email := currentEmail(c)
	TelemetryPoller.BindDriver(email)
	logrus.WithField("driver", email).Info("telemetry bound to driver")

	c.JSON(http.StatusOK, gin.H{"message": "telemetry bound", "driver": email})
}

// StreamTelemetry upgrades to a websocket and pushes every polled snapshot
// until the peer goes away. This endpoint is deliberately unauthenticated:
// it is the live status board shown on the public company page.
func StreamTelemetry(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("telemetry websocket upgrade failed")
		return
	}

	wsClientsMu.Lock()
	wsClients[conn] = true
	wsClientsMu.Unlock()

	// Drain reads so pings and close frames are processed; drop the client
	// when the read loop ends.
	go func() {
		defer func() {
			wsClientsMu.Lock()
			delete(wsClients, conn)
			wsClientsMu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// BroadcastTelemetry pushes a snapshot to every connected websocket client.
// Registered as the poller's OnTick hook.
func BroadcastTelemetry(s telemetry.Snapshot) {
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()

	for conn := range wsClients {
		if err := conn.WriteJSON(s); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
