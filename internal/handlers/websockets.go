package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"sigma/internal/cycle"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	minInterval      = 1 * time.Second
	maxInterval      = 5 * time.Minute
	maxIntervalMilli = 300_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsStats streams semester compliance for ?semester=&year= every interval.
func (h *Handler) wsStats(c *gin.Context) {
	semester, year, ok := h.semesterQuery(c)
	if !ok {
		return
	}
	if err := semester.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendStats(ctx, conn, semester, year); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendStats(ctx, conn, semester, year); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=10s or ?interval_ms=10000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= int(minInterval/time.Millisecond) && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return h.streamInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// sendStats computes the stats and writes them; a service failure is reported
// to the client as an error envelope and does not close the stream.
func (h *Handler) sendStats(ctx context.Context, conn *websocket.Conn, semester cycle.Semester, year int) error {
	env := wsEnvelope{Type: "stats"}
	stats, err := h.services.SemesterStats(ctx, semester, year)
	if err != nil {
		h.log.Errorw("ws_semester_stats_failed", "err", err, "semester", semester, "year", year)
		env = wsEnvelope{Type: "error", Error: "failed to compute stats"}
	} else {
		env.Data = stats
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
