package v1

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"go-interview-backend/internal/realtime"
	"go-interview-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const echoPrefix = "Echo: "

// InterviewStreamHandler upgrades /ws/interviews/:interviewId, subscribes
// the socket to the interview and echoes client text frames.
type InterviewStreamHandler struct {
	hub            *realtime.Hub
	simulator      *realtime.Simulator
	originPatterns []string
	log            *slog.Logger
}

func NewInterviewStreamHandler(r gin.IRoutes, hub *realtime.Hub, simulator *realtime.Simulator, allowedOrigins []string) {
	handler := &InterviewStreamHandler{
		hub:            hub,
		simulator:      simulator,
		originPatterns: originPatterns(allowedOrigins),
		log:            logger.With("ws"),
	}
	r.GET("/ws/interviews/:interviewId", handler.Stream)
}

// originPatterns turns origins such as http://localhost:5173 into the
// host patterns websocket.Accept matches against.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		u, err := url.Parse(strings.TrimSpace(o))
		if err != nil || u.Host == "" {
			continue
		}
		patterns = append(patterns, u.Host)
	}
	return patterns
}

func (h *InterviewStreamHandler) Stream(c *gin.Context) {
	interviewID := c.Param("interviewId")

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		// Accept has already written the HTTP error response
		h.log.Warn("WebSocket upgrade rejected", slog.String("interview_id", interviewID), slog.Any("error", err))
		return
	}
	defer conn.CloseNow()

	client := realtime.NewClient(uuid.NewString(), interviewID, realtime.NewWebSocketConn(conn))
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if h.simulator.EnsureRunning(interviewID) {
		h.log.Info("Simulation started", slog.String("interview_id", interviewID))
	}

	ctx := c.Request.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			h.logDisconnect(interviewID, client.ID, err)
			return
		}
		if typ != websocket.MessageText {
			continue
		}
		if err := h.hub.Send(ctx, client, []byte(echoPrefix+string(data))); err != nil {
			h.log.Debug("Echo failed", slog.String("client_id", client.ID), slog.Any("error", err))
			return
		}
	}
}

func (h *InterviewStreamHandler) logDisconnect(interviewID, clientID string, err error) {
	status := websocket.CloseStatus(err)
	if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
		h.log.Debug("Client disconnected", slog.String("interview_id", interviewID), slog.String("client_id", clientID))
		return
	}
	h.log.Info("Connection closed", slog.String("interview_id", interviewID), slog.String("client_id", clientID), slog.Any("error", err))
}
