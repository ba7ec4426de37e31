package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/core"
	"github.com/om607397-wq/namaa/internal/models"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// ProvidersHandler fronts the external collaborators: prayer times and the
// chat companion. Either provider may be absent, in which case its endpoint
// reports 503.
type ProvidersHandler struct {
	trk         *tracker.Service
	prayerTimes core.PrayerTimesProvider
	chat        core.ChatProvider
	log         *zap.Logger
}

// NewProvidersHandler creates a ProvidersHandler; nil providers disable
// their endpoints.
func NewProvidersHandler(trk *tracker.Service, pt core.PrayerTimesProvider, chat core.ChatProvider, log *zap.Logger) *ProvidersHandler {
	return &ProvidersHandler{trk: trk, prayerTimes: pt, chat: chat, log: log}
}

// PrayerTimes handles GET /prayertimes. Coordinates default to the stored
// location config.
func (h *ProvidersHandler) PrayerTimes(c *gin.Context) {
	if h.prayerTimes == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "prayer times provider not configured"})
		return
	}
	var q PrayerTimesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query", Details: err.Error()})
		return
	}

	var lat, lng float64
	if q.Lat != nil && q.Lng != nil {
		lat, lng = *q.Lat, *q.Lng
	} else {
		cfg, ok := h.trk.LocationConfig()
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no coordinates given and no location configured"})
			return
		}
		lat, lng = cfg.Lat, cfg.Lng
	}
	date := q.Date
	if date == "" {
		date = h.trk.TodayKey()
	}

	times, err := h.prayerTimes.Times(c.Request.Context(), lat, lng, date)
	if err != nil {
		h.log.Warn("prayer times fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "prayer times fetch failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, times)
}

// Chat handles POST /chat: appends the user turn and the model reply to the
// stored transcript.
func (h *ProvidersHandler) Chat(c *gin.Context) {
	if h.chat == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "chat provider not configured"})
		return
	}
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}

	history := h.trk.ChatHistory()
	reply, err := h.chat.Complete(c.Request.Context(), history, req.Text)
	if err != nil {
		h.log.Warn("chat completion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "chat completion failed", Details: err.Error()})
		return
	}

	now := time.Now().UnixMilli()
	history = append(history,
		models.ChatMessage{ID: uuid.NewString(), Role: "user", Text: req.Text, Timestamp: now},
		models.ChatMessage{ID: uuid.NewString(), Role: "model", Text: reply, Timestamp: now},
	)
	h.trk.SaveChatHistory(history)
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
