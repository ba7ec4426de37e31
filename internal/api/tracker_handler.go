package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/om607397-wq/namaa/internal/models"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// TrackerHandler exposes the daily logs, configs and derived state.
type TrackerHandler struct {
	trk *tracker.Service
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(trk *tracker.Service) *TrackerHandler {
	return &TrackerHandler{trk: trk}
}

// dateParam validates the :date path segment, accepting "today" as an alias
// for the service's canonical current day.
func (h *TrackerHandler) dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if date == "today" {
		return h.trk.TodayKey(), true
	}
	if _, err := time.Parse(tracker.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date, want YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// bindDated binds a JSON body into v and rejects requests whose date field
// is missing or malformed. The date lives in the body, not the path, so a
// saved record can never disagree with its map key.
func bindDated[T interface{ DateKey() string }](c *gin.Context, v *T) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return false
	}
	if _, err := time.Parse(tracker.DateLayout, (*v).DateKey()); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid or missing date, want YYYY-MM-DD"})
		return false
	}
	return true
}

// --- Score ---

// Score handles GET /score/:date.
func (h *TrackerHandler) Score(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ScoreResponse{Date: date, Score: h.trk.DailyScore(date)})
}

// --- Profile & settings ---

func (h *TrackerHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.Profile())
}

func (h *TrackerHandler) PutProfile(c *gin.Context) {
	var p models.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	if p.Streak < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "streak cannot be negative"})
		return
	}
	h.trk.SaveProfile(p)
	c.JSON(http.StatusOK, p)
}

func (h *TrackerHandler) PutBookmark(c *gin.Context) {
	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveQuranBookmark(req.Page)
	c.JSON(http.StatusOK, h.trk.Profile())
}

func (h *TrackerHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.Settings())
}

func (h *TrackerHandler) PutSettings(c *gin.Context) {
	var s models.AppSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveSettings(s)
	c.JSON(http.StatusOK, s)
}

// --- Prayers ---

func (h *TrackerHandler) GetPrayerLog(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.PrayerLog(date))
}

func (h *TrackerHandler) PutPrayerLog(c *gin.Context) {
	var log models.PrayerLog
	if !bindDated(c, &log) {
		return
	}
	for _, status := range log.Statuses() {
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid prayer status"})
			return
		}
	}
	h.trk.SavePrayerLog(log)
	c.JSON(http.StatusOK, log)
}

// --- Quran ---

func (h *TrackerHandler) GetQuranLog(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.QuranLog(date))
}

// PutQuranLog saves the day's Quran log; completing every configured task
// moves the streak as a side effect.
func (h *TrackerHandler) PutQuranLog(c *gin.Context) {
	var log models.QuranLog
	if !bindDated(c, &log) {
		return
	}
	h.trk.SaveQuranLog(log)
	c.JSON(http.StatusOK, gin.H{"log": log, "profile": h.trk.Profile()})
}

func (h *TrackerHandler) GetQuranConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.QuranConfig())
}

func (h *TrackerHandler) PutQuranConfig(c *gin.Context) {
	var cfg []models.QuranTaskConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveQuranConfig(cfg)
	c.JSON(http.StatusOK, cfg)
}

// --- Habits ---

func (h *TrackerHandler) GetDailyHabits(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.DailyHabits(date))
}

func (h *TrackerHandler) PutDailyHabits(c *gin.Context) {
	var log models.DailyHabits
	if !bindDated(c, &log) {
		return
	}
	h.trk.SaveDailyHabits(log)
	c.JSON(http.StatusOK, log)
}

func (h *TrackerHandler) GetHabitsConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.HabitsConfig())
}

func (h *TrackerHandler) PutHabitsConfig(c *gin.Context) {
	var cfg []models.HabitConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveHabitsConfig(cfg)
	c.JSON(http.StatusOK, cfg)
}

// --- Focus / ToDo / Adhkar ---

func (h *TrackerHandler) GetFocusList(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.FocusList(date))
}

func (h *TrackerHandler) PutFocusList(c *gin.Context) {
	var list models.FocusList
	if !bindDated(c, &list) {
		return
	}
	h.trk.SaveFocusList(list)
	c.JSON(http.StatusOK, list)
}

func (h *TrackerHandler) GetDailyToDo(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.DailyToDo(date))
}

func (h *TrackerHandler) PutDailyToDo(c *gin.Context) {
	var todo models.DailyToDo
	if !bindDated(c, &todo) {
		return
	}
	h.trk.SaveDailyToDo(todo)
	c.JSON(http.StatusOK, todo)
}

func (h *TrackerHandler) GetAdhkarProgress(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.AdhkarProgress(date))
}

func (h *TrackerHandler) PutAdhkarProgress(c *gin.Context) {
	var p models.AdhkarProgress
	if !bindDated(c, &p) {
		return
	}
	h.trk.SaveAdhkarProgress(p)
	c.JSON(http.StatusOK, p)
}

// --- Screen time / Tasbeeh ---

func (h *TrackerHandler) GetScreenTime(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.ScreenTimeLog(date))
}

func (h *TrackerHandler) PutScreenTime(c *gin.Context) {
	var log models.ScreenTimeLog
	if !bindDated(c, &log) {
		return
	}
	h.trk.SaveScreenTimeLog(log)
	c.JSON(http.StatusOK, log)
}

func (h *TrackerHandler) GetTasbeeh(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.TasbeehLog(date))
}

func (h *TrackerHandler) PutTasbeeh(c *gin.Context) {
	var log models.TasbeehLog
	if !bindDated(c, &log) {
		return
	}
	h.trk.SaveTasbeehLog(log)
	c.JSON(http.StatusOK, log)
}

func (h *TrackerHandler) TasbeehTotal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"total": h.trk.TotalTasbeeh()})
}

// --- Study ---

func (h *TrackerHandler) GetStudySessions(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.StudySessions())
}

func (h *TrackerHandler) PostStudySession(c *gin.Context) {
	var session models.StudySession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	if session.DurationMinutes <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "durationMinutes must be positive"})
		return
	}
	c.JSON(http.StatusCreated, h.trk.AddStudySession(session))
}

func (h *TrackerHandler) StudySummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.LastNDaysStudy(7))
}

// --- Finance ---

func (h *TrackerHandler) GetExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.Expenses())
}

func (h *TrackerHandler) PostExpense(c *gin.Context) {
	var e models.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.trk.AddExpense(e))
}

func (h *TrackerHandler) GetBudget(c *gin.Context) {
	b, ok := h.trk.Budget()
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no budget set"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *TrackerHandler) PutBudget(c *gin.Context) {
	var b models.Budget
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveBudget(b)
	c.JSON(http.StatusOK, b)
}

// --- Reviews ---

func (h *TrackerHandler) GetDailyReview(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	r, found := h.trk.DailyReview(date)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no review for date"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *TrackerHandler) PutDailyReview(c *gin.Context) {
	var r models.DailyReview
	if !bindDated(c, &r) {
		return
	}
	h.trk.SaveDailyReview(r)
	c.JSON(http.StatusOK, r)
}

func (h *TrackerHandler) GetWeeklyReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.WeeklyReviews())
}

func (h *TrackerHandler) PostWeeklyReview(c *gin.Context) {
	var r models.WeeklyReview
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.AddWeeklyReview(r)
	c.JSON(http.StatusCreated, r)
}

// --- Ramadan ---

func (h *TrackerHandler) GetRamadanDay(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.RamadanDay(date))
}

func (h *TrackerHandler) PutRamadanDay(c *gin.Context) {
	var day models.RamadanDay
	if !bindDated(c, &day) {
		return
	}
	h.trk.SaveRamadanDay(day)
	c.JSON(http.StatusOK, day)
}

func (h *TrackerHandler) GetRamadanConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.RamadanConfig())
}

func (h *TrackerHandler) PutRamadanConfig(c *gin.Context) {
	var cfg models.RamadanConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveRamadanConfig(cfg)
	c.JSON(http.StatusOK, cfg)
}

// --- Football ---

func (h *TrackerHandler) GetFootballProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.FootballProfile())
}

func (h *TrackerHandler) PutFootballProfile(c *gin.Context) {
	var p models.FootballProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveFootballProfile(p)
	c.JSON(http.StatusOK, p)
}

func (h *TrackerHandler) GetFootballLog(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trk.FootballLog(date))
}

func (h *TrackerHandler) PutFootballLog(c *gin.Context) {
	var log models.FootballTrainingLog
	if !bindDated(c, &log) {
		return
	}
	h.trk.SaveFootballLog(log)
	c.JSON(http.StatusOK, gin.H{"log": log, "profile": h.trk.FootballProfile()})
}

// --- Features / chat history / location ---

func (h *TrackerHandler) GetFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.EnabledFeatures())
}

func (h *TrackerHandler) PutFeatures(c *gin.Context) {
	var features []models.FeatureID
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveEnabledFeatures(features)
	c.JSON(http.StatusOK, features)
}

func (h *TrackerHandler) GetChatHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.trk.ChatHistory())
}

func (h *TrackerHandler) DeleteChatHistory(c *gin.Context) {
	h.trk.ClearChatHistory()
	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) GetLocation(c *gin.Context) {
	cfg, ok := h.trk.LocationConfig()
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no location configured"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *TrackerHandler) PutLocation(c *gin.Context) {
	var cfg models.LocationConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	h.trk.SaveLocationConfig(cfg)
	c.JSON(http.StatusOK, cfg)
}
