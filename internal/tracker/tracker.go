// Package tracker exposes typed accessors over the record namespace: one
// getter/saver pair per entity, plus the derived daily score and the Quran
// streak engine. All reads are defaulted (a missing day is a zero-value
// record, never nil) and all dated saves are whole-map read-merge-write.
package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/om607397-wq/namaa/internal/models"
	"github.com/om607397-wq/namaa/internal/store"
)

// DateLayout is the canonical calendar-day key format.
const DateLayout = "2006-01-02"

// Clock supplies "now" so tests can pin the calendar day.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DateKey truncates t to its local calendar day.
func DateKey(t time.Time) string { return t.Format(DateLayout) }

// Service is the log accessor over one record namespace.
type Service struct {
	ns    *store.Namespace
	clock Clock
}

// NewService creates a tracker Service. A nil clock means the system clock.
func NewService(ns *store.Namespace, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{ns: ns, clock: clock}
}

// TodayKey returns the current local calendar day. Every component asking
// "what is today" must go through this one function so nothing skews around
// midnight.
func (s *Service) TodayKey() string { return DateKey(s.clock.Now()) }

// dated is any per-day record keyed by its own date string.
type dated interface {
	DateKey() string
}

// getDated returns the record for date from the map at key, or zero(date)
// when absent. Reading never writes the map back.
func getDated[T any](s *Service, key, date string, zero func(string) T) T {
	logs := store.Get(s.ns, key, map[string]T{})
	if rec, ok := logs[date]; ok {
		return rec
	}
	return zero(date)
}

// putDated upserts rec into the map at key and persists the whole map.
func putDated[T dated](s *Service, key string, rec T) {
	logs := store.Get(s.ns, key, map[string]T{})
	logs[rec.DateKey()] = rec
	store.Put(s.ns, key, logs)
}

// --- Profile ---

// Profile returns the user profile, defaulted on first read.
func (s *Service) Profile() models.UserProfile {
	return store.Get(s.ns, store.KeyProfile, models.DefaultProfile())
}

// SaveProfile overwrites the user profile.
func (s *Service) SaveProfile(p models.UserProfile) {
	store.Put(s.ns, store.KeyProfile, p)
}

// SaveQuranBookmark records the last read Quran page on the profile.
func (s *Service) SaveQuranBookmark(page int) {
	p := s.Profile()
	p.QuranBookmark = page
	s.SaveProfile(p)
}

// --- Settings ---

// Settings returns the device-local settings singleton.
func (s *Service) Settings() models.AppSettings {
	return store.Get(s.ns, store.KeySettings, models.DefaultSettings())
}

// SaveSettings overwrites the settings singleton.
func (s *Service) SaveSettings(v models.AppSettings) {
	store.Put(s.ns, store.KeySettings, v)
}

// --- Study ---

// StudySessions returns every recorded study session.
func (s *Service) StudySessions() []models.StudySession {
	return store.Get(s.ns, store.KeyStudy, []models.StudySession{})
}

// AddStudySession appends a session, assigning an id when absent.
func (s *Service) AddStudySession(session models.StudySession) models.StudySession {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Date == "" {
		session.Date = s.TodayKey()
	}
	sessions := append(s.StudySessions(), session)
	store.Put(s.ns, store.KeyStudy, sessions)
	return session
}

// StudyDay summarizes one day of the study history.
type StudyDay struct {
	Date         string  `json:"date"`
	TotalMinutes int     `json:"totalMinutes"`
	Hours        float64 `json:"hours"`
}

// LastNDaysStudy returns per-day study totals for the n days ending today,
// oldest first.
func (s *Service) LastNDaysStudy(n int) []StudyDay {
	sessions := s.StudySessions()
	byDate := make(map[string]int)
	for _, sess := range sessions {
		byDate[sess.Date] += sess.DurationMinutes
	}
	now := s.clock.Now()
	days := make([]StudyDay, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := DateKey(now.AddDate(0, 0, -i))
		minutes := byDate[date]
		days = append(days, StudyDay{
			Date:         date,
			TotalMinutes: minutes,
			Hours:        float64(minutes) / 60,
		})
	}
	return days
}

// --- Quran ---

// QuranConfig returns the configured Quran tasks; a never-configured store
// yields the default single task.
func (s *Service) QuranConfig() []models.QuranTaskConfig {
	return store.Get(s.ns, store.KeyQuranConfig, models.DefaultQuranConfig())
}

// SaveQuranConfig overwrites the Quran task configuration.
func (s *Service) SaveQuranConfig(cfg []models.QuranTaskConfig) {
	store.Put(s.ns, store.KeyQuranConfig, cfg)
}

// QuranLog returns the Quran log for date, defaulted when absent.
func (s *Service) QuranLog(date string) models.QuranLog {
	return getDated(s, store.KeyQuran, date, models.NewQuranLog)
}

// SaveQuranLog upserts the day's Quran log and runs the streak engine for
// that date. This is the only write path that can move the streak.
func (s *Service) SaveQuranLog(log models.QuranLog) {
	putDated(s, store.KeyQuran, log)
	s.updateStreak(log.Date)
}

// --- Prayers ---

// PrayerLog returns the prayer log for date, defaulted when absent.
func (s *Service) PrayerLog(date string) models.PrayerLog {
	return getDated(s, store.KeyPrayers, date, models.NewPrayerLog)
}

// SavePrayerLog upserts the day's prayer log.
func (s *Service) SavePrayerLog(log models.PrayerLog) {
	putDated(s, store.KeyPrayers, log)
}

// --- Habits ---

// HabitsConfig returns the configured habits, seeded on first read.
func (s *Service) HabitsConfig() []models.HabitConfig {
	return store.Get(s.ns, store.KeyHabitsConfig, models.DefaultHabitsConfig())
}

// SaveHabitsConfig overwrites the habit configuration.
func (s *Service) SaveHabitsConfig(cfg []models.HabitConfig) {
	store.Put(s.ns, store.KeyHabitsConfig, cfg)
}

// DailyHabits returns the habit record for date, defaulted when absent.
func (s *Service) DailyHabits(date string) models.DailyHabits {
	return getDated(s, store.KeyHabits, date, models.NewDailyHabits)
}

// SaveDailyHabits upserts the day's habit record.
func (s *Service) SaveDailyHabits(log models.DailyHabits) {
	putDated(s, store.KeyHabits, log)
}

// --- Focus / ToDo / Adhkar ---

// FocusList returns the focus list for date, defaulted when absent.
func (s *Service) FocusList(date string) models.FocusList {
	return getDated(s, store.KeyFocus, date, models.NewFocusList)
}

// SaveFocusList upserts the day's focus list.
func (s *Service) SaveFocusList(list models.FocusList) {
	putDated(s, store.KeyFocus, list)
}

// DailyToDo returns the to-do list for date, defaulted when absent.
func (s *Service) DailyToDo(date string) models.DailyToDo {
	return getDated(s, store.KeyDailyToDo, date, models.NewDailyToDo)
}

// SaveDailyToDo upserts the day's to-do list.
func (s *Service) SaveDailyToDo(todo models.DailyToDo) {
	putDated(s, store.KeyDailyToDo, todo)
}

// AdhkarProgress returns the adhkar record for date, defaulted when absent.
func (s *Service) AdhkarProgress(date string) models.AdhkarProgress {
	return getDated(s, store.KeyAdhkarProgress, date, models.NewAdhkarProgress)
}

// SaveAdhkarProgress upserts the day's adhkar record.
func (s *Service) SaveAdhkarProgress(p models.AdhkarProgress) {
	putDated(s, store.KeyAdhkarProgress, p)
}

// --- Screen time / Tasbeeh ---

// ScreenTimeLog returns the screen-time record for date, defaulted when absent.
func (s *Service) ScreenTimeLog(date string) models.ScreenTimeLog {
	return getDated(s, store.KeyScreenTime, date, models.NewScreenTimeLog)
}

// SaveScreenTimeLog upserts the day's screen-time record.
func (s *Service) SaveScreenTimeLog(log models.ScreenTimeLog) {
	putDated(s, store.KeyScreenTime, log)
}

// TasbeehLog returns the tasbeeh counter for date, defaulted when absent.
func (s *Service) TasbeehLog(date string) models.TasbeehLog {
	return getDated(s, store.KeyTasbeeh, date, models.NewTasbeehLog)
}

// SaveTasbeehLog upserts the day's tasbeeh counter.
func (s *Service) SaveTasbeehLog(log models.TasbeehLog) {
	putDated(s, store.KeyTasbeeh, log)
}

// TotalTasbeeh sums the tasbeeh count across all days.
func (s *Service) TotalTasbeeh() int {
	logs := store.Get(s.ns, store.KeyTasbeeh, map[string]models.TasbeehLog{})
	total := 0
	for _, log := range logs {
		total += log.Count
	}
	return total
}

// --- Finance ---

// Expenses returns every recorded expense.
func (s *Service) Expenses() []models.Expense {
	return store.Get(s.ns, store.KeyExpenses, []models.Expense{})
}

// AddExpense appends an expense, assigning an id when absent.
func (s *Service) AddExpense(e models.Expense) models.Expense {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date == "" {
		e.Date = s.TodayKey()
	}
	store.Put(s.ns, store.KeyExpenses, append(s.Expenses(), e))
	return e
}

// Budget returns the weekly budget and whether one is set.
func (s *Service) Budget() (models.Budget, bool) {
	var none models.Budget
	b := store.Get(s.ns, store.KeyBudget, none)
	return b, b != none
}

// SaveBudget overwrites the weekly budget.
func (s *Service) SaveBudget(b models.Budget) {
	store.Put(s.ns, store.KeyBudget, b)
}

// --- Reviews ---

// DailyReview returns the review for date and whether one exists.
func (s *Service) DailyReview(date string) (models.DailyReview, bool) {
	reviews := store.Get(s.ns, store.KeyDailyReview, map[string]models.DailyReview{})
	r, ok := reviews[date]
	return r, ok
}

// SaveDailyReview upserts the day's review.
func (s *Service) SaveDailyReview(r models.DailyReview) {
	putDated(s, store.KeyDailyReview, r)
}

// WeeklyReviews returns every recorded weekly review.
func (s *Service) WeeklyReviews() []models.WeeklyReview {
	return store.Get(s.ns, store.KeyWeeklyReview, []models.WeeklyReview{})
}

// AddWeeklyReview appends a weekly review.
func (s *Service) AddWeeklyReview(r models.WeeklyReview) {
	store.Put(s.ns, store.KeyWeeklyReview, append(s.WeeklyReviews(), r))
}

// --- Ramadan ---

// RamadanDay returns the Ramadan record for date, defaulted when absent.
func (s *Service) RamadanDay(date string) models.RamadanDay {
	return getDated(s, store.KeyRamadanLogs, date, models.NewRamadanDay)
}

// SaveRamadanDay upserts the day's Ramadan record.
func (s *Service) SaveRamadanDay(day models.RamadanDay) {
	putDated(s, store.KeyRamadanLogs, day)
}

// RamadanConfig returns the khatma grid and dua list, defaulted when absent.
func (s *Service) RamadanConfig() models.RamadanConfig {
	return store.Get(s.ns, store.KeyRamadanConfig, models.DefaultRamadanConfig())
}

// SaveRamadanConfig overwrites the Ramadan configuration.
func (s *Service) SaveRamadanConfig(cfg models.RamadanConfig) {
	store.Put(s.ns, store.KeyRamadanConfig, cfg)
}

// --- Football ---

// FootballProfile returns the training-journal profile.
func (s *Service) FootballProfile() models.FootballProfile {
	return store.Get(s.ns, store.KeyFootballProfile, models.DefaultFootballProfile())
}

// SaveFootballProfile overwrites the training-journal profile.
func (s *Service) SaveFootballProfile(p models.FootballProfile) {
	store.Put(s.ns, store.KeyFootballProfile, p)
}

// FootballLogs returns the full date-indexed training log map.
func (s *Service) FootballLogs() map[string]models.FootballTrainingLog {
	return store.Get(s.ns, store.KeyFootballLogs, map[string]models.FootballTrainingLog{})
}

// FootballLog returns the training log for date, defaulted when absent.
func (s *Service) FootballLog(date string) models.FootballTrainingLog {
	return getDated(s, store.KeyFootballLogs, date, models.NewFootballLog)
}

// SaveFootballLog upserts the day's training log and rederives the player
// level from completed-session count (one level per 10 completed sessions).
func (s *Service) SaveFootballLog(log models.FootballTrainingLog) {
	putDated(s, store.KeyFootballLogs, log)

	completed := 0
	for _, l := range s.FootballLogs() {
		if l.Completed {
			completed++
		}
	}
	profile := s.FootballProfile()
	if level := 1 + completed/10; level != profile.Level {
		profile.Level = level
		s.SaveFootballProfile(profile)
	}
}

// --- Features / chat / location ---

// EnabledFeatures returns the enabled feature set, defaulted when the user
// has never customized it.
func (s *Service) EnabledFeatures() []models.FeatureID {
	features := store.Get[[]models.FeatureID](s.ns, store.KeyEnabledFeatures, nil)
	if features == nil {
		return models.DefaultEnabledFeatures()
	}
	return features
}

// SaveEnabledFeatures overwrites the enabled feature set.
func (s *Service) SaveEnabledFeatures(features []models.FeatureID) {
	store.Put(s.ns, store.KeyEnabledFeatures, features)
}

// HasConfiguredFeatures reports whether the user has been through feature
// selection at least once.
func (s *Service) HasConfiguredFeatures() bool {
	return store.Get[[]models.FeatureID](s.ns, store.KeyEnabledFeatures, nil) != nil
}

// ChatHistory returns the stored companion-chat transcript.
func (s *Service) ChatHistory() []models.ChatMessage {
	return store.Get(s.ns, store.KeyChatHistory, []models.ChatMessage{})
}

// SaveChatHistory overwrites the companion-chat transcript.
func (s *Service) SaveChatHistory(history []models.ChatMessage) {
	store.Put(s.ns, store.KeyChatHistory, history)
}

// ClearChatHistory removes the transcript entirely.
func (s *Service) ClearChatHistory() {
	s.ns.Delete(store.KeyChatHistory)
}

// LocationConfig returns the stored prayer-times location and whether one is set.
func (s *Service) LocationConfig() (models.LocationConfig, bool) {
	var none models.LocationConfig
	cfg := store.Get(s.ns, store.KeyLocationConfig, none)
	return cfg, cfg != none
}

// SaveLocationConfig overwrites the prayer-times location.
func (s *Service) SaveLocationConfig(cfg models.LocationConfig) {
	store.Put(s.ns, store.KeyLocationConfig, cfg)
}
