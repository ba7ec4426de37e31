package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/models"
	"github.com/om607397-wq/namaa/internal/observe"
	"github.com/om607397-wq/namaa/internal/store"
)

// fixedClock pins "today" for deterministic date keys.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(t *testing.T, today string) *Service {
	t.Helper()
	s, _ := newTestServiceWithBackend(t, today)
	return s
}

func newTestServiceWithBackend(t *testing.T, today string) (*Service, *store.MemoryBackend) {
	t.Helper()
	backend := store.NewMemoryBackend()
	ns := store.NewNamespace(backend, zap.NewNop(), observe.New())
	return NewService(ns, fixedClock{t: day(today)}), backend
}

func TestProfileDefaultsOnFirstRead(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	p := s.Profile()
	assert.Equal(t, "يا بطل", p.Name)
	assert.Equal(t, 0, p.Streak)
	assert.Empty(t, p.LastCompletedDate)
}

func TestSaveQuranBookmarkPreservesProfile(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	p := s.Profile()
	p.Name = "أحمد"
	p.Streak = 4
	s.SaveProfile(p)

	s.SaveQuranBookmark(302)

	got := s.Profile()
	assert.Equal(t, "أحمد", got.Name)
	assert.Equal(t, 4, got.Streak)
	assert.Equal(t, 302, got.QuranBookmark)
}

func TestDatedReadsDefaultWithoutWriting(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	log := s.PrayerLog("2025-03-09")
	assert.Equal(t, "2025-03-09", log.Date)
	for _, status := range log.Statuses() {
		assert.Equal(t, models.PrayerNone, status)
	}

	quran := s.QuranLog("2025-03-09")
	assert.Equal(t, "2025-03-09", quran.Date)
	assert.Empty(t, quran.CompletedTaskIDs)
	assert.NotNil(t, quran.CompletedTaskIDs)
}

func TestDatedSaveMergesIntoExistingMap(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	first := models.NewPrayerLog("2025-03-09")
	first.Fajr = models.PrayerMosque
	s.SavePrayerLog(first)

	second := models.NewPrayerLog("2025-03-10")
	second.Isha = models.PrayerLate
	s.SavePrayerLog(second)

	assert.Equal(t, models.PrayerMosque, s.PrayerLog("2025-03-09").Fajr)
	assert.Equal(t, models.PrayerLate, s.PrayerLog("2025-03-10").Isha)
}

func TestAddStudySessionAssignsIDAndDate(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	saved := s.AddStudySession(models.StudySession{Subject: "رياضيات", DurationMinutes: 45})
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "2025-03-10", saved.Date)

	sessions := s.StudySessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, saved, sessions[0])
}

func TestLastNDaysStudyAggregatesOldestFirst(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	s.AddStudySession(models.StudySession{Date: "2025-03-09", DurationMinutes: 30})
	s.AddStudySession(models.StudySession{Date: "2025-03-09", DurationMinutes: 60})
	s.AddStudySession(models.StudySession{Date: "2025-03-10", DurationMinutes: 15})

	days := s.LastNDaysStudy(3)
	require.Len(t, days, 3)
	assert.Equal(t, "2025-03-08", days[0].Date)
	assert.Equal(t, 0, days[0].TotalMinutes)
	assert.Equal(t, 90, days[1].TotalMinutes)
	assert.Equal(t, 1.5, days[1].Hours)
	assert.Equal(t, 15, days[2].TotalMinutes)
}

func TestTotalTasbeehSumsAcrossDays(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	one := models.NewTasbeehLog("2025-03-09")
	one.Count = 33
	s.SaveTasbeehLog(one)
	two := models.NewTasbeehLog("2025-03-10")
	two.Count = 100
	s.SaveTasbeehLog(two)

	assert.Equal(t, 133, s.TotalTasbeeh())
}

func TestBudgetReportsPresence(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	_, ok := s.Budget()
	assert.False(t, ok)

	s.SaveBudget(models.Budget{StartDate: "2025-03-08", Amount: 500})
	b, ok := s.Budget()
	assert.True(t, ok)
	assert.Equal(t, 500.0, b.Amount)
}

func TestFootballLevelTracksCompletedSessions(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	for i := 0; i < 9; i++ {
		log := models.NewFootballLog(day("2025-02-01").AddDate(0, 0, i).Format(DateLayout))
		log.Completed = true
		s.SaveFootballLog(log)
	}
	assert.Equal(t, 1, s.FootballProfile().Level)

	tenth := models.NewFootballLog("2025-02-10")
	tenth.Completed = true
	s.SaveFootballLog(tenth)
	assert.Equal(t, 2, s.FootballProfile().Level)
}

func TestEnabledFeaturesDefaultUntilConfigured(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	assert.False(t, s.HasConfiguredFeatures())
	assert.Equal(t, models.DefaultEnabledFeatures(), s.EnabledFeatures())

	s.SaveEnabledFeatures([]models.FeatureID{"prayers", "quran"})
	assert.True(t, s.HasConfiguredFeatures())
	assert.Equal(t, []models.FeatureID{"prayers", "quran"}, s.EnabledFeatures())
}

func TestClearChatHistory(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	s.SaveChatHistory([]models.ChatMessage{{ID: "1", Role: "user", Text: "سلام"}})
	require.Len(t, s.ChatHistory(), 1)

	s.ClearChatHistory()
	assert.Empty(t, s.ChatHistory())
}
