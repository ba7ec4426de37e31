package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/om607397-wq/namaa/internal/models"
)

const scoreDate = "2025-03-10"

func TestDailyScoreEmptyDayIsZero(t *testing.T) {
	s := newTestService(t, scoreDate)

	assert.Equal(t, 0, s.DailyScore(scoreDate))
}

func TestDailyScoreFullDay(t *testing.T) {
	s := newTestService(t, scoreDate)

	prayers := models.NewPrayerLog(scoreDate)
	prayers.Fajr, prayers.Dhuhr, prayers.Asr = models.PrayerMosque, models.PrayerMosque, models.PrayerMosque
	prayers.Maghrib, prayers.Isha = models.PrayerOnTime, models.PrayerOnTime
	prayers.FajrSunnah, prayers.DhuhrSunnah, prayers.AsrSunnah = true, true, true
	prayers.MaghribSunnah, prayers.IshaSunnah = true, true
	s.SavePrayerLog(prayers)

	quran := models.NewQuranLog(scoreDate)
	quran.CompletedTaskIDs = []string{"1"}
	s.SaveQuranLog(quran)

	s.AddStudySession(models.StudySession{Date: scoreDate, DurationMinutes: 120})

	habits := models.NewDailyHabits(scoreDate)
	habits.WaterCups = 8
	habits.CompletedHabitIDs = []string{"1"}
	s.SaveDailyHabits(habits)

	adhkar := models.NewAdhkarProgress(scoreDate)
	adhkar.CompletedCategories = []string{"morning", "evening", "sleep"}
	s.SaveAdhkarProgress(adhkar)

	todo := models.NewDailyToDo(scoreDate)
	todo.Tasks = []models.ToDoTask{{ID: "a", Text: "x", Completed: true}}
	s.SaveDailyToDo(todo)

	// Prayers contribute 35 (5x6 on-time plus 5x1 sunnah); the remaining
	// domains contribute their full budgets.
	assert.Equal(t, 95, s.DailyScore(scoreDate))
}

func TestDailyScoreMixedDay(t *testing.T) {
	s := newTestService(t, scoreDate)

	prayers := models.NewPrayerLog(scoreDate)
	prayers.Fajr = models.PrayerMosque
	prayers.Dhuhr = models.PrayerMosque
	prayers.Asr = models.PrayerOnTime
	prayers.Maghrib = models.PrayerLate
	prayers.Isha = models.PrayerMissed
	prayers.FajrSunnah, prayers.DhuhrSunnah = true, true
	s.SavePrayerLog(prayers)

	quran := models.NewQuranLog(scoreDate)
	quran.CompletedTaskIDs = []string{"1"}
	s.SaveQuranLog(quran)

	s.AddStudySession(models.StudySession{Date: scoreDate, DurationMinutes: 60})

	habits := models.NewDailyHabits(scoreDate)
	habits.WaterCups = 8
	habits.CompletedHabitIDs = []string{"1"}
	s.SaveDailyHabits(habits)

	adhkar := models.NewAdhkarProgress(scoreDate)
	adhkar.CompletedCategories = []string{"morning", "evening"}
	s.SaveAdhkarProgress(adhkar)

	todo := models.NewDailyToDo(scoreDate)
	todo.Tasks = []models.ToDoTask{
		{ID: "a", Text: "x", Completed: true},
		{ID: "b", Text: "y"},
	}
	s.SaveDailyToDo(todo)

	// 23 prayers + 15 quran + 7.5 study + 10 habits + 6.67 adhkar + 5 todo,
	// rounded.
	assert.Equal(t, 67, s.DailyScore(scoreDate))
}

func TestDailyScoreLatePrayersHalfCredit(t *testing.T) {
	s := newTestService(t, scoreDate)

	prayers := models.NewPrayerLog(scoreDate)
	prayers.Fajr = models.PrayerLate
	prayers.Dhuhr = models.PrayerLate
	s.SavePrayerLog(prayers)

	assert.Equal(t, 6, s.DailyScore(scoreDate))
}

func TestDailyScoreEmptyConfigsContributeZero(t *testing.T) {
	s := newTestService(t, scoreDate)

	s.SaveQuranConfig([]models.QuranTaskConfig{})
	s.SaveHabitsConfig([]models.HabitConfig{})

	quran := models.NewQuranLog(scoreDate)
	quran.CompletedTaskIDs = []string{"ghost"}
	s.SaveQuranLog(quran)

	// No division by zero; an unconfigured domain simply scores nothing.
	assert.Equal(t, 0, s.DailyScore(scoreDate))
}

func TestDailyScoreStudyCapsAtTwoHours(t *testing.T) {
	s := newTestService(t, scoreDate)

	s.AddStudySession(models.StudySession{Date: scoreDate, DurationMinutes: 300})
	assert.Equal(t, 15, s.DailyScore(scoreDate))
}

func TestDailyScoreIsReadOnly(t *testing.T) {
	s, backend := newTestServiceWithBackend(t, scoreDate)

	s.AddStudySession(models.StudySession{Date: scoreDate, DurationMinutes: 30})
	before := backend.Len()

	first := s.DailyScore(scoreDate)
	second := s.DailyScore(scoreDate)

	assert.Equal(t, first, second)
	// Computing the score must not materialize any record.
	assert.Equal(t, before, backend.Len())
}
