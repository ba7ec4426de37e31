package tracker

import "math"

// MaxDailyScore is the score ceiling; the six domain budgets sum to it.
const MaxDailyScore = 100

// Domain point budgets: prayers 40, quran 15, study 15, habits 10,
// adhkar 10, to-do 10.
const (
	prayerPoints     = 6
	latePrayerPoints = 3
	sunnahPoints     = 1
	quranBudget      = 15
	studyBudget      = 15
	studyCapMinutes  = 120
	waterPoints      = 5
	habitsBudget     = 5
	waterCupsTarget  = 8
	adhkarBudget     = 10
	todoBudget       = 10
)

// scoredAdhkarCategories are the adhkar categories counted by the score.
var scoredAdhkarCategories = []string{"morning", "evening", "sleep"}

// DailyScore computes the 0-100 composite for date, fresh from the current
// logs and configs. It is deterministic over store contents and performs no
// writes; an unconfigured domain contributes zero rather than dividing by
// zero.
func (s *Service) DailyScore(date string) int {
	score := 0.0

	// Prayers (max 40): 6 points per prayer at the mosque or on time,
	// 3 when late, plus 1 per sunnah flag.
	prayers := s.PrayerLog(date)
	for _, status := range prayers.Statuses() {
		switch status {
		case "mosque", "ontime":
			score += prayerPoints
		case "late":
			score += latePrayerPoints
		}
	}
	for _, done := range prayers.SunnahFlags() {
		if done {
			score += sunnahPoints
		}
	}

	// Quran (max 15): completed share of configured tasks.
	quran := s.QuranLog(date)
	if cfg := s.QuranConfig(); len(cfg) > 0 {
		score += float64(len(quran.CompletedTaskIDs)) / float64(len(cfg)) * quranBudget
	}

	// Study (max 15): linear ramp to the 120-minute cap.
	minutes := 0
	for _, sess := range s.StudySessions() {
		if sess.Date == date {
			minutes += sess.DurationMinutes
		}
	}
	if minutes >= studyCapMinutes {
		score += studyBudget
	} else if minutes > 0 {
		score += float64(minutes) / studyCapMinutes * studyBudget
	}

	// Habits (max 10): 5 for hitting the water target plus the completed
	// share of configured habits.
	habits := s.DailyHabits(date)
	if habits.WaterCups >= waterCupsTarget {
		score += waterPoints
	}
	if cfg := s.HabitsConfig(); len(cfg) > 0 {
		score += float64(len(habits.CompletedHabitIDs)) / float64(len(cfg)) * habitsBudget
	}

	// Adhkar (max 10): completed share of morning/evening/sleep.
	adhkar := s.AdhkarProgress(date)
	completed := 0
	for _, cat := range scoredAdhkarCategories {
		for _, done := range adhkar.CompletedCategories {
			if done == cat {
				completed++
				break
			}
		}
	}
	score += float64(completed) / float64(len(scoredAdhkarCategories)) * adhkarBudget

	// To-do (max 10): completed share of the day's list.
	todo := s.DailyToDo(date)
	if len(todo.Tasks) > 0 {
		done := 0
		for _, task := range todo.Tasks {
			if task.Completed {
				done++
			}
		}
		score += float64(done) / float64(len(todo.Tasks)) * todoBudget
	}

	rounded := int(math.Round(score))
	if rounded > MaxDailyScore {
		return MaxDailyScore
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}
