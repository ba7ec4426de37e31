package tracker

import "time"

// updateStreak runs after every Quran-log save. A day is complete when every
// configured task id appears in that day's completed list. On a newly
// complete day: consecutive with lastCompletedDate means streak+1, anything
// else resets to 1. Repeated saves for an already-recorded date are no-ops,
// so the streak can never double-increment.
func (s *Service) updateStreak(date string) {
	cfg := s.QuranConfig()
	if len(cfg) == 0 {
		return
	}

	log := s.QuranLog(date)
	completed := make(map[string]bool, len(log.CompletedTaskIDs))
	for _, id := range log.CompletedTaskIDs {
		completed[id] = true
	}
	for _, task := range cfg {
		if !completed[task.ID] {
			return
		}
	}

	profile := s.Profile()
	if profile.LastCompletedDate == date {
		return
	}

	if profile.LastCompletedDate == previousDay(date) {
		profile.Streak++
	} else {
		profile.Streak = 1
	}
	profile.LastCompletedDate = date
	s.SaveProfile(profile)
}

// previousDay returns the calendar day before date, or "" when date does not
// parse (which can never match a stored completion date, forcing a reset).
func previousDay(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return DateKey(t.AddDate(0, 0, -1))
}
