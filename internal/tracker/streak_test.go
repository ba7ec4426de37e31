package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/om607397-wq/namaa/internal/models"
)

func completeQuranDay(s *Service, date string) {
	log := models.NewQuranLog(date)
	for _, task := range s.QuranConfig() {
		log.CompletedTaskIDs = append(log.CompletedTaskIDs, task.ID)
	}
	s.SaveQuranLog(log)
}

func TestStreakStartsAtOne(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	completeQuranDay(s, "2025-03-10")

	p := s.Profile()
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, "2025-03-10", p.LastCompletedDate)
}

func TestStreakIncrementsOnConsecutiveDays(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	completeQuranDay(s, "2025-03-08")
	completeQuranDay(s, "2025-03-09")
	completeQuranDay(s, "2025-03-10")

	p := s.Profile()
	assert.Equal(t, 3, p.Streak)
	assert.Equal(t, "2025-03-10", p.LastCompletedDate)
}

func TestStreakResetsAfterGap(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	completeQuranDay(s, "2025-03-05")
	completeQuranDay(s, "2025-03-06")
	completeQuranDay(s, "2025-03-10")

	p := s.Profile()
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, "2025-03-10", p.LastCompletedDate)
}

func TestStreakSameDaySaveIsIdempotent(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	completeQuranDay(s, "2025-03-09")
	completeQuranDay(s, "2025-03-10")
	completeQuranDay(s, "2025-03-10")
	completeQuranDay(s, "2025-03-10")

	assert.Equal(t, 2, s.Profile().Streak)
}

func TestStreakIgnoresIncompleteDays(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	s.SaveQuranConfig([]models.QuranTaskConfig{
		{ID: "1", Label: "تلاوة"},
		{ID: "2", Label: "حفظ"},
	})

	log := models.NewQuranLog("2025-03-10")
	log.CompletedTaskIDs = []string{"1"}
	s.SaveQuranLog(log)

	p := s.Profile()
	assert.Equal(t, 0, p.Streak)
	assert.Empty(t, p.LastCompletedDate)
}

func TestStreakNoopWhenNothingConfigured(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	s.SaveQuranConfig([]models.QuranTaskConfig{})
	log := models.NewQuranLog("2025-03-10")
	s.SaveQuranLog(log)

	assert.Equal(t, 0, s.Profile().Streak)
}

func TestStreakSurvivesUnrelatedProfileEdits(t *testing.T) {
	s := newTestService(t, "2025-03-10")

	completeQuranDay(s, "2025-03-09")

	p := s.Profile()
	p.Name = "سارة"
	s.SaveProfile(p)

	completeQuranDay(s, "2025-03-10")

	got := s.Profile()
	assert.Equal(t, "سارة", got.Name)
	assert.Equal(t, 2, got.Streak)
}
