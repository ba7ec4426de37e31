package models

// PrayerStatus describes how one of the five daily prayers was performed.
type PrayerStatus string

const (
	PrayerMosque PrayerStatus = "mosque"
	PrayerOnTime PrayerStatus = "ontime"
	PrayerLate   PrayerStatus = "late"
	PrayerMissed PrayerStatus = "missed"
	PrayerNone   PrayerStatus = "none"
)

// IsValid reports whether s is one of the five known prayer statuses.
func (s PrayerStatus) IsValid() bool {
	switch s {
	case PrayerMosque, PrayerOnTime, PrayerLate, PrayerMissed, PrayerNone:
		return true
	default:
		return false
	}
}

// UserProfile is the singleton profile record. The streak fields are owned by
// the streak engine; everything else is user-edited.
type UserProfile struct {
	Name              string `json:"name"`
	Avatar            string `json:"avatar,omitempty"`
	Streak            int    `json:"streak"`
	LastCompletedDate string `json:"lastCompletedDate,omitempty"`
	QuranBookmark     int    `json:"quranBookmark,omitempty"` // page 1-604
}

// DefaultProfile returns the profile used before the user has edited anything.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:   "يا بطل",
		Avatar: "https://api.dicebear.com/7.x/notionists/svg?seed=Felix",
	}
}

// StudySession is one timed study block. Sessions accumulate in a list;
// per-day totals are derived by filtering on Date.
type StudySession struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Subject         string `json:"subject"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Type            string `json:"type"`
}

// QuranTaskConfig defines one configurable daily Quran task.
type QuranTaskConfig struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultQuranConfig seeds a single daily recitation task.
func DefaultQuranConfig() []QuranTaskConfig {
	return []QuranTaskConfig{{ID: "1", Label: "ورد التلاوة اليومي"}}
}

// QuranLog records which configured Quran tasks were completed on a day.
type QuranLog struct {
	Date             string   `json:"date"`
	CompletedTaskIDs []string `json:"completedTaskIds"`
}

func (l QuranLog) DateKey() string { return l.Date }

// NewQuranLog returns the zero-value log for date.
func NewQuranLog(date string) QuranLog {
	return QuranLog{Date: date, CompletedTaskIDs: []string{}}
}

// Expense is one recorded spend.
type Expense struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note,omitempty"`
}

// Budget is the singleton weekly budget.
type Budget struct {
	StartDate string  `json:"startDate"`
	Amount    float64 `json:"amount"`
}

// DailyReview is the end-of-day journaling entry.
type DailyReview struct {
	Date    string `json:"date"`
	Best    string `json:"best"`
	Worst   string `json:"worst"`
	Improve string `json:"improve"`
}

func (r DailyReview) DateKey() string { return r.Date }

// WeeklyReview is the end-of-week journaling entry.
type WeeklyReview struct {
	WeekStartDate string `json:"weekStartDate"`
	Achievement   string `json:"achievement"`
	Shortcoming   string `json:"shortcoming"`
	NextGoal      string `json:"nextGoal"`
}

// ScreenTimeLog tracks phone usage against a daily limit.
type ScreenTimeLog struct {
	Date         string `json:"date"`
	LimitMinutes int    `json:"limitMinutes"`
	UsageMinutes int    `json:"usageMinutes"`
}

func (l ScreenTimeLog) DateKey() string { return l.Date }

// NewScreenTimeLog returns the zero-value log for date (default 60 minute limit).
func NewScreenTimeLog(date string) ScreenTimeLog {
	return ScreenTimeLog{Date: date, LimitMinutes: 60}
}

// TasbeehLog counts dhikr repetitions for a day.
type TasbeehLog struct {
	Date          string `json:"date"`
	Count         int    `json:"count"`
	FavoriteDhikr string `json:"favoriteDhikr,omitempty"`
}

func (l TasbeehLog) DateKey() string { return l.Date }

// NewTasbeehLog returns the zero-value log for date.
func NewTasbeehLog(date string) TasbeehLog {
	return TasbeehLog{Date: date}
}

// AppSettings is the device-local settings singleton. It survives account
// switches, unlike every other record.
type AppSettings struct {
	DhikrEnabled bool `json:"dhikrEnabled"`
	DarkMode     bool `json:"darkMode"`
}

// DefaultSettings returns the settings used on a fresh install.
func DefaultSettings() AppSettings {
	return AppSettings{DhikrEnabled: true}
}

// PrayerLog records the five daily prayers plus their sunnah and adhkar flags.
type PrayerLog struct {
	Date    string       `json:"date"`
	Fajr    PrayerStatus `json:"fajr"`
	Dhuhr   PrayerStatus `json:"dhuhr"`
	Asr     PrayerStatus `json:"asr"`
	Maghrib PrayerStatus `json:"maghrib"`
	Isha    PrayerStatus `json:"isha"`

	FajrSunnah    bool `json:"fajrSunnah"`
	DhuhrSunnah   bool `json:"dhuhrSunnah"`
	AsrSunnah     bool `json:"asrSunnah"`
	MaghribSunnah bool `json:"maghribSunnah"`
	IshaSunnah    bool `json:"ishaSunnah"`

	FajrAdhkar    bool `json:"fajrAdhkar"`
	DhuhrAdhkar   bool `json:"dhuhrAdhkar"`
	AsrAdhkar     bool `json:"asrAdhkar"`
	MaghribAdhkar bool `json:"maghribAdhkar"`
	IshaAdhkar    bool `json:"ishaAdhkar"`
}

func (l PrayerLog) DateKey() string { return l.Date }

// Statuses returns the five prayer statuses in canonical order.
func (l PrayerLog) Statuses() [5]PrayerStatus {
	return [5]PrayerStatus{l.Fajr, l.Dhuhr, l.Asr, l.Maghrib, l.Isha}
}

// SunnahFlags returns the five sunnah flags in canonical order.
func (l PrayerLog) SunnahFlags() [5]bool {
	return [5]bool{l.FajrSunnah, l.DhuhrSunnah, l.AsrSunnah, l.MaghribSunnah, l.IshaSunnah}
}

// NewPrayerLog returns the zero-value log for date: every prayer "none",
// every flag false.
func NewPrayerLog(date string) PrayerLog {
	return PrayerLog{
		Date: date,
		Fajr: PrayerNone, Dhuhr: PrayerNone, Asr: PrayerNone,
		Maghrib: PrayerNone, Isha: PrayerNone,
	}
}

// HabitConfig defines one configurable daily habit.
type HabitConfig struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// DefaultHabitsConfig seeds a single starter habit.
func DefaultHabitsConfig() []HabitConfig {
	return []HabitConfig{{ID: "1", Name: "أكل صحي", Emoji: "🥗"}}
}

// DailyHabits records habit completion and water intake for a day.
type DailyHabits struct {
	Date              string   `json:"date"`
	CompletedHabitIDs []string `json:"completedHabitIds"`
	WaterCups         int      `json:"waterCups"`
}

func (l DailyHabits) DateKey() string { return l.Date }

// NewDailyHabits returns the zero-value record for date.
func NewDailyHabits(date string) DailyHabits {
	return DailyHabits{Date: date, CompletedHabitIDs: []string{}}
}

// FocusTask is one entry on the day's short focus list.
type FocusTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// FocusList is the day's focus list (intended max 3 items; not enforced here).
type FocusList struct {
	Date  string      `json:"date"`
	Tasks []FocusTask `json:"tasks"`
}

func (l FocusList) DateKey() string { return l.Date }

// NewFocusList returns the zero-value list for date.
func NewFocusList(date string) FocusList {
	return FocusList{Date: date, Tasks: []FocusTask{}}
}

// ToDoTask is one entry on the day's to-do list.
type ToDoTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// DailyToDo is the day's to-do list.
type DailyToDo struct {
	Date  string     `json:"date"`
	Tasks []ToDoTask `json:"tasks"`
}

func (l DailyToDo) DateKey() string { return l.Date }

// NewDailyToDo returns the zero-value list for date.
func NewDailyToDo(date string) DailyToDo {
	return DailyToDo{Date: date, Tasks: []ToDoTask{}}
}

// AdhkarProgress records which adhkar categories were finished on a day.
// The scored categories are "morning", "evening" and "sleep".
type AdhkarProgress struct {
	Date                string   `json:"date"`
	CompletedCategories []string `json:"completedCategories"`
}

func (l AdhkarProgress) DateKey() string { return l.Date }

// NewAdhkarProgress returns the zero-value record for date.
func NewAdhkarProgress(date string) AdhkarProgress {
	return AdhkarProgress{Date: date, CompletedCategories: []string{}}
}

// RamadanDay records the Ramadan-specific daily checklist.
type RamadanDay struct {
	Date        string `json:"date"`
	Fasting     bool   `json:"fasting"`
	Tarawih     bool   `json:"tarawih"`
	Qiyam       bool   `json:"qiyam"`
	IftarInvite bool   `json:"iftarInvite"`
	GoodDeed    string `json:"goodDeed"`
}

func (l RamadanDay) DateKey() string { return l.Date }

// NewRamadanDay returns the zero-value record for date.
func NewRamadanDay(date string) RamadanDay {
	return RamadanDay{Date: date}
}

// RamadanDua is one saved supplication.
type RamadanDua struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// RamadanConfig holds the 30-cell khatma grid and the dua list.
type RamadanConfig struct {
	KhatmaGrid []bool       `json:"khatmaGrid"`
	Duas       []RamadanDua `json:"duas"`
}

// DefaultRamadanConfig returns an empty 30-day grid.
func DefaultRamadanConfig() RamadanConfig {
	return RamadanConfig{KhatmaGrid: make([]bool, 30), Duas: []RamadanDua{}}
}

// FootballPosition is the player's position on the pitch.
type FootballPosition string

const (
	PositionGK  FootballPosition = "GK"
	PositionDEF FootballPosition = "DEF"
	PositionMID FootballPosition = "MID"
	PositionFWD FootballPosition = "FWD"
)

// FootballProfile is the training-journal singleton. Level is derived from
// consistency, not user-edited.
type FootballProfile struct {
	Position     FootballPosition `json:"position,omitempty"`
	TrainingDays []int            `json:"trainingDays"` // 0=Sunday .. 6=Saturday
	Level        int              `json:"level"`
}

// DefaultFootballProfile returns the pre-onboarding profile.
func DefaultFootballProfile() FootballProfile {
	return FootballProfile{TrainingDays: []int{}, Level: 1}
}

// FootballRatings are 1-5 star self-ratings for one session.
type FootballRatings struct {
	Physical  int `json:"physical"`
	Mental    int `json:"mental"`
	Technical int `json:"technical"`
}

// FootballTrainingLog is one day's training journal entry.
type FootballTrainingLog struct {
	Date      string          `json:"date"`
	Completed bool            `json:"completed"`
	Ratings   FootballRatings `json:"ratings"`
	Notes     string          `json:"notes"`
}

func (l FootballTrainingLog) DateKey() string { return l.Date }

// NewFootballLog returns the zero-value log for date.
func NewFootballLog(date string) FootballTrainingLog {
	return FootballTrainingLog{Date: date}
}

// ChatMessage is one turn of the companion chat history.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "user" or "model"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// LocationConfig is the stored prayer-times location.
type LocationConfig struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	IsManual bool    `json:"isManual"`
}

// FeatureID identifies a toggleable application feature.
type FeatureID string

// DefaultEnabledFeatures is the feature set enabled when the user has never
// customized it.
func DefaultEnabledFeatures() []FeatureID {
	return []FeatureID{
		"prayers", "quran", "habits", "study", "finance",
		"focus", "tasbeeh", "adhkar", "history", "todo",
	}
}

// PrayerTimes holds the five prayer times as HH:MM 24h strings, as returned
// by the external prayer-times provider.
type PrayerTimes struct {
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}
