package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/core"
	"github.com/om607397-wq/namaa/internal/middleware"
	"github.com/om607397-wq/namaa/internal/observe"
	"github.com/om607397-wq/namaa/internal/store"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// Deps gathers everything route setup needs.
type Deps struct {
	Logger      *zap.Logger
	Metrics     *observe.Metrics
	Namespace   *store.Namespace
	Tracker     *tracker.Service
	Sessions    *core.SessionManager
	Sync        core.SyncService    // nil when cloud is disabled
	Accounts    core.AccountService // nil when cloud is disabled
	PrayerTimes core.PrayerTimesProvider
	Chat        core.ChatProvider
}

// SetupRoutes wires every endpoint onto router. Global middleware (logging,
// recovery, CORS) is expected to be applied by the caller first.
func SetupRoutes(router *gin.Engine, d Deps) {
	trackerHandler := NewTrackerHandler(d.Tracker)
	providersHandler := NewProvidersHandler(d.Tracker, d.PrayerTimes, d.Chat, d.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		d.Metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/score/:date", trackerHandler.Score)

		v1.GET("/profile", trackerHandler.GetProfile)
		v1.PUT("/profile", trackerHandler.PutProfile)
		v1.PUT("/profile/bookmark", trackerHandler.PutBookmark)
		v1.GET("/settings", trackerHandler.GetSettings)
		v1.PUT("/settings", trackerHandler.PutSettings)

		logs := v1.Group("/logs")
		{
			logs.GET("/prayers/:date", trackerHandler.GetPrayerLog)
			logs.PUT("/prayers", trackerHandler.PutPrayerLog)
			logs.GET("/quran/:date", trackerHandler.GetQuranLog)
			logs.PUT("/quran", trackerHandler.PutQuranLog)
			logs.GET("/habits/:date", trackerHandler.GetDailyHabits)
			logs.PUT("/habits", trackerHandler.PutDailyHabits)
			logs.GET("/focus/:date", trackerHandler.GetFocusList)
			logs.PUT("/focus", trackerHandler.PutFocusList)
			logs.GET("/todo/:date", trackerHandler.GetDailyToDo)
			logs.PUT("/todo", trackerHandler.PutDailyToDo)
			logs.GET("/adhkar/:date", trackerHandler.GetAdhkarProgress)
			logs.PUT("/adhkar", trackerHandler.PutAdhkarProgress)
			logs.GET("/screentime/:date", trackerHandler.GetScreenTime)
			logs.PUT("/screentime", trackerHandler.PutScreenTime)
			logs.GET("/tasbeeh/:date", trackerHandler.GetTasbeeh)
			logs.PUT("/tasbeeh", trackerHandler.PutTasbeeh)
			logs.GET("/tasbeeh", trackerHandler.TasbeehTotal)
			logs.GET("/ramadan/:date", trackerHandler.GetRamadanDay)
			logs.PUT("/ramadan", trackerHandler.PutRamadanDay)
			logs.GET("/football/:date", trackerHandler.GetFootballLog)
			logs.PUT("/football", trackerHandler.PutFootballLog)
			logs.GET("/review/:date", trackerHandler.GetDailyReview)
			logs.PUT("/review", trackerHandler.PutDailyReview)
		}

		configs := v1.Group("/configs")
		{
			configs.GET("/quran", trackerHandler.GetQuranConfig)
			configs.PUT("/quran", trackerHandler.PutQuranConfig)
			configs.GET("/habits", trackerHandler.GetHabitsConfig)
			configs.PUT("/habits", trackerHandler.PutHabitsConfig)
			configs.GET("/ramadan", trackerHandler.GetRamadanConfig)
			configs.PUT("/ramadan", trackerHandler.PutRamadanConfig)
		}

		v1.GET("/study", trackerHandler.GetStudySessions)
		v1.POST("/study", trackerHandler.PostStudySession)
		v1.GET("/study/summary", trackerHandler.StudySummary)

		v1.GET("/expenses", trackerHandler.GetExpenses)
		v1.POST("/expenses", trackerHandler.PostExpense)
		v1.GET("/budget", trackerHandler.GetBudget)
		v1.PUT("/budget", trackerHandler.PutBudget)

		v1.GET("/reviews/weekly", trackerHandler.GetWeeklyReviews)
		v1.POST("/reviews/weekly", trackerHandler.PostWeeklyReview)

		v1.GET("/football/profile", trackerHandler.GetFootballProfile)
		v1.PUT("/football/profile", trackerHandler.PutFootballProfile)

		v1.GET("/features", trackerHandler.GetFeatures)
		v1.PUT("/features", trackerHandler.PutFeatures)
		v1.GET("/location", trackerHandler.GetLocation)
		v1.PUT("/location", trackerHandler.PutLocation)

		v1.GET("/chat/history", trackerHandler.GetChatHistory)
		v1.DELETE("/chat/history", trackerHandler.DeleteChatHistory)
		v1.POST("/chat", providersHandler.Chat)
		v1.GET("/prayertimes", providersHandler.PrayerTimes)

		// Sync and account endpoints only exist when Firebase is configured;
		// the service is otherwise purely local.
		if d.Accounts != nil && d.Sync != nil {
			accountHandler := NewAccountHandler(d.Accounts, d.Logger)
			syncHandler := NewSyncHandler(d.Sync, d.Namespace, d.Logger)

			account := v1.Group("/account")
			{
				account.POST("/register", accountHandler.Register)
				account.POST("/session", accountHandler.SignIn)
				account.DELETE("/session", accountHandler.SignOut)
				account.GET("/session", accountHandler.Session)
			}

			syncGroup := v1.Group("/sync", middleware.RequireSession(d.Sessions))
			{
				syncGroup.POST("/upload", syncHandler.Upload)
				syncGroup.POST("/download", syncHandler.Download)
			}

			v1.GET("/data/export", syncHandler.Export)
			v1.POST("/data/import", syncHandler.Import)
			v1.DELETE("/data", syncHandler.Clear)
		} else {
			localSync := NewSyncHandler(nil, d.Namespace, d.Logger)
			v1.GET("/data/export", localSync.Export)
			v1.POST("/data/import", localSync.Import)
			v1.DELETE("/data", func(c *gin.Context) {
				d.Namespace.Wipe(store.KeySettings)
				c.Status(http.StatusNoContent)
			})
		}
	}
}
