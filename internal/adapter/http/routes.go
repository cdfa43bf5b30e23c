package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mariepimienta/task-app/internal/adapter/http/handlers"
	"github.com/mariepimienta/task-app/internal/adapter/http/middleware"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Tasks    *handlers.TaskHandler
	Weeks    *handlers.WeekHandler
	Settings *handlers.SettingsHandler
	Calendar *handlers.CalendarHandler
	Report   *handlers.ReportHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListWeekTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.POST("/tasks/:id/toggle", h.Tasks.ToggleTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.POST("/tasks/:id/move", h.Tasks.MoveTask)
		api.PUT("/buckets/order", h.Tasks.ReorderBucket)
		api.POST("/sample-data", h.Tasks.LoadSampleData)

		api.GET("/weeks", h.Weeks.ListWeeks)
		api.POST("/weeks/current", h.Weeks.EnsureCurrentWeek)
		api.POST("/weeks/next", h.Weeks.CreateNextWeek)
		api.POST("/weeks/:week", h.Weeks.CreateWeek)
		api.DELETE("/weeks/:week", h.Weeks.DeleteWeek)
		api.GET("/weeks/:week/report.pdf", h.Report.WeekReport)
		api.POST("/template/propagate", h.Weeks.PropagateTemplate)

		api.GET("/settings", h.Settings.GetSettings)
		api.PATCH("/settings", h.Settings.UpdateSettings)

		api.GET("/calendar/events", h.Calendar.ListWeekEvents)
		api.PUT("/calendar/events", h.Calendar.ReplaceEvents)
	}
}
