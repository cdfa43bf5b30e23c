package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mariepimienta/task-app/internal/adapter/storage/sqlstore"
	"github.com/mariepimienta/task-app/internal/app/scheduler"
	"github.com/mariepimienta/task-app/internal/app/service"
	"github.com/mariepimienta/task-app/internal/config"
	"github.com/mariepimienta/task-app/pkg/translator"

	httpadapter "github.com/mariepimienta/task-app/internal/adapter/http"
	"github.com/mariepimienta/task-app/internal/adapter/http/handlers"
	httpmiddleware "github.com/mariepimienta/task-app/internal/adapter/http/middleware"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := sqlstore.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close storage connection", zap.Error(err))
		}
	}()

	store, err := sqlstore.New(db)
	if err != nil {
		logger.Fatal("failed to initialize blob store", zap.Error(err))
	}

	planner := service.NewPlannerService(store)
	settings := service.NewSettingsService(store)
	calendar := service.NewCalendarService(store)

	if week, err := planner.EnsureCurrentWeek(context.Background()); err != nil {
		logger.Warn("failed to materialize current week at startup", zap.Error(err))
	} else {
		logger.Info("current week ready", zap.String("week", week))
	}

	if cfg.WeeklyRollover {
		sched := scheduler.New(cfg.Timezone)
		if _, err := sched.ScheduleWeeklyRollover(planner, cfg.PropagateOnRollover); err != nil {
			logger.Fatal("failed to schedule weekly rollover", zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(store),
		Tasks:    handlers.NewTaskHandler(planner),
		Weeks:    handlers.NewWeekHandler(planner),
		Settings: handlers.NewSettingsHandler(settings),
		Calendar: handlers.NewCalendarHandler(calendar),
		Report:   handlers.NewReportHandler(planner),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
