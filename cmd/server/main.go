package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/auth"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/config"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/database"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/mailer"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/observability"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/llm"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/recommend"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/server"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/store"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/vendorsearch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("starting wedding planner platform", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		log.WithError(err).Error("failed to connect to postgres", nil)
		os.Exit(1)
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.EnsureSchema(ctx, pg); err != nil {
		cancel()
		log.WithError(err).Error("failed to ensure database schema", nil)
		os.Exit(1)
	}
	cancel()

	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		log.WithError(err).Error("failed to connect to redis", nil)
		os.Exit(1)
	}
	defer rdb.Close()

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	sessions := auth.NewSessionStore(rdb.Client, config.GetDuration(cfg.Auth.SessionTTL))
	hasher := auth.NewHasher(cfg.Auth.BcryptCost, cfg.Auth.MinPasswordSize)

	var chat llm.Client
	if cfg.APIs.Chat.APIKey != "" {
		chat = llm.NewClient(cfg.APIs, log)
	} else {
		log.Warn("chat API key not configured, AI features degrade to rule-based output", nil)
	}

	seed := time.Now().UnixNano()
	vendors := vendorsearch.NewService(
		[]vendorsearch.Source{
			vendorsearch.NewDirectorySource(seed),
			vendorsearch.NewPlatformSource(seed + 1),
			vendorsearch.NewSocialSource(seed + 2),
			vendorsearch.NewCatalogSource(),
		},
		vendorsearch.NewRedisCache(rdb.Client, config.GetDuration(cfg.Search.CacheTTL)),
		vendorsearch.NewLLMRanker(chat, log),
		config.GetDuration(cfg.Search.SourceTimeout),
		log,
	)

	rules := recommend.NewRuleEngine()
	var recommender *recommend.AIRecommender
	if cfg.Recommendations.AIEnabled && chat != nil {
		recommender = recommend.NewAIRecommender(chat, rules, config.GetDuration(cfg.Recommendations.AITimeout), log)
	} else {
		recommender = recommend.NewAIRecommender(nil, rules, 0, log)
	}

	var mail mailer.Mailer
	if cfg.Mail.SES.Enabled {
		sesCtx, sesCancel := context.WithTimeout(context.Background(), 10*time.Second)
		ses, err := mailer.NewSESMailer(sesCtx, cfg.Mail.AWS.Region, cfg.Mail.SES.FromEmail, log)
		sesCancel()
		if err != nil {
			log.WithError(err).Error("failed to initialize SES mailer", nil)
			os.Exit(1)
		}
		mail = ses
	} else {
		mail = mailer.NewNoOpMailer(log)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler := server.NewAPIHandler(server.Deps{
		Config:      cfg,
		Logger:      log,
		Users:       store.NewUserStore(pg),
		Weddings:    store.NewWeddingStore(pg),
		Budgets:     store.NewBudgetStore(pg),
		Timelines:   store.NewTimelineStore(pg),
		Checklists:  store.NewChecklistStore(pg),
		Templates:   store.NewTemplateStore(),
		Searches:    store.NewSearchLogStore(pg),
		Sessions:    sessions,
		Hasher:      hasher,
		Vendors:     vendors,
		Recommender: recommender,
		Planner:     recommend.NewPlanner(),
		Chat:        chat,
		Mailer:      mail,
		Obs:         obs,
	})
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		log.Info("http server listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("http server failed", nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown", nil)
	}
	log.Info("server stopped", nil)
}
