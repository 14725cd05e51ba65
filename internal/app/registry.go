package app

import (
	"context"
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audio"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/auth"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/campaign"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/company"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/contact"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/monitor"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/poller"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/rbac"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/counter"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	infra *Infra,
	auditLogger audit.Logger,
) error {
	logger := zap.L()
	gormDB, db := infra.GormDB, infra.SQLDB

	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	contactRepo := contact.NewRepository(gormDB)
	campaignRepo := campaign.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)

	var outbox kafka.OutboxRepository
	if cfg.Kafka.PublishEvents {
		outbox = kafka.NewOutboxRepository(db)
	}

	// --- Delivery path ---
	dl, err := buildDelivery(cfg, infra, logger)
	if err != nil {
		return err
	}

	storage, err := audio.NewStorage(cfg.Storage, logger)
	if err != nil {
		return err
	}

	// --- RBAC and identity ---
	rbacService, err := rbac.NewService(context.Background(), rbacRepo, logger)
	if err != nil {
		return err
	}
	actors := user.NewActorResolver(userRepo)
	authService := auth.NewService(authRepo, actors, cfg.Auth.JWTSecret, logger)

	mw := middleware.Stack{
		JWTSecret: cfg.Auth.JWTSecret,
		Actors:    actors,
		RBAC:      rbacService,
		Logger:    logger,
	}

	// --- Services ---
	companyService := company.NewService(db, companyRepo, counterRepo, logger)
	contactService := contact.NewService(contactRepo, companyRepo, logger)
	rosterService := roster.NewService(dl.entries, companyRepo, dl.stats, auditLogger, logger)
	campaignService := campaign.NewService(db, campaignRepo, dl.entries, auditLogger, logger)
	userService := user.NewService(userRepo, authService, auditLogger, logger)
	dispatcher := outreach.NewDispatcher(db, dl.repo, dl.entries, outbox, logger)
	queries := outreach.NewQueries(dl.repo, logger)
	monitorService := monitor.NewService(rosterService, queries, logger)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService, logger)
	contactHandler := contact.NewHandler(contactService, logger)
	rosterHandler := roster.NewHandler(rosterService, logger)
	outreachHandler := outreach.NewHandler(dispatcher, dl.sender, dl.tracker, queries, logger)
	campaignHandler := campaign.NewHandler(campaignService, logger)
	audioHandler := audio.NewHandler(storage, logger)
	authHandler := auth.NewHandler(authService, cfg.App.IsProduction(), logger)
	userHandler := user.NewHandler(userService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	monitorHandler := monitor.NewHandler(monitorService, poller.DefaultConfig, logger)

	// --- Routes Registration ---
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.NoRoute(func(c *gin.Context) { response.FromError(c, apperror.ErrNotFound) })
	audio.RegisterMedia(router, storage)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, mw)
		user.RegisterRoutes(api, userHandler, mw)
		rbac.RegisterRoutes(api, rbacHandler, mw)
		company.RegisterRoutes(api, companyHandler, mw)
		contact.RegisterRoutes(api, contactHandler, mw)
		roster.RegisterRoutes(api, rosterHandler, mw)
		outreach.RegisterRoutes(api, outreachHandler, mw, outreach.RouteOptions{
			Redis:          infra.Redis,
			CallbackSecret: cfg.Webhook.CallbackSecret,
		})
		monitor.RegisterRoutes(api, monitorHandler, mw)
		campaign.RegisterRoutes(api, campaignHandler, mw)
		audio.RegisterRoutes(api, audioHandler, mw)
	}

	logger.Info("modules registered",
		zap.Bool("publish_events", outbox != nil),
		zap.String("storage_backend", cfg.Storage.Backend),
	)
	return nil
}
