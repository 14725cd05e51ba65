package main

import (
	"log"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/app"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/bootstrap"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Env, cfg.Log)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	apperror.Init()
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), middleware.RequestID())

	auditLogger := audit.NewLogger(zl)

	infra, err := app.BuildApp(r, cfg, auditLogger)
	if err != nil {
		zl.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	if err := bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.App.Port), auditLogger); err != nil {
		zl.Error("http server failed", zap.Error(err))
	}
}
