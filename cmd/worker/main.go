package main

import (
	"log"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/app"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/logger"

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

	if err := app.RunWorker(cfg); err != nil {
		zl.Fatal("run worker failed", zap.Error(err))
	}
}
