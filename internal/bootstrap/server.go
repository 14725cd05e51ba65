package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServerConfig leaves WriteTimeout at zero. The monitor websocket
// and simulated deliveries hold responses open for longer than a write
// deadline would allow.
func DefaultServerConfig(port string) ServerConfig {
	return ServerConfig{
		Port:            port,
		ReadTimeout:     15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// StartHTTPServer serves router until SIGINT or SIGTERM and then drains
// in-flight requests for up to cfg.ShutdownTimeout. It returns the listen
// error if the server could not start.
func StartHTTPServer(router *gin.Engine, cfg ServerConfig, auditLogger audit.Logger) error {
	log := zap.L().Named("bootstrap.server")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	auditLogger.Log(context.Background(), audit.Entry{
		Action:  audit.ActionServerShutdown,
		Message: "api shutting down",
		Meta:    map[string]any{"drain_timeout": cfg.ShutdownTimeout.String()},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return nil
	}
	log.Info("http server drained")
	return nil
}
