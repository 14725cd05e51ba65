package app

import (
	"database/sql"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections. Redis is nil when REDIS_ADDR is
// unset, which turns off the stats cache and dispatch idempotency.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client

	drains []func()
}

// onClose registers fn to run before the connections are closed.
func (i *Infra) onClose(fn func()) {
	i.drains = append(i.drains, fn)
}

func (i *Infra) Close() {
	for _, drain := range i.drains {
		drain()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func connect(cfg *config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}
	if withRedis && cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	}
	return infra, nil
}

// BuildApp connects the stores and mounts every module on router. The
// returned Infra must be closed after the server stops.
func BuildApp(router *gin.Engine, cfg *config.Config, auditLogger audit.Logger) (*Infra, error) {
	log := zap.L().Named("app")

	infra, err := connect(cfg, true)
	if err != nil {
		return nil, err
	}
	if infra.Redis == nil {
		log.Warn("REDIS_ADDR not set, running without cache and idempotency")
	}

	if err := registerModules(router, cfg, infra, auditLogger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
