package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader  = "Idempotency-Key"
	idempotencyLockTTL = 30 * time.Second
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyCacheKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency replays the stored response of a POST that carried the same
// Idempotency-Key for the same user, and rejects a duplicate that arrives
// while the first is still running.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyCacheKey(c.FullPath(), c.GetString("user_id_validated"), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Named("middleware.idempotency").Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "Requisição já está sendo processada",
				"code":  "PROCESSING",
			})
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError || !json.Valid(rec.body.Bytes()) {
			return
		}
		payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.body.Bytes()})
		if err != nil {
			return
		}
		_ = rdb.Set(ctx, cacheKey, string(payload), ttl).Err()
	}
}
