package audio

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	audioerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/audio/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MaxUploadBytes = 25 << 20
	KeyPrefix      = "cobranca-audio/"
	defaultExt     = "mp3"
)

type Handler struct {
	storage Storage
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(storage Storage, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audio.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audio.handler")
	}
	return &Handler{storage: storage, now: time.Now, logger: l}
}

// ObjectKey names an upload by its arrival time, keeping the client's extension.
func ObjectKey(at time.Time, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = defaultExt
	}
	return fmt.Sprintf("%s%d.%s", KeyPrefix, at.UnixMilli(), strings.ToLower(ext))
}

func (h *Handler) fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Fail(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()
	log := contextutil.GetLogger(ctx, h.logger)

	fh, err := c.FormFile("file")
	if err != nil {
		h.fail(c, audioerrors.ErrNoFile)
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		h.fail(c, audioerrors.ErrNotAudio)
		return
	}
	if fh.Size > MaxUploadBytes {
		h.fail(c, audioerrors.ErrTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		log.Error("open uploaded file failed", zap.Error(err))
		h.fail(c, audioerrors.ErrUpload)
		return
	}
	defer f.Close()

	key := ObjectKey(h.now(), fh.Filename)
	url, err := h.storage.Put(ctx, key, contentType, f, fh.Size)
	if err != nil {
		log.Error("audio upload failed", zap.String("key", key), zap.Error(err))
		h.fail(c, audioerrors.ErrStorage)
		return
	}

	log.Info("audio uploaded", zap.String("key", key), zap.Int64("bytes", fh.Size))
	response.Ack(c, http.StatusOK, gin.H{"url": url, "filename": key})
}
