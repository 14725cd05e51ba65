package auth

import (
	"net/http"

	autherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/auth/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	platform "github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/request"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type Handler struct {
	service       Service
	secureCookies bool
	logger        *zap.Logger
}

func NewHandler(service Service, secureCookies bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, secureCookies: secureCookies, logger: l}
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) setTokenCookies(c *gin.Context, pair TokenPair) {
	h.setCookie(c, accessCookie, pair.AccessToken, int(AccessTokenTTL.Seconds()))
	h.setCookie(c, refreshCookie, pair.RefreshToken, int(RefreshTokenTTL.Seconds()))
}

func isWeb(c *gin.Context) bool {
	return platform.IsWebClient(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if isWeb(c) {
		h.setTokenCookies(c, pair)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, nil)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	web := isWeb(c)

	var token string
	if web {
		cookie, err := c.Cookie(refreshCookie)
		if err != nil {
			response.FromError(c, autherrors.ErrMissingRefreshToken)
			return
		}
		token = cookie
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.FromError(c, apperror.MapValidationError(err))
			return
		}
		token = req.RefreshToken
	}

	pair, user, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if web {
		h.setTokenCookies(c, pair)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	actor, ok := contextutil.GetActor(c.Request.Context())
	if !ok {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	user, err := h.service.Me(c.Request.Context(), actor.AuthID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, accessCookie, "", -1)
	h.setCookie(c, refreshCookie, "", -1)
	response.Success(c, http.StatusOK, "Logout success.", nil)
}
