package handler

import (
	"net/http"
	"time"

	"github.com/Orionsman/cari-takip/internal/config"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler is the pass/fail gate in front of the API: one operator
// password checked against a configured bcrypt hash, a JWT on success.
type AuthHandler struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
	ttlHours := cfg.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		PasswordHash: cfg.PasswordHash,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if h.PasswordHash == "" || h.JWTSecret == "" {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "auth is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "issue token failed")
		return
	}

	util.Success(c, util.Response{
		"token":      token,
		"expires_in": int(h.TokenTTL.Seconds()),
	})
}
