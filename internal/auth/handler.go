package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"PokerAssist/internal/utils"
)

type LoginRequest struct {
	Address   string `json:"address" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Nonce     string `json:"nonce" binding:"required"`
}

type Handler struct {
	store    NonceStore
	secret   []byte
	nonceTTL time.Duration
	tokenTTL time.Duration
}

func NewHandler(store NonceStore, secret []byte, nonceTTL, tokenTTL time.Duration) *Handler {
	return &Handler{store: store, secret: secret, nonceTTL: nonceTTL, tokenTTL: tokenTTL}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/nonce", h.Nonce)
	r.POST("/nonce", h.Nonce)
	r.POST("/login", h.Login)
}

// GET|POST /auth/nonce
func (h *Handler) Nonce(c *gin.Context) {
	nonce, err := generateNonce()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate nonce"})
		return
	}
	if err := h.store.Save(c.Request.Context(), nonce, h.nonceTTL); err != nil {
		utils.Log.Error("save nonce", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store nonce"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nonce": nonce, "message": SignMessage(nonce)})
}

// POST /auth/login  body: {address, signature, nonce}
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// nonce 只允许使用一次
	ok, err := h.store.Consume(c.Request.Context(), req.Nonce)
	if err != nil {
		utils.Log.Error("consume nonce", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "nonce store unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nonce"})
		return
	}

	if err := VerifyLogin(req.Address, req.Nonce, req.Signature); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrSignatureMismatch) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	token, err := IssueToken(h.secret, req.Address, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt generation failed"})
		return
	}
	utils.Log.Info("login", "address", req.Address)
	c.JSON(http.StatusOK, gin.H{"jwt": token})
}
