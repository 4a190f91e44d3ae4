package main

import (
	"net/http"
	"time"

	"PokerAssist/internal/analyzer"
	"PokerAssist/internal/auth"
	"PokerAssist/internal/middleware"
	"PokerAssist/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type deps struct {
	svc      analyzer.Analyzer
	hub      *websocket.Hub
	nonces   auth.NonceStore
	secret   []byte
	required bool
	nonceTTL time.Duration
	tokenTTL time.Duration
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth.NewHandler(d.nonces, d.secret, d.nonceTTL, d.tokenTTL).Register(r.Group("/auth"))

	// 登录可选时匿名请求照常放行
	guard := middleware.OptionalJwt(d.secret)
	if d.required {
		guard = middleware.JwtAuthMiddleware(d.secret)
	}

	api := r.Group("/", guard)
	{
		analyzer.NewHandler(d.svc).Register(api)
		api.GET("/ws", websocket.ServeWS(d.hub))
	}
	return r
}
