package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PokerAssist/config"
	"PokerAssist/internal/analyzer"
	"PokerAssist/internal/auth"
	"PokerAssist/internal/game/manager"
	"PokerAssist/internal/storage"
	"PokerAssist/internal/utils"
	"PokerAssist/internal/websocket"

	"github.com/gin-gonic/gin"
)

const shutdownGrace = 5 * time.Second

func main() {
	if err := config.Load("config/config.yaml"); err != nil {
		utils.Log.Fatal("config load failed", "err", err)
	}
	utils.Init(config.C.Log.Level)
	if config.C.DefaultSecret() {
		utils.Log.Warn("jwt.secret is the placeholder; set POKER_JWT_SECRET before exposing /auth")
	}
	gin.SetMode(config.C.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//-------------------------------------------------------
	// 1. Nonce 存储：开启 Redis 时用 Redis，否则用内存
	//-------------------------------------------------------
	nonces := auth.NewMemoryStore()
	if config.C.Redis.Enabled {
		if err := storage.InitRedis(ctx,
			config.C.Redis.Addr,
			config.C.Redis.Password,
			config.C.Redis.DB,
		); err != nil {
			utils.Log.Fatal("redis init failed", "addr", config.C.Redis.Addr, "err", err)
		}
		defer storage.CloseRedis()
		nonces = auth.NewRedisStore(storage.Rdb)
		utils.Log.Info("nonce store", "backend", "redis", "addr", config.C.Redis.Addr)
	} else {
		utils.Log.Info("nonce store", "backend", "memory")
	}

	//-------------------------------------------------------
	// 2. 分析服务 + Hub（Hub 必须先于路由启动）
	//-------------------------------------------------------
	svc := analyzer.NewService(analyzer.PracticeDefaults{
		Opponents: config.C.Practice.Opponents,
		Position:  config.C.Practice.Position,
	})

	hub := websocket.NewHub()
	mgr := manager.NewGameManager(hub, svc)
	hub.OnIncoming = mgr.HandlePlayerMessage
	go hub.Run()

	//-------------------------------------------------------
	// 3. 路由
	//-------------------------------------------------------
	r := newRouter(deps{
		svc:      svc,
		hub:      hub,
		nonces:   nonces,
		secret:   []byte(config.C.JWT.Secret),
		required: config.C.Auth.Required,
		nonceTTL: time.Duration(config.C.Auth.NonceTTLSeconds) * time.Second,
		tokenTTL: time.Duration(config.C.JWT.TTLHours) * time.Hour,
	})

	srv := &http.Server{
		Addr:              config.C.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Log.Info("server running", "addr", srv.Addr, "authRequired", config.C.Auth.Required)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	//-------------------------------------------------------
	// 4. 优雅退出
	//-------------------------------------------------------
	utils.Log.Info("shutting down")
	hub.Broadcast(websocket.OutgoingMessage{Event: websocket.EventShutdown})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log.Warn("http shutdown", "err", err)
	}
	hub.Close()
	// 等写协程把 shutdown 事件和关闭帧发出去
	if err := hub.Wait(shutdownCtx); err != nil {
		utils.Log.Warn("websocket drain", "err", err)
	}
}
