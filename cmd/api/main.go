// @title           Portfolio Site API
// @version         1.0
// @description     포트폴리오 프로필, 연락처 메시지, AI 채팅, 관리자 API
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "PortfolioSite/docs"
	"PortfolioSite/internal/assistant"
	"PortfolioSite/internal/auth"
	"PortfolioSite/internal/config"
	"PortfolioSite/internal/handler"
	"PortfolioSite/internal/llm"
	"PortfolioSite/internal/logger"
	"PortfolioSite/internal/media"
	"PortfolioSite/internal/middleware"
	"PortfolioSite/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := storage.InitDB(cfg.DBPath); err != nil {
		log.Fatal("main(): failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer storage.CloseDB()

	auth.Init(cfg.JWTSecret)

	// API 키가 없으면 채팅은 500 "Gemini API key not configured" 응답
	var responder llm.Responder
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("main(): Gemini client unavailable", zap.Error(err))
		} else {
			responder = gemini
		}
	} else {
		log.Warn("main(): GEMINI_API_KEY is not set, AI chat disabled")
	}

	store, err := media.NewStore(cfg.MediaRoot)
	if err != nil {
		log.Fatal("main(): media store", zap.Error(err))
	}

	handler.Configure(handler.Deps{
		Assistant: assistant.NewService(responder, cfg.ChatHistoryLimit),
		Media:     store,
		MediaURL:  cfg.MediaURL,
	})
	handler.SetAllowedOrigins(cfg.AllowedOrigins)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code")
	router.Use(cors.New(corsConfig))

	handler.RegisterRoutes(router, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("main(): listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("main(): server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("main(): graceful shutdown failed", zap.Error(err))
	}
	log.Info("main(): server stopped")
}
