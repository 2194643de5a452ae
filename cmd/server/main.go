package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/item"
	"shareit/internal/platform/db"
	"shareit/internal/platform/reqid"
	"shareit/internal/request"
	"shareit/internal/user"
)

// @title        ShareIt Server API
// @version      1.0
// @description  Business logic and persistence for the item sharing platform.
// @BasePath     /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := db.LoadConfig("config/server.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Mode != "dev" && cfg.Mode != "release" {
		slog.Error("mode must be dev or release", "mode", cfg.Mode)
		os.Exit(1)
	}
	slog.Info("starting server", "mode", cfg.Mode, "listen", cfg.Listen)

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer conn.Close()
	slog.Info("connected to DB", "dbname", cfg.DB.DBName)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), reqid.Middleware())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Sharer-User-Id", "X-Request-Id"},
			ExposeHeaders: []string{"Content-Length", "X-Request-Id"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	bookingSvc := booking.NewService(conn)
	commentSvc := comment.NewService(conn, bookingSvc)

	user.RegisterRoutes(r, user.NewService(conn))
	item.RegisterRoutes(r, item.NewService(conn, bookingSvc, commentSvc))
	booking.RegisterRoutes(r, bookingSvc)
	comment.RegisterRoutes(r, commentSvc)
	request.RegisterRoutes(r, request.NewService(conn))

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: r,
	}

	go func() {
		slog.Info("listening", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
