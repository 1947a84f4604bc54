// Package main is the entrypoint for the CRM API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eladcrm/crm-api/internal/api"
	"github.com/eladcrm/crm-api/internal/api/handler"
	"github.com/eladcrm/crm-api/internal/core/service"
	"github.com/eladcrm/crm-api/internal/infrastructure/db/mongo"
	"github.com/eladcrm/crm-api/internal/infrastructure/db/redis"
	"github.com/eladcrm/crm-api/internal/pkg/config"
	"github.com/eladcrm/crm-api/pkg/logger"
)

// @title        CRM API
// @version      1.0
// @description  Business-management backend: customers, trainings, tasks, payments, finance.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	for _, name := range cfg.InsecureDefaults() {
		log.Warn().Str("setting", name).Msg("running with built-in default value, do not use in production")
	}

	ctx := context.Background()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// Bootstrap admin: idempotent, safe to run on every start.
	userRepo := mongo.NewUserRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, nil)
	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("admin account ensured")

	if err := handler.SyncUserCount(ctx, authService); err != nil {
		log.Warn().Err(err).Msg("user gauge sync failed")
	}

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		PublicDir: cfg.PublicDir,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("crm api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("crm api stopped")
}
