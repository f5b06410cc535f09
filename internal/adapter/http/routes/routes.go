package routes

import (
	"context"
	"os"

	_ "orcafacil/docs" // swagger docs, auto-generated
	"orcafacil/internal/adapter/http/handlers"
	"orcafacil/internal/adapter/http/middleware"
	"orcafacil/internal/infrastructure/config"
	"orcafacil/internal/infrastructure/storage"
	"orcafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to wire routes")
	}

	log.Info().Str("backend", cfg.Storage.Backend).Str("port", cfg.App.Port).Msg("starting server")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(cfg *config.Config) error {
	store, users, err := storage.Open(context.Background(), cfg)
	if err != nil {
		return err
	}

	budgetStore := usecase.NewBudgetStore(store)
	clientStore := usecase.NewClientStore(store)
	materialStore := usecase.NewMaterialStore(store)

	budgetHandler := handlers.NewBudgetHandler(budgetStore)
	clientHandler := handlers.NewClientHandler(clientStore)
	materialHandler := handlers.NewMaterialHandler(materialStore)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// The api backend has no user storage of its own: accounts live on the
	// upstream instance, which also validates the forwarded bearer token. In
	// that mode the auth routes are not exposed and the resource routes are
	// left open locally.
	protected := v1
	if users != nil {
		authUseCase := usecase.NewAuthUseCase(users, []byte(cfg.JWT.Secret), cfg.JWT.TTL())
		addAuthRoutes(v1, handlers.NewAuthHandler(authUseCase))
		protected = v1.Group("", middleware.Auth([]byte(cfg.JWT.Secret)))
	} else {
		log.Warn().Msg("auth routes disabled: storage backend has no user repository")
	}

	addBudgetRoutes(protected, budgetHandler)
	addClientRoutes(protected, clientHandler)
	addMaterialRoutes(protected, materialHandler)
	return nil
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.App.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func setMiddlewares() {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
