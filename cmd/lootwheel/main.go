package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/config"
	"github.com/KirkDiggler/lootwheel/internal/handlers/discord"
	"github.com/KirkDiggler/lootwheel/internal/handlers/web"
	raffleRepo "github.com/KirkDiggler/lootwheel/internal/repositories/raffle"
	"github.com/KirkDiggler/lootwheel/internal/rng"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	raffleService "github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/KirkDiggler/lootwheel/internal/wheel"
	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	defer logger.Init("lootwheel", cfg.Verbose, false, io.Discard).Close()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo, err := raffleRepo.NewRedis(&raffleRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatalf("Failed to create raffle repository: %v", err)
	}

	random := rng.New(&rng.Config{Seed: cfg.RandomSeed})
	hub := web.NewHub(nil)

	messagingSvc, err := messaging.NewService(&messaging.Config{
		Random: random,
	})
	if err != nil {
		logger.Fatalf("Failed to create messaging service: %v", err)
	}

	raffleSvc, err := raffleService.New(&raffleService.Config{
		HistoryLimit:  cfg.HistoryLimit,
		Repository:    repo,
		Renderer:      raffleService.MultiRenderer{hub},
		Animator:      wheel.NewAnimator(&wheel.AnimatorConfig{Settings: cfg.Wheel}),
		Random:        random,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatalf("Failed to create raffle service: %v", err)
	}

	handler, err := web.New(&web.Config{
		RaffleService:    raffleSvc,
		MessagingService: messagingSvc,
		Hub:              hub,
	})
	if err != nil {
		logger.Fatalf("Failed to create HTTP handler: %v", err)
	}

	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("HTTP API listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// The Discord bot is optional
	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.ApplicationID,
			GuildID:          cfg.GuildID,
			RaffleService:    raffleSvc,
			MessagingService: messagingSvc,
		})
		if err != nil {
			logger.Fatalf("Failed to create Discord bot: %v", err)
		}

		if err := bot.Start(); err != nil {
			logger.Fatalf("Failed to start Discord bot: %v", err)
		}
	} else {
		logger.Info("DISCORD_TOKEN not set, Discord bot disabled")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error stopping HTTP server: %v", err)
	}
	hub.Close()

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.Errorf("Error stopping bot: %v", err)
		}
	}
}
