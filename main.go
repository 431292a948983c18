package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"berta-backend/domain/repository"
	youtubeclient "berta-backend/infrastructure/clients/youtube"
	"berta-backend/infrastructure/configuration"
	"berta-backend/infrastructure/logger"
	"berta-backend/infrastructure/persistence"
	httpHandler "berta-backend/interfaces/http"
	"berta-backend/server"
	"berta-backend/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env files (non-destructive; OS env keeps precedence), then
	// re-resolve the configuration against the enriched environment.
	_ = godotenv.Load("config.env")
	_ = godotenv.Load()
	configuration.Reload()

	app := configuration.C.App

	youtubeConfig := configuration.GetYouTubeConfig()
	if youtubeConfig.APIKey == "" || youtubeConfig.ChannelID == "" {
		logger.GetLogger().Error("YouTube API key and channel id must be configured (YOUTUBE_API_KEY, YOUTUBE_CHANNEL_ID)")
		os.Exit(1)
	}

	youtubeRepo, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		APIKey:         youtubeConfig.APIKey,
		ChannelID:      youtubeConfig.ChannelID,
		MaxResults:     youtubeConfig.MaxResults,
		RequestTimeout: configuration.C.YouTube.Timeout(),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize YouTube client")
		os.Exit(1)
	}

	store := initiateStore(ctx)

	trendEngine := usecase.NewTrendEngine(configuration.C.Trend.Period, configuration.C.Trend.HistoryCap)
	cacheUseCase := usecase.NewCacheUseCase(
		youtubeRepo,
		store,
		trendEngine,
		configuration.C.Cache.StaleDuration(),
		configuration.C.Cache.SweepEvery(),
	)

	cacheHandler := httpHandler.NewCacheHandler(cacheUseCase)
	router := server.InitiateRouter(cacheHandler, cacheUseCase.Tracker())

	g.Go(func() error {
		return cacheUseCase.RunSweeper(ctx)
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Port),
		Handler: router,
	}
	g.Go(func() error {
		logger.GetLogger().WithField("port", app.Port).Info("Starting application")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateStore selects the document store backend. Redis is opt-in; when it
// is configured but unreachable the file store takes over so the service
// still comes up.
func initiateStore(ctx context.Context) repository.ICacheStore {
	if configuration.C.Cache.Backend == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
			Username: configuration.C.RedisClient.Username,
			Password: configuration.C.RedisClient.Password,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not reachable - falling back to file store")
		} else {
			logger.GetLogger().Info("Using redis cache store")
			return persistence.NewRedisStore(redisClient)
		}
	}
	logger.GetLogger().WithField("path", configuration.C.Cache.Path).Info("Using file cache store")
	return persistence.NewFileStore(configuration.C.Cache.Path)
}
