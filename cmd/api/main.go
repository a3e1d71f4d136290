package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dxbevents/honeycommb-bridge/config"
	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	honeycommbmongo "github.com/dxbevents/honeycommb-bridge/honeycommb/mongo"
	"github.com/dxbevents/honeycommb-bridge/internal/http/chi"
	"github.com/dxbevents/honeycommb-bridge/internal/mongodb"
	"github.com/dxbevents/honeycommb-bridge/metrics"
	"github.com/dxbevents/honeycommb-bridge/retry"
	"github.com/dxbevents/honeycommb-bridge/webhook"
	webhookmongo "github.com/dxbevents/honeycommb-bridge/webhook/mongo"
	"github.com/dxbevents/honeycommb-bridge/webhook/signature"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main wires every package together: configuration, storage, the
 * ingest pipeline, the retry scheduler and the HTTP surface.
 * Importing goes only one direction, downwards: the application
 * imports business layers, which import the storage layer
 */

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "honeycommb-bridge").Logger()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return err
	}

	logStore := webhookmongo.NewLogStore(db)
	defer logStore.Close(ctx)
	userStore := honeycommbmongo.NewUserStore(db)
	eventStore := honeycommbmongo.NewEventStore(db)

	for _, ensure := range []func(context.Context) error{
		logStore.EnsureIndexes, userStore.EnsureIndexes, eventStore.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	router := honeycommb.NewRouter(userStore, eventStore, logger)
	verifier := signature.NewVerifier(cfg.WebhookSecret)
	ingestService := webhook.NewService(logStore, router, verifier, cfg.HandlerTimeout, logger)
	reporter := honeycommb.NewService(userStore, eventStore)

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Fall back to an in-process lease when Redis is unreachable, so a
	// single-instance deployment still sweeps
	var locker retry.Locker = retry.NewRedisLocker(redisClient)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable, using in-process sweep lease")
		locker = retry.NewLocalLocker()
	}

	scheduler := retry.NewScheduler(logStore, router, locker, retry.Config{
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		BatchSize:      cfg.RetryBatchSize,
		SweepInterval:  cfg.SweepInterval,
		RetentionDays:  cfg.RetentionDays,
		HandlerTimeout: cfg.HandlerTimeout,
	}, logger)
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	collector := metrics.NewStoreCollector(logStore, userStore, eventStore, cfg.MaxRetries)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		return err
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ingestService, reporter, scheduler, exporter.ServeHTTP())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return <-errShutdown
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	default:
		errShutdown <- fmt.Errorf("forcing closing the server")
	}
}
