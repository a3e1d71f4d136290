package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dxbevents/honeycommb-bridge/config"
	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	honeycommbmongo "github.com/dxbevents/honeycommb-bridge/honeycommb/mongo"
	"github.com/dxbevents/honeycommb-bridge/internal/mongodb"
	"github.com/dxbevents/honeycommb-bridge/retry"
	webhookmongo "github.com/dxbevents/honeycommb-bridge/webhook/mongo"
	"github.com/rs/zerolog"
)

/* One-shot admin tool for the retry pipeline. Runs a single sweep by
 * default; -cleanup and -stats select the other maintenance actions.
 * Useful from a crontab or for draining the backlog by hand
 */

func main() {
	cleanup := flag.Bool("cleanup", false, "remove processed entries past retention instead of sweeping")
	stats := flag.Bool("stats", false, "print retry statistics instead of sweeping")
	flag.Parse()

	if err := run(*cleanup, *stats); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cleanup, stats bool) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "honeycommb-sweep").Logger()
	ctx := context.Background()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return err
	}

	logStore := webhookmongo.NewLogStore(db)
	defer logStore.Close(ctx)
	userStore := honeycommbmongo.NewUserStore(db)
	eventStore := honeycommbmongo.NewEventStore(db)

	router := honeycommb.NewRouter(userStore, eventStore, logger)
	scheduler := retry.NewScheduler(logStore, router, retry.NewLocalLocker(), retry.Config{
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		BatchSize:      cfg.RetryBatchSize,
		SweepInterval:  cfg.SweepInterval,
		RetentionDays:  cfg.RetentionDays,
		HandlerTimeout: cfg.HandlerTimeout,
	}, logger)

	switch {
	case stats:
		retryStats, err := scheduler.Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(retryStats)
	case cleanup:
		deleted, err := scheduler.Cleanup(ctx)
		if err != nil {
			return err
		}
		return printJSON(map[string]int64{"deleted": deleted})
	default:
		report, err := scheduler.Sweep(ctx)
		if err != nil {
			return err
		}
		return printJSON(report)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
