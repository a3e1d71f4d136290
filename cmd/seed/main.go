package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dxbevents/honeycommb-bridge/config"
	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	honeycommbmongo "github.com/dxbevents/honeycommb-bridge/honeycommb/mongo"
	"github.com/dxbevents/honeycommb-bridge/internal/mongodb"
	"gopkg.in/yaml.v3"
)

/* Seeds the mirror stores from a YAML fixture file, for demo
 * environments and local development without a Honeycommb tenant.
 * Seeding goes through the same upserts the handlers use, so running
 * it twice leaves the mirrors unchanged
 */

type fixtures struct {
	Users []struct {
		ID       int64  `yaml:"id"`
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Username string `yaml:"username"`
		Status   string `yaml:"status"`
	} `yaml:"users"`
	Events []struct {
		ID          int64      `yaml:"id"`
		Title       string     `yaml:"title"`
		Description string     `yaml:"description"`
		Location    string     `yaml:"location"`
		StartDate   *time.Time `yaml:"start_date"`
		EndDate     *time.Time `yaml:"end_date"`
		Status      string     `yaml:"status"`
		RSVPCount   int        `yaml:"rsvp_count"`
	} `yaml:"events"`
}

func main() {
	file := flag.String("file", "seed.yaml", "fixture file to load")
	flag.Parse()

	if err := run(*file); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading fixture file: %w", err)
	}

	var f fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parsing fixture file: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(ctx)

	userStore := honeycommbmongo.NewUserStore(db)
	eventStore := honeycommbmongo.NewEventStore(db)

	for _, ensure := range []func(context.Context) error{
		userStore.EnsureIndexes, eventStore.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	for _, u := range f.Users {
		status := honeycommb.UserStatus(u.Status)
		if status == "" {
			status = honeycommb.UserActive
		}
		err := userStore.Upsert(ctx, honeycommb.User{
			HCUserID:  u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Username:  u.Username,
			Status:    status,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
	}

	for _, e := range f.Events {
		status := honeycommb.EventStatus(e.Status)
		if status == "" {
			status = honeycommb.EventUpcoming
		}
		err := eventStore.Upsert(ctx, honeycommb.Event{
			HCEventID:   e.ID,
			Title:       e.Title,
			Description: e.Description,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Status:      status,
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}
		if e.RSVPCount > 0 {
			if err := eventStore.SetRSVPCount(ctx, e.ID, e.RSVPCount); err != nil {
				return err
			}
		}
	}

	fmt.Printf("seeded %d users and %d events\n", len(f.Users), len(f.Events))
	return nil
}
