// Package main is the charsheet command line
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charsheet/internal/catalog"
	"github.com/KirkDiggler/charsheet/internal/clients/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/config"
	"github.com/KirkDiggler/charsheet/internal/repositories/characters"
	characterService "github.com/KirkDiggler/charsheet/internal/services/character"
)

var (
	cfg *config.Config

	// sourceFlag overrides the configured reference source
	sourceFlag string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "charsheet",
	Short: "Tabletop character sheet rules engine",
	Long:  `charsheet stores character sheets and keeps their derived numbers in line with the 5e rules.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found")
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if sourceFlag != "" {
			loaded.Catalog.Source = sourceFlag
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Reference source: api or catalog (default from config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Command timeout")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(importClassCmd)
	rootCmd.AddCommand(levelUpCmd)
	rootCmd.AddCommand(addItemCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(addSpellCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(deleteCmd)
}

// newService wires storage and the reference source from config. The
// returned cleanup closes whatever storage was opened.
func newService(ctx context.Context) (characterService.Service, func(), error) {
	repo, cleanup, err := newRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	reference, err := newReference()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository: repo,
		Reference:  reference,
	})
	return svc, cleanup, nil
}

func newRepository(ctx context.Context) (characters.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}
		return characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client}), cleanup, nil

	case config.StorageSQLite:
		repo, err := characters.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := repo.Close(); err != nil {
				log.Printf("Error closing SQLite database: %v", err)
			}
		}
		return repo, cleanup, nil

	default:
		log.Println("Using in-memory storage, characters are lost when the command exits")
		return characters.NewInMemoryRepository(), func() {}, nil
	}
}

func newReference() (dnd5e.Client, error) {
	if cfg.Catalog.Source == config.SourceCatalog {
		c, err := catalog.Load(cfg.Catalog.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	return dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Timeout: cfg.DND5E.Timeout},
		BaseURL:    cfg.DND5E.BaseURL,
		CacheTTL:   cfg.DND5E.CacheTTL,
	})
}

// withService runs fn with a wired service and a bounded context
func withService(fn func(ctx context.Context, svc characterService.Service) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc, cleanup, err := newService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, svc)
}
