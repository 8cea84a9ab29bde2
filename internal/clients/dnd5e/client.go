package dnd5e

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

const (
	DefaultBaseURL  = "https://www.dnd5eapi.co/api/2014/"
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 24 * time.Hour

	// levelFetchLimit bounds concurrent GetClassLevel calls
	levelFetchLimit = 4
)

// api is the part of the dnd5e-api client this package calls
type api interface {
	GetClass(key string) (*apiEntities.Class, error)
	GetClassLevel(key string, level int) (*apiEntities.Level, error)
	GetSpell(key string) (*apiEntities.Spell, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

type client struct {
	client api
}

type Config struct {
	HttpClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	CacheTTL   time.Duration
}

// Validate fills defaults for anything left unset
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.HttpClient == nil {
		cfg.HttpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return nil
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("dnd5e client config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  cfg.HttpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		client: dnd5e.NewCachedClient(base, cfg.CacheTTL),
	}, nil
}

// GetClassDefinition loads the class and its 20 level tables. A level table
// that fails to load is logged and left out of the progression; only the
// class itself and level 1 are required.
func (c *client) GetClassDefinition(ctx context.Context, key string) (*character.ClassDefinition, error) {
	key = toAPIKey(key)
	if key == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	class, err := c.client.GetClass(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get class %s: %w", key, err)
	}
	if class == nil {
		return nil, dnderr.NotFoundf("class %s not found", key).WithMeta("class", key)
	}

	def := apiClassToDefinition(class)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(levelFetchLimit)
	for level := 1; level <= rulebook.MaxLevel; level++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			classLevel, err := c.client.GetClassLevel(key, level)
			if err != nil {
				if level == 1 {
					return fmt.Errorf("failed to get %s level 1: %w", key, err)
				}
				log.Printf("Skipping %s level %d: %v", key, level, err)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			addLevelFeatures(def, class.Name, level, classLevel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return def, nil
}

func (c *client) GetItem(_ context.Context, key string) (*character.ItemImport, error) {
	key = toAPIKey(key)
	if key == "" {
		return nil, dnderr.InvalidArgument("equipment key is required")
	}

	equipment, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment %s: %w", key, err)
	}

	item := apiEquipmentToItemImport(equipment)
	if item == nil {
		return nil, dnderr.NotFoundf("equipment %s not found", key).WithMeta("equipment", key)
	}
	return item, nil
}

func (c *client) GetSpell(_ context.Context, key string) (*character.SpellImport, error) {
	key = toAPIKey(key)
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	spell, err := c.client.GetSpell(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get spell %s: %w", key, err)
	}
	if spell == nil {
		return nil, dnderr.NotFoundf("spell %s not found", key).WithMeta("spell", key)
	}

	return apiSpellToSpellImport(spell), nil
}

// toAPIKey turns "Chain Mail" or "CHAIN_MAIL" into "chain-mail"
func toAPIKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "_", "-")
	return strings.Join(strings.Fields(key), "-")
}
