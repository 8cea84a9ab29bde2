package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// UUIDGenerator fills ids missing from loaded documents
	UUIDGenerator uuid.Generator
	// Now stamps created and updated times, defaults to time.Now in UTC
	Now func() time.Time
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		now:           cfg.Now,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character. SETNX makes the existence check and the
// write a single step; the key is removed again if indexing fails.
func (r *redisRepo) Create(ctx context.Context, doc *character.Document) error {
	if err := validateForWrite(doc); err != nil {
		return err
	}

	now := r.now()
	data, err := toCharacterData(doc, now, now)
	if err != nil {
		return dnderr.Wrap(err, "failed to convert character data")
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal character")
	}

	created, err := r.client.SetNX(ctx, r.key(doc.ID), string(jsonData), 0).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to create character")
	}
	if !created {
		return alreadyExists(doc.ID)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, r.ownerCharactersKey(doc.OwnerID), doc.ID)
		return nil
	})
	if err != nil {
		// Drop the document so no unindexed key is left behind
		if delErr := r.client.Del(ctx, r.key(doc.ID)).Err(); delErr != nil {
			log.Printf("Failed to roll back character %s after index error: %v", doc.ID, delErr)
		}
		return dnderr.Wrap(err, "failed to index character")
	}

	return nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*CharacterData, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character")
	}
	return decodeCharacterData(id, raw)
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}

	record, err := toRecord(data, r.uuidGenerator)
	if err != nil {
		return nil, err
	}
	if record.Repaired {
		log.Printf("Loaded character %s with repairs, skipped fields: %v", id, record.Skipped)
	}
	return record, nil
}

// ListByOwner retrieves all characters for a specific owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*Record, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list character IDs")
	}
	sort.Strings(ids)

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, id)
		if err != nil {
			// Skip characters that can't be loaded
			log.Printf("Skipping character %s for owner %s: %v", id, ownerID, err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Update replaces a stored character, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, doc *character.Document) error {
	if err := validateForWrite(doc); err != nil {
		return err
	}

	existing, err := r.getData(ctx, doc.ID)
	if err != nil {
		return err
	}

	data, err := toCharacterData(doc, existing.CreatedAt, r.now())
	if err != nil {
		return dnderr.Wrap(err, "failed to convert character data")
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal character")
	}

	// The document and its owner index change together
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(doc.ID), string(jsonData), 0)
		if existing.OwnerID != doc.OwnerID {
			if existing.OwnerID != "" {
				pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), doc.ID)
			}
			pipe.SAdd(ctx, r.ownerCharactersKey(doc.OwnerID), doc.ID)
		}
		return nil
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to update character")
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existing, err := r.getData(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key(id))
		if existing.OwnerID != "" {
			pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), id)
		}
		return nil
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to delete character")
	}

	return nil
}
