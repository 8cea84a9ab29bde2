package characters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development. Documents are kept encoded so callers
// never share memory with the store.
type InMemoryRepository struct {
	mu            sync.RWMutex
	characters    map[string]*CharacterData
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters:    make(map[string]*CharacterData),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, doc *character.Document) error {
	if err := validateForWrite(doc); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[doc.ID]; exists {
		return alreadyExists(doc.ID)
	}

	now := r.now()
	data, err := toCharacterData(doc, now, now)
	if err != nil {
		return dnderr.Wrap(err, "failed to convert character data")
	}
	r.characters[doc.ID] = data

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	data, exists := r.characters[id]
	r.mu.RUnlock()
	if !exists {
		return nil, notFound(id)
	}

	return toRecord(data, r.uuidGenerator)
}

// ListByOwner retrieves all characters for a specific owner, ordered by ID
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Record, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	var owned []*CharacterData
	for _, data := range r.characters {
		if data.OwnerID == ownerID {
			owned = append(owned, data)
		}
	}
	r.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	records := make([]*Record, 0, len(owned))
	for _, data := range owned {
		record, err := toRecord(data, r.uuidGenerator)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(ctx context.Context, doc *character.Document) error {
	if err := validateForWrite(doc); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.characters[doc.ID]
	if !exists {
		return notFound(doc.ID)
	}

	data, err := toCharacterData(doc, existing.CreatedAt, r.now())
	if err != nil {
		return dnderr.Wrap(err, "failed to convert character data")
	}
	r.characters[doc.ID] = data

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return notFound(id)
	}
	delete(r.characters, id)

	return nil
}

// PutRaw stores an arbitrary blob under id, as an older or damaged writer might
// have left it. Used by repair tooling and tests.
func (r *InMemoryRepository) PutRaw(id, ownerID string, blob []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.characters[id] = &CharacterData{
		ID:        id,
		OwnerID:   ownerID,
		Document:  append([]byte(nil), blob...),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
