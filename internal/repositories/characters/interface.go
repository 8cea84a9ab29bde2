package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
)

// Record is a stored character document plus what the load had to repair
type Record struct {
	Document  *character.Document
	Version   int
	Repaired  bool
	Skipped   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character document
	Create(ctx context.Context, doc *character.Document) error

	// Get loads a document by ID, repairing corrupted fields on the way
	Get(ctx context.Context, id string) (*Record, error)

	// ListByOwner returns every document of an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*Record, error)

	// Update replaces a stored document
	Update(ctx context.Context, doc *character.Document) error

	// Delete removes a document
	Delete(ctx context.Context, id string) error
}
