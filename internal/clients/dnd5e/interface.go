package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
)

// Client resolves reference keys into the import shapes the engine consumes.
// The catalog package implements it too.
type Client interface {
	GetClassDefinition(ctx context.Context, key string) (*character.ClassDefinition, error)
	GetItem(ctx context.Context, key string) (*character.ItemImport, error)
	GetSpell(ctx context.Context, key string) (*character.SpellImport, error)
}
