package characters

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

// CharacterData is the stored wrapper around the versioned document blob
type CharacterData struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func validateForWrite(doc *character.Document) error {
	if doc == nil {
		return dnderr.InvalidArgument("character document cannot be nil")
	}
	if strings.TrimSpace(doc.ID) == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if strings.TrimSpace(doc.OwnerID) == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}
	return nil
}

func toCharacterData(doc *character.Document, createdAt, updatedAt time.Time) (*CharacterData, error) {
	blob, err := character.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &CharacterData{
		ID:        doc.ID,
		OwnerID:   doc.OwnerID,
		Document:  blob,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// decodeCharacterData reads a stored value. Values written before the wrapper
// existed hold the document itself and are read as such.
func decodeCharacterData(id string, raw []byte) (*CharacterData, error) {
	var data CharacterData
	if err := json.Unmarshal(raw, &data); err != nil || len(data.Document) == 0 {
		return &CharacterData{ID: id, Document: raw}, nil
	}
	return &data, nil
}

// toRecord decodes the document through the tolerant codec. The stored id and
// owner win over whatever the blob says.
func toRecord(data *CharacterData, ids uuid.Generator) (*Record, error) {
	result, err := character.Unmarshal(data.Document, ids)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to decode character %s", data.ID).
			WithMeta("character_id", data.ID)
	}

	doc := result.Document
	if data.ID != "" {
		doc.ID = data.ID
	}
	if data.OwnerID != "" {
		doc.OwnerID = data.OwnerID
	}

	return &Record{
		Document:  doc,
		Version:   result.Version,
		Repaired:  result.Repaired,
		Skipped:   result.Skipped,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func notFound(id string) error {
	return dnderr.NotFoundf("character with ID '%s' not found", id).
		WithMeta("character_id", id)
}

func alreadyExists(id string) error {
	return dnderr.AlreadyExistsf("character with ID '%s' already exists", id).
		WithMeta("character_id", id)
}
