package character

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/charsheet/internal/clients/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e/calculators"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/repositories/characters"
	"github.com/KirkDiggler/charsheet/internal/services/engine"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service loads characters, runs engine commands on them and saves the result
type Service interface {
	// CreateCharacter stores a fresh default document
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CharacterOutput, error)

	// GetCharacter loads a document with its derived views
	GetCharacter(ctx context.Context, characterID string) (*CharacterOutput, error)

	// ListCharacters lists all characters of an owner
	ListCharacters(ctx context.Context, ownerID string) ([]*CharacterOutput, error)

	// ApplyUpdates runs typed edits as one batch
	ApplyUpdates(ctx context.Context, input *ApplyUpdatesInput) (*CharacterOutput, error)

	// ImportClass fetches a class from the reference source and merges it.
	// A character that already holds a class gets it as a multiclass.
	ImportClass(ctx context.Context, input *ImportClassInput) (*CharacterOutput, error)

	LevelUp(ctx context.Context, input *LevelUpInput) (*CharacterOutput, error)

	// ImportSpell fetches a spell and files it under its level
	ImportSpell(ctx context.Context, input *ImportSpellInput) (*CharacterOutput, error)

	// ImportEquipment fetches an item and adds it to the inventory
	ImportEquipment(ctx context.Context, input *ImportEquipmentInput) (*CharacterOutput, error)

	// RepairCharacter re-normalizes a stored document and saves it back
	RepairCharacter(ctx context.Context, characterID string) (*CharacterOutput, error)

	DeleteCharacter(ctx context.Context, characterID string) error
}

type CreateCharacterInput struct {
	OwnerID string
	Name    string
}

type ApplyUpdatesInput struct {
	CharacterID string
	Updates     []character.Update
}

type ImportClassInput struct {
	CharacterID string
	ClassKey    string
}

type LevelUpInput struct {
	CharacterID string
	ClassName   string
}

type ImportSpellInput struct {
	CharacterID string
	SpellKey    string
}

type ImportEquipmentInput struct {
	CharacterID  string
	EquipmentKey string
	Equip        bool
}

// CharacterOutput is a document with its derived views. Rejected commands
// are reported here and are never saved.
type CharacterOutput struct {
	Document     *character.Document
	Stats        *calculators.DerivedStats
	Spellcasting *calculators.SpellcastingSummary
	// Repaired is set when loading had to fix or drop stored fields
	Repaired bool
	Skipped  []string
	Rejected bool
	Reason   string
}

// service implements the Service interface
type service struct {
	repository    Repository
	reference     dnd5e.Client
	engine        engine.Engine
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository   // Required
	Reference  dnd5e.Client // Required, the api client or the local catalog
	Engine     engine.Engine
	// UUIDGenerator issues character ids
	UUIDGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Reference == nil {
		panic("reference source is required")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Engine == nil {
		cfg.Engine = engine.New(&engine.Config{UUIDGenerator: cfg.UUIDGenerator})
	}

	return &service{
		repository:    cfg.Repository,
		reference:     cfg.Reference,
		engine:        cfg.Engine,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// CreateCharacter creates a new character
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid character creation input").
			WithMeta("operation", "CreateCharacter")
	}

	doc := character.NewDocument()
	doc.ID = s.uuidGenerator.New()
	doc.OwnerID = strings.TrimSpace(input.OwnerID)
	doc.Name = strings.TrimSpace(input.Name)

	out, err := s.engine.Normalize(doc)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to normalize new character")
	}

	if err := s.repository.Create(ctx, out.Document); err != nil {
		return nil, dnderr.Wrap(err, "failed to save character").
			WithMeta("character_id", doc.ID).
			WithMeta("character_name", doc.Name).
			WithMeta("owner_id", doc.OwnerID)
	}

	log.Printf("Created character %s (%s) for owner %s", doc.Name, doc.ID, doc.OwnerID)
	return toOutput(out), nil
}

// GetCharacter retrieves a character by ID
func (s *service) GetCharacter(ctx context.Context, characterID string) (*CharacterOutput, error) {
	record, err := s.load(ctx, characterID)
	if err != nil {
		return nil, err
	}

	return s.view(record), nil
}

// ListCharacters lists all characters for an owner
func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*CharacterOutput, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	records, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list characters for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}

	outputs := make([]*CharacterOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, s.view(record))
	}
	return outputs, nil
}

func (s *service) ApplyUpdates(ctx context.Context, input *ApplyUpdatesInput) (*CharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid update input").
			WithMeta("operation", "ApplyUpdates")
	}

	return s.command(ctx, input.CharacterID, func(doc *character.Document) (*engine.CommandOutput, error) {
		return s.engine.Apply(&engine.ApplyInput{Document: doc, Updates: input.Updates})
	})
}

func (s *service) ImportClass(ctx context.Context, input *ImportClassInput) (*CharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid class import input").
			WithMeta("operation", "ImportClass")
	}

	record, err := s.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	def, err := s.reference.GetClassDefinition(ctx, input.ClassKey)
	if err != nil {
		return nil, referenceError(err, "class", input.ClassKey)
	}

	classInput := &engine.ImportClassInput{Document: record.Document, Definition: def}
	var out *engine.CommandOutput
	if hasRealClass(record.Document) {
		out, err = s.engine.AddClass(classInput)
	} else {
		out, err = s.engine.ImportClass(classInput)
	}
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to import class '%s'", input.ClassKey).
			WithMeta("class_key", input.ClassKey)
	}

	return s.save(ctx, out)
}

func (s *service) LevelUp(ctx context.Context, input *LevelUpInput) (*CharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid level up input").
			WithMeta("operation", "LevelUp")
	}

	return s.command(ctx, input.CharacterID, func(doc *character.Document) (*engine.CommandOutput, error) {
		return s.engine.LevelUp(&engine.LevelUpInput{Document: doc, ClassName: input.ClassName})
	})
}

func (s *service) ImportSpell(ctx context.Context, input *ImportSpellInput) (*CharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid spell import input").
			WithMeta("operation", "ImportSpell")
	}

	record, err := s.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	spell, err := s.reference.GetSpell(ctx, input.SpellKey)
	if err != nil {
		return nil, referenceError(err, "spell", input.SpellKey)
	}

	out, err := s.engine.ImportSpell(&engine.ImportSpellInput{Document: record.Document, Spell: spell})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to import spell '%s'", input.SpellKey).
			WithMeta("spell_key", input.SpellKey)
	}

	return s.save(ctx, out)
}

func (s *service) ImportEquipment(ctx context.Context, input *ImportEquipmentInput) (*CharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid equipment import input").
			WithMeta("operation", "ImportEquipment")
	}

	record, err := s.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	item, err := s.reference.GetItem(ctx, input.EquipmentKey)
	if err != nil {
		return nil, referenceError(err, "equipment", input.EquipmentKey)
	}

	out, err := s.engine.ImportItem(&engine.ImportItemInput{
		Document: record.Document,
		Item:     item,
		Equip:    input.Equip,
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to import equipment '%s'", input.EquipmentKey).
			WithMeta("equipment_key", input.EquipmentKey)
	}

	return s.save(ctx, out)
}

func (s *service) DeleteCharacter(ctx context.Context, characterID string) error {
	if strings.TrimSpace(characterID) == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	if err := s.repository.Delete(ctx, characterID); err != nil {
		return dnderr.Wrapf(err, "failed to delete character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return nil
}

// command loads a character, runs fn on it and saves the result unless the
// engine rejected the change.
func (s *service) command(ctx context.Context, characterID string, fn func(doc *character.Document) (*engine.CommandOutput, error)) (*CharacterOutput, error) {
	record, err := s.load(ctx, characterID)
	if err != nil {
		return nil, err
	}

	out, err := fn(record.Document)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to change character '%s'", characterID).
			WithMeta("character_id", characterID)
	}

	return s.save(ctx, out)
}

func (s *service) load(ctx context.Context, characterID string) (*characters.Record, error) {
	if strings.TrimSpace(characterID) == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	record, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return record, nil
}

func (s *service) save(ctx context.Context, out *engine.CommandOutput) (*CharacterOutput, error) {
	if out.Rejected {
		return toOutput(out), nil
	}

	if err := s.repository.Update(ctx, out.Document); err != nil {
		return nil, dnderr.Wrap(err, "failed to save character").
			WithMeta("character_id", out.Document.ID)
	}
	return toOutput(out), nil
}

func (s *service) view(record *characters.Record) *CharacterOutput {
	return &CharacterOutput{
		Document:     record.Document,
		Stats:        s.engine.DeriveStats(record.Document),
		Spellcasting: s.engine.AggregateSpellcasting(record.Document),
		Repaired:     record.Repaired,
		Skipped:      record.Skipped,
	}
}

func toOutput(out *engine.CommandOutput) *CharacterOutput {
	return &CharacterOutput{
		Document:     out.Document,
		Stats:        out.Stats,
		Spellcasting: out.Spellcasting,
		Rejected:     out.Rejected,
		Reason:       out.Reason,
	}
}

// hasRealClass is false for documents still on the unnamed placeholder class
func hasRealClass(doc *character.Document) bool {
	for _, class := range doc.Classes {
		if strings.TrimSpace(class.Name) != "" {
			return true
		}
	}
	return false
}

// referenceError keeps NotFound and turns every other failure of the
// reference source into Unavailable
func referenceError(err error, kind, key string) error {
	if dnderr.IsNotFound(err) {
		return dnderr.Wrapf(err, "%s '%s' not found", kind, key).
			WithMeta(kind+"_key", key)
	}
	return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "reference source failed for "+kind+" '"+key+"'").
		WithMeta(kind+"_key", key)
}
