package engine

import (
	"log"
	"maps"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e/calculators"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

type engine struct {
	stats         *calculators.DerivedStatsCalculator
	spellcasting  *calculators.SpellcastingAggregator
	uuidGenerator uuid.Generator
}

type Config struct {
	// UUIDGenerator issues ids for imported items and spells
	UUIDGenerator uuid.Generator
}

func New(cfg *Config) Engine {
	if cfg == nil {
		panic("engine config cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &engine{
		stats:         calculators.NewDerivedStatsCalculator(),
		spellcasting:  calculators.NewSpellcastingAggregator(),
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (e *engine) DeriveStats(doc *character.Document) *calculators.DerivedStats {
	return e.stats.Calculate(doc)
}

func (e *engine) AggregateSpellcasting(doc *character.Document) *calculators.SpellcastingSummary {
	return e.spellcasting.Aggregate(doc)
}

func (e *engine) ImportClass(input *ImportClassInput) (*CommandOutput, error) {
	if input == nil || input.Document == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}
	if err := input.Definition.Validate(); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid class definition")
	}

	return e.mutate(input.Document, func(doc *character.Document) error {
		return doc.ImportClass(input.Definition)
	})
}

func (e *engine) AddClass(input *ImportClassInput) (*CommandOutput, error) {
	if input == nil || input.Document == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}
	if err := input.Definition.Validate(); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid class definition")
	}

	return e.mutate(input.Document, func(doc *character.Document) error {
		return doc.AddClass(input.Definition)
	})
}

func (e *engine) LevelUp(input *LevelUpInput) (*CommandOutput, error) {
	if input == nil || input.Document == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}

	return e.mutate(input.Document, func(doc *character.Document) error {
		return doc.LevelUp(input.ClassName)
	})
}

func (e *engine) ResolveSkillPrompts(doc *character.Document) (*CommandOutput, error) {
	if doc == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}

	return e.mutate(doc, func(doc *character.Document) error {
		doc.ResolveSkillPrompts()
		return nil
	})
}

// Apply runs the updates in order. The first failing update aborts the batch:
// a rejection is reported on the output, malformed input is returned as an
// error. The skill prompt queue is consulted once if the skill set changed.
func (e *engine) Apply(input *ApplyInput) (*CommandOutput, error) {
	if input == nil || input.Document == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}

	return e.mutate(input.Document, func(doc *character.Document) error {
		before := maps.Clone(doc.SkillProficiencies)

		updated, err := character.ApplyAll(doc, input.Updates...)
		if err != nil {
			return err
		}
		*doc = *updated

		if !maps.Equal(before, doc.SkillProficiencies) {
			doc.ResolveSkillPrompts()
		}
		return nil
	})
}

func (e *engine) ImportItem(input *ImportItemInput) (*CommandOutput, error) {
	if input == nil || input.Document == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}
	if err := input.Item.Validate(); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid item")
	}

	id := input.ItemID
	if id == "" {
		id = e.uuidGenerator.New()
	}
	item := input.Item.ToItem(id)
	if input.Equip {
		item.Equipped = true
	}

	return e.mutate(input.Document, func(doc *character.Document) error {
		return doc.AddItem(item)
	})
}

func (e *engine) ImportSpell(input *ImportSpellInput) (*CommandOutput, error) {
	if input == nil || input.Document == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}
	if err := input.Spell.Validate(); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid spell")
	}

	id := input.SpellID
	if id == "" {
		id = e.uuidGenerator.New()
	}
	spell := input.Spell.ToSpell(id)

	return e.mutate(input.Document, func(doc *character.Document) error {
		return doc.AddSpell(input.Spell.Level, spell)
	})
}

func (e *engine) Normalize(doc *character.Document) (*CommandOutput, error) {
	if doc == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}

	return e.mutate(doc, func(*character.Document) error { return nil })
}

// mutate runs fn on a clone. A rejection returns an untouched clone of the
// input; any other error is passed back. On success the clone is normalized
// and its stored spellcasting numbers are refreshed.
func (e *engine) mutate(input *character.Document, fn func(doc *character.Document) error) (*CommandOutput, error) {
	doc := input.Clone()

	if err := fn(doc); err != nil {
		if !dnderr.IsRejected(err) {
			return nil, err
		}
		log.Printf("Rejected change to character %s: %v", input.ID, err)
		return e.output(input.Clone(), err), nil
	}

	doc.Normalize(e.uuidGenerator)
	e.syncSpellcasting(doc)

	return e.output(doc, nil), nil
}

// syncSpellcasting copies slot totals, save DC and attack bonus from the
// aggregate onto the document. Used slots are clamped to the new totals.
func (e *engine) syncSpellcasting(doc *character.Document) {
	summary := e.spellcasting.Aggregate(doc)

	for i := range doc.Spellcasting.Slots {
		slot := &doc.Spellcasting.Slots[i]
		slot.Total = summary.SlotsPerLevel[i]
		slot.Used = min(slot.Used, slot.Total)
	}
	doc.Spellcasting.SaveDC = summary.SaveDC
	doc.Spellcasting.AttackBonus = summary.AttackBonus
}

func (e *engine) output(doc *character.Document, rejection error) *CommandOutput {
	out := &CommandOutput{
		Document:     doc,
		Stats:        e.stats.Calculate(doc),
		Spellcasting: e.spellcasting.Aggregate(doc),
	}
	if rejection != nil {
		out.Rejected = true
		out.Reason = rejection.Error()
	}
	return out
}
