// Package engine is the command surface of the character rules engine. Every
// command is synchronous, works on a deep copy of its input document and
// returns the new document together with freshly derived views.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=mockengine -source=interface.go

import (
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e/calculators"
)

type Engine interface {
	DeriveStats(doc *character.Document) *calculators.DerivedStats
	AggregateSpellcasting(doc *character.Document) *calculators.SpellcastingSummary

	// ImportClass acquires a class for the first time, primary or not
	ImportClass(input *ImportClassInput) (*CommandOutput, error)
	// AddClass is the multiclass entry point
	AddClass(input *ImportClassInput) (*CommandOutput, error)
	LevelUp(input *LevelUpInput) (*CommandOutput, error)
	ResolveSkillPrompts(doc *character.Document) (*CommandOutput, error)

	// Apply runs typed updates atomically
	Apply(input *ApplyInput) (*CommandOutput, error)
	ImportItem(input *ImportItemInput) (*CommandOutput, error)
	ImportSpell(input *ImportSpellInput) (*CommandOutput, error)

	// Normalize repairs a document and refreshes its derived fields
	Normalize(doc *character.Document) (*CommandOutput, error)
}
