package engine

import (
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e/calculators"
)

type ImportClassInput struct {
	Document   *character.Document
	Definition *character.ClassDefinition
}

type LevelUpInput struct {
	Document  *character.Document
	ClassName string
}

type ApplyInput struct {
	Document *character.Document
	Updates  []character.Update
}

type ImportItemInput struct {
	Document *character.Document
	Item     *character.ItemImport
	// ItemID is generated when empty
	ItemID string
	// Equip overrides the record's own equipped flag when true
	Equip bool
}

type ImportSpellInput struct {
	Document *character.Document
	Spell    *character.SpellImport
	// SpellID is generated when empty
	SpellID string
}

// CommandOutput is returned by every mutating command. When Rejected is set
// the Document is an unchanged copy of the input and Reason says why.
type CommandOutput struct {
	Document     *character.Document
	Stats        *calculators.DerivedStats
	Spellcasting *calculators.SpellcastingSummary
	Rejected     bool
	Reason       string
}
