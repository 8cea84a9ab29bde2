package calculators

import (
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

// SpellSaveDCBase is the flat part of a spell save DC
const SpellSaveDCBase = 8

// SpellcastingSummary folds every held class into one set of limits.
// SlotsPerLevel index 0 is spell level 1.
type SpellcastingSummary struct {
	SlotsPerLevel        [9]int `json:"slotsPerLevel"`
	MaxPreparedOrKnown   int    `json:"maxPreparedOrKnown"`
	MaxCantrips          int    `json:"maxCantrips"`
	CurrentPrepared      int    `json:"currentPrepared"`
	CurrentCantrips      int    `json:"currentCantrips"`
	AggregateCasterLevel int    `json:"aggregateCasterLevel"`

	// PactSlots are already counted in SlotsPerLevel at PactSlotLevel
	PactSlots     int `json:"pactSlots"`
	PactSlotLevel int `json:"pactSlotLevel"`

	PreparedOverCap bool `json:"preparedOverCap"`
	CantripsOverCap bool `json:"cantripsOverCap"`

	Ability     shared.Attribute `json:"ability"`
	SaveDC      int              `json:"saveDC"`
	AttackBonus int              `json:"attackBonus"`
}

// SpellcastingAggregator derives slots and spell limits from the class list
type SpellcastingAggregator struct{}

func NewSpellcastingAggregator() *SpellcastingAggregator {
	return &SpellcastingAggregator{}
}

// Aggregate never fails. Class names without a casting rule contribute nothing.
func (a *SpellcastingAggregator) Aggregate(doc *character.Document) *SpellcastingSummary {
	if doc == nil {
		doc = character.NewDocument()
	}

	summary := &SpellcastingSummary{}

	var castingAbility shared.Attribute
	castingLevel := 0
	warlockLevel := 0

	for _, class := range doc.Classes {
		rule, ok := rulebook.CastingRuleFor(class.Name)
		if !ok || !rule.IsCaster() || class.Level < 1 {
			continue
		}

		summary.MaxCantrips += rule.Cantrips(class.Level)
		summary.MaxPreparedOrKnown += rule.Spells(class.Level, doc.Modifier(rule.Ability))
		summary.AggregateCasterLevel += rule.CasterLevel(class.Level)

		if rule.Caster == rulebook.CasterWarlock {
			warlockLevel += class.Level
		}
		if class.Level > castingLevel {
			castingLevel = class.Level
			castingAbility = rule.Ability
		}
	}

	summary.SlotsPerLevel = rulebook.SpellSlots(summary.AggregateCasterLevel)

	if warlockLevel > 0 {
		summary.PactSlots = rulebook.PactSlots(warlockLevel)
		summary.PactSlotLevel = rulebook.PactSlotLevel(warlockLevel)
		summary.SlotsPerLevel[summary.PactSlotLevel-1] += summary.PactSlots
	}

	for lvl, spells := range doc.Spellcasting.SpellsByLevel {
		for _, spell := range spells {
			if !spell.Prepared {
				continue
			}
			if lvl == 0 {
				summary.CurrentCantrips++
			} else {
				summary.CurrentPrepared++
			}
		}
	}
	summary.PreparedOverCap = summary.CurrentPrepared > summary.MaxPreparedOrKnown
	summary.CantripsOverCap = summary.CurrentCantrips > summary.MaxCantrips

	if attr, ok := shared.ParseAttribute(string(doc.Spellcasting.Ability)); ok {
		castingAbility = attr
	}
	if castingAbility != shared.AttributeNone {
		mod := doc.Modifier(castingAbility)
		summary.Ability = castingAbility
		summary.SaveDC = SpellSaveDCBase + doc.ProficiencyBonus + mod
		summary.AttackBonus = doc.ProficiencyBonus + mod
	}

	return summary
}
