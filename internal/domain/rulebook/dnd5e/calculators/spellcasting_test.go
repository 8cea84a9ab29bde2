package calculators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e/calculators"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

func docWithClasses(classes ...character.ClassLevel) *character.Document {
	doc := character.NewDocument()
	doc.Classes = classes
	doc.Normalize(nil)
	return doc
}

func TestSpellcastingAggregator_SlotTable(t *testing.T) {
	tests := []struct {
		name         string
		classes      []character.ClassLevel
		casterLevel  int
		slots        [9]int
		pactSlots    int
		pactSlotLvl  int
		maxCantrips  int
		maxSpells    int
		expectedAttr shared.Attribute
	}{
		{
			name:         "level 5 wizard",
			classes:      []character.ClassLevel{{Name: "Wizard", Level: 5}},
			casterLevel:  5,
			slots:        [9]int{4, 3, 2},
			maxCantrips:  4,
			maxSpells:    5,
			expectedAttr: shared.AttributeIntelligence,
		},
		{
			name:         "level 3 warlock",
			classes:      []character.ClassLevel{{Name: "Warlock", Level: 3}},
			slots:        [9]int{0, 2},
			pactSlots:    2,
			pactSlotLvl:  2,
			maxCantrips:  2,
			maxSpells:    4,
			expectedAttr: shared.AttributeCharisma,
		},
		{
			name:         "paladin and sorcerer share the table",
			classes:      []character.ClassLevel{{Name: "Paladín", Level: 5}, {Name: "hechicero", Level: 3}},
			casterLevel:  5,
			slots:        [9]int{4, 3, 2},
			maxCantrips:  4,
			maxSpells:    5 + 4,
			expectedAttr: shared.AttributeCharisma,
		},
		{
			name:         "warlock pact slots stack on normal slots",
			classes:      []character.ClassLevel{{Name: "Cleric", Level: 3}, {Name: "Brujo", Level: 5}},
			casterLevel:  3,
			slots:        [9]int{4, 2, 2},
			pactSlots:    2,
			pactSlotLvl:  3,
			maxCantrips:  3 + 3,
			maxSpells:    3 + 6,
			expectedAttr: shared.AttributeCharisma,
		},
		{
			name:        "fighter and unknown classes contribute nothing",
			classes:     []character.ClassLevel{{Name: "Fighter", Level: 7}, {Name: "Gunslinger", Level: 3}},
			casterLevel: 0,
		},
		{
			name:         "third casters round down",
			classes:      []character.ClassLevel{{Name: "Eldritch Knight", Level: 7}, {Name: "Ranger", Level: 5}},
			casterLevel:  4,
			slots:        [9]int{4, 3},
			maxCantrips:  3,
			maxSpells:    8 + 6,
			expectedAttr: shared.AttributeIntelligence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := calculators.NewSpellcastingAggregator().Aggregate(docWithClasses(tt.classes...))

			assert.Equal(t, tt.casterLevel, summary.AggregateCasterLevel)
			assert.Equal(t, tt.slots, summary.SlotsPerLevel)
			assert.Equal(t, tt.pactSlots, summary.PactSlots)
			assert.Equal(t, tt.pactSlotLvl, summary.PactSlotLevel)
			assert.Equal(t, tt.maxCantrips, summary.MaxCantrips)
			assert.Equal(t, tt.maxSpells, summary.MaxPreparedOrKnown)
			assert.Equal(t, tt.expectedAttr, summary.Ability)
		})
	}
}

func TestSpellcastingAggregator_PreparedUsesAbilityModifier(t *testing.T) {
	doc := docWithClasses(character.ClassLevel{Name: "Cleric", Level: 1})
	doc.Abilities.Wisdom = 16

	summary := calculators.NewSpellcastingAggregator().Aggregate(doc)
	assert.Equal(t, 4, summary.MaxPreparedOrKnown)

	doc.Abilities.Wisdom = 3
	summary = calculators.NewSpellcastingAggregator().Aggregate(doc)
	assert.Equal(t, 1, summary.MaxPreparedOrKnown)
}

func TestSpellcastingAggregator_CurrentUsage(t *testing.T) {
	doc := docWithClasses(character.ClassLevel{Name: "Sorcerer", Level: 1})
	doc.Abilities.Charisma = 16
	doc.Spellcasting.SpellsByLevel[0] = []character.Spell{
		{ID: "c1", Name: "Fire Bolt", Prepared: true},
		{ID: "c2", Name: "Light", Prepared: true},
		{ID: "c3", Name: "Mage Hand", Prepared: true},
		{ID: "c4", Name: "Prestidigitation", Prepared: true},
		{ID: "c5", Name: "Shocking Grasp", Prepared: true},
	}
	doc.Spellcasting.SpellsByLevel[1] = []character.Spell{
		{ID: "s1", Name: "Shield", Prepared: true},
		{ID: "s2", Name: "Magic Missile", Prepared: false},
	}

	summary := calculators.NewSpellcastingAggregator().Aggregate(doc)

	assert.Equal(t, 5, summary.CurrentCantrips)
	assert.Equal(t, 1, summary.CurrentPrepared)
	assert.True(t, summary.CantripsOverCap)
	assert.False(t, summary.PreparedOverCap)
	assert.Equal(t, [9]int{2}, summary.SlotsPerLevel)
	assert.Equal(t, 13, summary.SaveDC)
	assert.Equal(t, 5, summary.AttackBonus)
}

func TestSpellcastingAggregator_ExplicitAbilityWins(t *testing.T) {
	doc := docWithClasses(character.ClassLevel{Name: "Wizard", Level: 2})
	doc.Abilities.Wisdom = 14
	doc.Spellcasting.Ability = shared.AttributeWisdom

	summary := calculators.NewSpellcastingAggregator().Aggregate(doc)

	assert.Equal(t, shared.AttributeWisdom, summary.Ability)
	assert.Equal(t, 12, summary.SaveDC)
}

func TestSpellcastingAggregator_ClampsPastTwenty(t *testing.T) {
	doc := docWithClasses(character.ClassLevel{Name: "Wizard", Level: 20}, character.ClassLevel{Name: "Cleric", Level: 20})

	summary := calculators.NewSpellcastingAggregator().Aggregate(doc)

	assert.Equal(t, 40, summary.AggregateCasterLevel)
	assert.Equal(t, [9]int{4, 3, 3, 3, 3, 2, 2, 1, 1}, summary.SlotsPerLevel)
}
