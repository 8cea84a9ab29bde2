package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

func TestNewDocument_Defaults(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, []ClassLevel{{Name: "", Level: 1}}, doc.Classes)
	assert.Equal(t, 1, doc.TotalLevel())
	assert.Equal(t, 2, doc.ProficiencyBonus)
	assert.Equal(t, 1, doc.Combat.HitDiceTotal)
	assert.Equal(t, DefaultSpeed, doc.Combat.Speed)
	for _, attr := range shared.Attributes {
		assert.Equal(t, DefaultAbilityScore, doc.Abilities.Get(attr), attr)
		assert.Equal(t, 0, doc.Modifier(attr), attr)
	}
	assert.Equal(t, "0", doc.Currency.GP)
	assert.NotNil(t, doc.Inventory)
	assert.NotNil(t, doc.SkillPrompts)
}

func TestDocument_ClassLookupIgnoresCaseAndAccents(t *testing.T) {
	doc := NewDocument()
	doc.Classes = []ClassLevel{{Name: "Clérigo", Level: 3}, {Name: "Rogue", Level: 2}}

	assert.True(t, doc.HasClass("clerigo"))
	assert.True(t, doc.HasClass("ROGUE"))
	assert.False(t, doc.HasClass(""))
	assert.False(t, doc.HasClass("wizard"))
	assert.Equal(t, 3, doc.ClassLevelOf("CLERIGO"))
	assert.Equal(t, 0, doc.ClassLevelOf("wizard"))
	assert.Equal(t, 5, doc.TotalLevel())
}

func TestDocument_CloneSharesNoMemory(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.ImportClass(fighterDefinition()))
	require.NoError(t, doc.AddItem(longsword("sword")))
	require.NoError(t, doc.AddSpell(1, Spell{ID: "spell-1", Name: "Shield"}))

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.Classes[0].Level = 9
	clone.Inventory[0].Weapon.Properties[0] = "finesse"
	clone.SavingThrowProficiencies[shared.AttributeCharisma] = true
	clone.ClassProgression["Fighter"][1][0] = "Changed"
	clone.Spellcasting.SpellsByLevel[1][0].Name = "Changed"
	clone.SkillPrompts[0].AllowedOptions[0] = shared.SkillArcana

	assert.Equal(t, 1, doc.Classes[0].Level)
	assert.Equal(t, "versatile", doc.Inventory[0].Weapon.Properties[0])
	assert.False(t, doc.SavingThrowProficiencies[shared.AttributeCharisma])
	assert.Equal(t, "Fighting Style", doc.ClassProgression["Fighter"][1][0])
	assert.Equal(t, "Shield", doc.Spellcasting.SpellsByLevel[1][0].Name)
	assert.Equal(t, shared.SkillAthletics, doc.SkillPrompts[0].AllowedOptions[0])
}

func TestAbilities_String(t *testing.T) {
	a := NewAbilities()
	a.Set(shared.AttributeStrength, 14)
	a.Set(shared.AttributeDexterity, 7)

	assert.Equal(t, "14 (+2)", a.String(shared.AttributeStrength))
	assert.Equal(t, "7 (-2)", a.String(shared.AttributeDexterity))
	assert.False(t, a.Set(shared.AttributeNone, 12))
}

func TestCurrency(t *testing.T) {
	c := Currency{CP: "50", SP: "20", EP: "", GP: "25", PP: "abc"}

	assert.Equal(t, 95.0, c.Coins())
	assert.InDelta(t, 1.9, c.Weight(), 0.0001)
	assert.InDelta(t, 27.5, c.GoldValue(), 0.0001)
}

func TestNormalize_RepairsInvariants(t *testing.T) {
	doc := &Document{
		Classes: []ClassLevel{
			{Name: "", Level: 1},
			{Name: "Fighter", Level: 2},
			{Name: "fighter", Level: 4},
			{Name: "Rogue", Level: 0},
		},
		ClassFeatures: []ClassFeature{
			{Name: "Second Wind", SourceClass: "Fighter"},
			{Name: "second wind", SourceClass: "FIGHTER"},
		},
		Inventory: []Item{
			{Name: "Rope", Quantity: -3},
			chainMail("mail"),
			leatherArmor("leather"),
		},
		Proficiencies: Proficiencies{Armor: []string{"Light", "light", " "}},
	}
	doc.Inventory[1].Equipped = true
	doc.Inventory[2].Equipped = true
	doc.Inventory[0].Equipped = true

	doc.Normalize(&uuid.SequenceGenerator{Prefix: "gen"})

	assert.Equal(t, []ClassLevel{{Name: "Fighter", Level: 4}, {Name: "Rogue", Level: 1}}, doc.Classes)
	require.Len(t, doc.ClassFeatures, 1)
	assert.Equal(t, "fighter-secondwind", doc.ClassFeatures[0].ID)
	assert.Equal(t, "gen-1", doc.Inventory[0].ID)
	assert.Equal(t, shared.ItemTypeMisc, doc.Inventory[0].Type)
	assert.Equal(t, 0, doc.Inventory[0].Quantity)
	assert.False(t, doc.Inventory[0].Equipped)
	assert.True(t, doc.Inventory[1].Equipped)
	assert.False(t, doc.Inventory[2].Equipped)
	assert.Equal(t, []string{"Light"}, doc.Proficiencies.Armor)
	assert.Equal(t, 3, doc.ProficiencyBonus)
	assert.Equal(t, 5, doc.Combat.HitDiceTotal)
	assert.NotNil(t, doc.Feats)
	assert.NotNil(t, doc.Notes)
}
