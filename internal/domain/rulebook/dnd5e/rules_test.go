package rulebook_test

import (
	"testing"

	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{14, 2},
		{18, 4},
		{20, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rulebook.AbilityModifier(tt.score), "score %d", tt.score)
	}
}

func TestProficiencyBonus(t *testing.T) {
	// matches 2 + floor((level-1)/4) at every level of the table
	for level := 1; level <= 20; level++ {
		assert.Equal(t, 2+(level-1)/4, rulebook.ProficiencyBonus(level), "level %d", level)
	}
	assert.Equal(t, 2, rulebook.ProficiencyBonus(0))
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		input    string
		expected rulebook.ClassKey
	}{
		{"Wizard", rulebook.ClassWizard},
		{"mago", rulebook.ClassWizard},
		{"Clérigo", rulebook.ClassCleric},
		{"PALADÍN", rulebook.ClassPaladin},
		{"Guardabosques", rulebook.ClassRanger},
		{"Eldritch Knight", rulebook.ClassEldritchKnight},
		{"Brujo", rulebook.ClassWarlock},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := rulebook.ParseClass(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := rulebook.ParseClass("Blood Hunter")
	assert.False(t, ok)
}

func TestCastingRule(t *testing.T) {
	t.Run("prepared caster uses modifier plus level", func(t *testing.T) {
		rule, ok := rulebook.CastingRuleFor("cleric")
		assert.True(t, ok)
		assert.Equal(t, shared.AttributeWisdom, rule.Ability)
		assert.Equal(t, 8, rule.Spells(5, 3))
		assert.Equal(t, 1, rule.Spells(1, -2))
	})

	t.Run("known caster is capped", func(t *testing.T) {
		rule, _ := rulebook.CastingRuleFor("Sorcerer")
		assert.Equal(t, 4, rule.Spells(3, 5))
		assert.Equal(t, rulebook.MaxSpellsKnown, rule.Spells(30, 0))
	})

	t.Run("warlock known spells follow its own table", func(t *testing.T) {
		rule, _ := rulebook.CastingRuleFor("warlock")
		assert.Equal(t, 2, rule.Spells(1, 3))
		assert.Equal(t, 10, rule.Spells(10, 3))
		assert.Equal(t, 15, rule.Spells(20, 3))
	})

	t.Run("cantrips step up at 4 and 10", func(t *testing.T) {
		rule, _ := rulebook.CastingRuleFor("wizard")
		assert.Equal(t, 3, rule.Cantrips(1))
		assert.Equal(t, 4, rule.Cantrips(4))
		assert.Equal(t, 5, rule.Cantrips(10))
	})

	t.Run("classes without cantrips never gain them", func(t *testing.T) {
		rule, _ := rulebook.CastingRuleFor("paladin")
		assert.Equal(t, 0, rule.Cantrips(12))
	})

	t.Run("caster level fractions", func(t *testing.T) {
		full, _ := rulebook.CastingRuleFor("bard")
		half, _ := rulebook.CastingRuleFor("ranger")
		third, _ := rulebook.CastingRuleFor("arcane trickster")
		warlock, _ := rulebook.CastingRuleFor("warlock")
		assert.Equal(t, 7, full.CasterLevel(7))
		assert.Equal(t, 3, half.CasterLevel(7))
		assert.Equal(t, 2, third.CasterLevel(7))
		assert.Equal(t, 0, warlock.CasterLevel(7))
	})

	t.Run("martial classes do not cast", func(t *testing.T) {
		rule, ok := rulebook.CastingRuleFor("Guerrero")
		assert.True(t, ok)
		assert.False(t, rule.IsCaster())
		assert.Equal(t, 0, rule.Spells(10, 4))
	})
}

func TestSpellSlots(t *testing.T) {
	assert.Equal(t, [9]int{}, rulebook.SpellSlots(0))
	assert.Equal(t, [9]int{4, 3, 2, 0, 0, 0, 0, 0, 0}, rulebook.SpellSlots(5))
	assert.Equal(t, [9]int{4, 3, 3, 3, 3, 2, 2, 1, 1}, rulebook.SpellSlots(20))
	assert.Equal(t, rulebook.SpellSlots(20), rulebook.SpellSlots(27))
}

func TestPactMagic(t *testing.T) {
	tests := []struct {
		level     int
		slots     int
		slotLevel int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{5, 2, 3},
		{8, 2, 4},
		{9, 2, 5},
		{11, 3, 5},
		{17, 4, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.slots, rulebook.PactSlots(tt.level), "slots at %d", tt.level)
		assert.Equal(t, tt.slotLevel, rulebook.PactSlotLevel(tt.level), "slot level at %d", tt.level)
	}
}

func TestStepUpDie(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1d4", "1d6"},
		{"d6", "d8"},
		{"1d8", "1d10"},
		{"1d10", "1d12"},
		{"1d12", "2d6"},
		{"1d20", "1d20"},
		{"flat 1", "flat 1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rulebook.StepUpDie(tt.input))
	}
}

func TestDamageExpression(t *testing.T) {
	assert.Equal(t, "1d8+3", rulebook.DamageExpression("1d8", 3))
	assert.Equal(t, "1d6-1", rulebook.DamageExpression("1d6", -1))
	assert.Equal(t, "2d6", rulebook.DamageExpression("2d6", 0))
}

func TestWeaponTags(t *testing.T) {
	assert.True(t, rulebook.IsFinesse([]string{"Light", "Finesse"}))
	assert.True(t, rulebook.IsFinesse([]string{"sutil"}))
	assert.True(t, rulebook.IsRanged([]string{"Ammunition", "Heavy"}))
	assert.True(t, rulebook.IsRanged([]string{"Munición"}))
	assert.True(t, rulebook.IsTwoHanded([]string{"Two-Handed"}))
	assert.False(t, rulebook.IsTwoHanded([]string{"versatile"}))

	cat, ok := rulebook.ParseWeaponCategory("Armas Sencillas")
	assert.True(t, ok)
	assert.Equal(t, rulebook.WeaponCategorySimple, cat)
	cat, ok = rulebook.ParseWeaponCategory("Martial Weapons")
	assert.True(t, ok)
	assert.Equal(t, rulebook.WeaponCategoryMartial, cat)
}
