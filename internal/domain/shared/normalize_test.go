package shared_test

import (
	"testing"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Extra Attack", "extraattack"},
		{"extra-attack", "extraattack"},
		{"  Clérigo ", "clerigo"},
		{"Armas Sencillas", "armassencillas"},
		{"Pícaro", "picaro"},
		{"Ki (Monk)", "kimonk"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.NormalizeKey(tt.input))
		})
	}
}

func TestFoldEqual(t *testing.T) {
	assert.True(t, shared.FoldEqual("Paladín", "PALADIN"))
	assert.True(t, shared.FoldEqual("Simple Weapons", "simple-weapons"))
	assert.False(t, shared.FoldEqual("Longsword", "Shortsword"))
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		input    string
		expected shared.Attribute
		ok       bool
	}{
		{"STR", shared.AttributeStrength, true},
		{"Dexterity", shared.AttributeDexterity, true},
		{"Sabiduría", shared.AttributeWisdom, true},
		{"car", shared.AttributeCharisma, true},
		{"luck", shared.AttributeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := shared.ParseAttribute(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSkill(t *testing.T) {
	tests := []struct {
		input    string
		expected shared.Skill
		ok       bool
	}{
		{"athletics", shared.SkillAthletics, true},
		{"Skill: Animal Handling", shared.SkillAnimalHandling, true},
		{"skill-sleight-of-hand", shared.SkillSleightOfHand, true},
		{"Percepción", shared.SkillPerception, true},
		{"Sigilo", shared.SkillStealth, true},
		{"basket weaving", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := shared.ParseSkill(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Equal(t, shared.AttributeDexterity, shared.SkillStealth.Attribute())
}

func TestParseItemType(t *testing.T) {
	assert.Equal(t, shared.ItemTypeShield, shared.ParseItemType("Escudo"))
	assert.Equal(t, shared.ItemTypeArmor, shared.ParseItemType("armour"))
	assert.Equal(t, shared.ItemTypeMisc, shared.ParseItemType("rope"))
	assert.False(t, shared.ItemTypeMisc.Equippable())
}
