package character

import (
	"fmt"

	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// Abilities holds the six raw scores
type Abilities struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

func NewAbilities() Abilities {
	return Abilities{
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

func (a Abilities) Get(attr shared.Attribute) int {
	switch attr {
	case shared.AttributeStrength:
		return a.Strength
	case shared.AttributeDexterity:
		return a.Dexterity
	case shared.AttributeConstitution:
		return a.Constitution
	case shared.AttributeIntelligence:
		return a.Intelligence
	case shared.AttributeWisdom:
		return a.Wisdom
	case shared.AttributeCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set assigns a score. It returns false for an unknown attribute.
func (a *Abilities) Set(attr shared.Attribute, score int) bool {
	switch attr {
	case shared.AttributeStrength:
		a.Strength = score
	case shared.AttributeDexterity:
		a.Dexterity = score
	case shared.AttributeConstitution:
		a.Constitution = score
	case shared.AttributeIntelligence:
		a.Intelligence = score
	case shared.AttributeWisdom:
		a.Wisdom = score
	case shared.AttributeCharisma:
		a.Charisma = score
	default:
		return false
	}
	return true
}

// String renders a score with its modifier, "14 (+2)"
func (a Abilities) String(attr shared.Attribute) string {
	score := a.Get(attr)
	return fmt.Sprintf("%d (%+d)", score, rulebook.AbilityModifier(score))
}
