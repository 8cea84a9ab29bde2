package calculators

import (
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

const (
	// BaseArmorClass is the unarmored base before dexterity
	BaseArmorClass = 10
	// CarryingCapacityMultiplier converts strength into pounds
	CarryingCapacityMultiplier = 15
)

// Attack is one equipped weapon resolved into a to-hit bonus and a damage roll
type Attack struct {
	ItemID      string           `json:"itemId"`
	Name        string           `json:"name"`
	Ability     shared.Attribute `json:"ability"`
	AttackBonus int              `json:"attackBonus"`
	Damage      string           `json:"damage"`
	DamageType  string           `json:"damageType,omitempty"`
	Proficient  bool             `json:"proficient"`
}

// DerivedStats is the read-only view computed from a document
type DerivedStats struct {
	ArmorClass      int      `json:"armorClass"`
	Initiative      int      `json:"initiative"`
	CarryingLoad    float64  `json:"carryingLoad"`
	MaxCarryingLoad float64  `json:"maxCarryingLoad"`
	IsOverloaded    bool     `json:"isOverloaded"`
	Attacks         []Attack `json:"attacks"`

	ArmorStealthDisadvantage bool `json:"armorStealthDisadvantage"`
	StrengthRequirementUnmet bool `json:"strengthRequirementUnmet"`
}

// DerivedStatsCalculator computes armor class, initiative, load and attacks
type DerivedStatsCalculator struct{}

func NewDerivedStatsCalculator() *DerivedStatsCalculator {
	return &DerivedStatsCalculator{}
}

// Calculate never fails. A nil document yields the stats of a default one.
func (c *DerivedStatsCalculator) Calculate(doc *character.Document) *DerivedStats {
	if doc == nil {
		doc = character.NewDocument()
	}

	dexMod := doc.Modifier(shared.AttributeDexterity)
	stats := &DerivedStats{
		ArmorClass: c.armorClass(doc, dexMod),
		Initiative: dexMod,
		Attacks:    []Attack{},
	}

	if armor := doc.EquippedArmor(); armor != nil && armor.Armor != nil {
		stats.ArmorStealthDisadvantage = armor.Armor.StealthDisadvantage
		stats.StrengthRequirementUnmet = armor.Armor.StrengthRequirement > doc.Abilities.Strength
	}

	stats.CarryingLoad = carryingLoad(doc)
	stats.MaxCarryingLoad = float64(max(0, doc.Abilities.Strength) * CarryingCapacityMultiplier)
	stats.IsOverloaded = stats.CarryingLoad > stats.MaxCarryingLoad

	for i := range doc.Inventory {
		item := &doc.Inventory[i]
		if !item.Equipped || item.Type != shared.ItemTypeWeapon {
			continue
		}
		stats.Attacks = append(stats.Attacks, c.attack(doc, item))
	}

	return stats
}

func (c *DerivedStatsCalculator) armorClass(doc *character.Document, dexMod int) int {
	ac := BaseArmorClass + dexMod

	if armor := doc.EquippedArmor(); armor != nil {
		base, dex := 0, dexMod
		if armor.Armor != nil {
			base = armor.Armor.ACBonus
			if armor.Armor.MaxDex != nil {
				dex = min(dexMod, *armor.Armor.MaxDex)
			}
		}
		ac = base + dex
	}

	if shield := doc.EquippedShield(); shield != nil && shield.Armor != nil {
		ac += shield.Armor.ACBonus
	}

	return ac + doc.Combat.ManualACModifier
}

func carryingLoad(doc *character.Document) float64 {
	load := doc.Currency.Weight()
	for i := range doc.Inventory {
		load += doc.Inventory[i].TotalWeight()
	}
	return load
}

func (c *DerivedStatsCalculator) attack(doc *character.Document, item *character.Item) Attack {
	weapon := item.Weapon
	if weapon == nil {
		weapon = &character.WeaponProps{}
	}

	ability := weaponAbility(doc, weapon)
	mod := doc.Modifier(ability)
	proficient := isProficient(doc.Proficiencies.Weapon, item.Name, weapon.Category)

	bonus := mod
	if proficient {
		bonus += doc.ProficiencyBonus
	}

	return Attack{
		ItemID:      item.ID,
		Name:        item.Name,
		Ability:     ability,
		AttackBonus: bonus,
		Damage:      rulebook.DamageExpression(damageDie(weapon), mod),
		DamageType:  weapon.DamageType,
		Proficient:  proficient,
	}
}

// weaponAbility picks the override, then finesse, then ranged, then strength
func weaponAbility(doc *character.Document, weapon *character.WeaponProps) shared.Attribute {
	if attr, ok := shared.ParseAttribute(string(weapon.Ability)); ok {
		return attr
	}

	switch {
	case rulebook.IsFinesse(weapon.Properties):
		if doc.Modifier(shared.AttributeDexterity) > doc.Modifier(shared.AttributeStrength) {
			return shared.AttributeDexterity
		}
		return shared.AttributeStrength
	case rulebook.IsRanged(weapon.Properties):
		return shared.AttributeDexterity
	default:
		return shared.AttributeStrength
	}
}

// damageDie applies the two handed grip: the versatile die when listed,
// otherwise one step up the ladder
func damageDie(weapon *character.WeaponProps) string {
	if !weapon.TwoHanded {
		return weapon.DamageDie
	}
	if weapon.VersatileDie != "" {
		return weapon.VersatileDie
	}
	return rulebook.StepUpDie(weapon.DamageDie)
}

func isProficient(proficiencies []string, name, category string) bool {
	weaponCategory, hasCategory := rulebook.ParseWeaponCategory(category)
	for _, p := range proficiencies {
		if shared.FoldEqual(p, name) {
			return true
		}
		if !hasCategory {
			continue
		}
		if c, ok := rulebook.ParseWeaponCategory(p); ok && c == weaponCategory {
			return true
		}
	}
	return false
}
