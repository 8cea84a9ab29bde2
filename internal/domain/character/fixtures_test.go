package character

import "github.com/KirkDiggler/charsheet/internal/domain/shared"

func fighterDefinition() *ClassDefinition {
	return &ClassDefinition{
		Name:             "Fighter",
		HitDie:           10,
		SavingThrows:     []string{"STR", "CON"},
		ArmorCategories:  []string{"light", "medium", "heavy", "shields"},
		WeaponCategories: []string{"simple", "martial"},
		Progression: map[int][]string{
			1:  {"Fighting Style", "Second Wind"},
			2:  {"Action Surge"},
			5:  {"Extra Attack"},
			11: {"Extra Attack"},
		},
		FeatureDefinitions: map[string]string{
			"Second Wind":  "Regain 1d10 + fighter level hit points as a bonus action.",
			"Extra Attack": "Attack twice when you take the Attack action.",
		},
		SkillChoice: &SkillChoice{
			Count:   2,
			Options: []string{"Athletics", "Stealth", "Perception"},
		},
		MulticlassText: "Fighter multiclass requires STR or DEX 13.",
	}
}

func wizardDefinition() *ClassDefinition {
	return &ClassDefinition{
		Name:         "Wizard",
		HitDie:       6,
		SavingThrows: []string{"INT", "WIS"},
		Progression: map[int][]string{
			1: {"Arcane Recovery"},
			2: {"Arcane Tradition"},
		},
		FeatureDefinitions: map[string]string{
			"Arcane Recovery": "Recover spell slots on a short rest.",
		},
		SkillChoice: &SkillChoice{
			Count:   2,
			Options: []string{"Arcana", "History", "Insight"},
		},
		MulticlassText: "Wizard multiclass requires INT 13.",
	}
}

func longsword(id string) Item {
	return Item{
		ID:       id,
		Name:     "Longsword",
		Type:     shared.ItemTypeWeapon,
		Weight:   3,
		Quantity: 1,
		Weapon: &WeaponProps{
			DamageDie:    "1d8",
			DamageType:   "slashing",
			Properties:   []string{"versatile"},
			Category:     "martial",
			VersatileDie: "1d10",
		},
	}
}

func greatsword(id string) Item {
	return Item{
		ID:       id,
		Name:     "Greatsword",
		Type:     shared.ItemTypeWeapon,
		Weight:   6,
		Quantity: 1,
		Weapon: &WeaponProps{
			DamageDie:  "2d6",
			DamageType: "slashing",
			Properties: []string{"heavy", "two-handed"},
			Category:   "martial",
		},
	}
}

func chainMail(id string) Item {
	return Item{
		ID:       id,
		Name:     "Chain Mail",
		Type:     shared.ItemTypeArmor,
		Weight:   55,
		Quantity: 1,
		Armor: &ArmorProps{
			ACBonus:             16,
			MaxDex:              intPtr(0),
			StealthDisadvantage: true,
			StrengthRequirement: 13,
		},
	}
}

func leatherArmor(id string) Item {
	return Item{
		ID:       id,
		Name:     "Leather Armor",
		Type:     shared.ItemTypeArmor,
		Weight:   10,
		Quantity: 1,
		Armor:    &ArmorProps{ACBonus: 11},
	}
}

func shield(id string) Item {
	return Item{
		ID:       id,
		Name:     "Shield",
		Type:     shared.ItemTypeShield,
		Weight:   6,
		Quantity: 1,
		Armor:    &ArmorProps{ACBonus: 2},
	}
}

func intPtr(v int) *int { return &v }
