package testutils

import (
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

// FighterDefinition is a trimmed fighter class with an Extra Attack at 5
func FighterDefinition() *character.ClassDefinition {
	return &character.ClassDefinition{
		Name:             "Fighter",
		HitDie:           10,
		SavingThrows:     []string{"strength", "constitution"},
		ArmorCategories:  []string{"light", "medium", "heavy", "shields"},
		WeaponCategories: []string{"simple", "martial"},
		Progression: map[int][]string{
			1: {"Fighting Style", "Second Wind"},
			2: {"Action Surge"},
			5: {"Extra Attack"},
		},
		FeatureDefinitions: map[string]string{
			"Second Wind":  "Regain hit points as a bonus action.",
			"Action Surge": "Take one additional action.",
			"Extra Attack": "Attack twice when you take the Attack action.",
		},
		SkillChoice: &character.SkillChoice{
			Count:   2,
			Options: []string{"athletics", "stealth", "perception"},
		},
		MulticlassText: "Requires STR 13 or DEX 13.",
	}
}

// WizardDefinition is a trimmed wizard class
func WizardDefinition() *character.ClassDefinition {
	return &character.ClassDefinition{
		Name:         "Wizard",
		HitDie:       6,
		SavingThrows: []string{"intelligence", "wisdom"},
		Progression: map[int][]string{
			1: {"Arcane Recovery"},
			2: {"Arcane Tradition"},
		},
		FeatureDefinitions: map[string]string{
			"Arcane Recovery": "Recover expended spell slots on a short rest.",
		},
		SkillChoice:    &character.SkillChoice{Count: 2, Options: []string{"arcana", "history", "insight"}},
		MulticlassText: "Requires INT 13.",
	}
}

// CreateTestDocument creates a level 1 fighter with a longsword and chain mail
func CreateTestDocument(id, ownerID, name string) *character.Document {
	doc := character.NewDocument()
	doc.ID = id
	doc.OwnerID = ownerID
	doc.Name = name
	doc.Abilities.Strength = 16
	doc.Abilities.Dexterity = 14
	doc.Abilities.Constitution = 15
	doc.Abilities.Wisdom = 12
	doc.Abilities.Charisma = 8
	doc.Combat.HPMax = 12
	doc.Combat.HPCurrent = 12

	if err := doc.ImportClass(FighterDefinition()); err != nil {
		panic(err)
	}

	items := []character.Item{
		{
			ID: "item-longsword", Name: "Longsword", Type: shared.ItemTypeWeapon,
			Equipped: true, Weight: 3, Quantity: 1,
			Weapon: &character.WeaponProps{
				DamageDie: "1d8", DamageType: "slashing", Category: "martial",
				Properties: []string{"versatile"}, VersatileDie: "1d10",
			},
		},
		{
			ID: "item-chain-mail", Name: "Chain Mail", Type: shared.ItemTypeArmor,
			Equipped: true, Weight: 55, Quantity: 1,
			Armor: &character.ArmorProps{ACBonus: 16, MaxDex: new(int), StealthDisadvantage: true, StrengthRequirement: 13},
		},
	}
	for _, item := range items {
		if err := doc.AddItem(item); err != nil {
			panic(err)
		}
	}

	return doc
}
