package dnd5e

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

const skillReferencePrefix = "Skill: "

// mediumArmorMaxDex is not carried by the API, medium armor caps at +2
const mediumArmorMaxDex = 2

func apiClassToDefinition(input *apiEntities.Class) *character.ClassDefinition {
	def := &character.ClassDefinition{
		Name:               input.Name,
		HitDie:             input.HitDie,
		SavingThrows:       make([]string, 0, len(input.SavingThrows)),
		ArmorCategories:    referenceNames(input.ArmorProficiencies),
		WeaponCategories:   referenceNames(input.WeaponProficiencies),
		Tools:              referenceNames(input.ToolProficiencies),
		Progression:        map[int][]string{},
		FeatureDefinitions: map[string]string{},
	}

	for _, st := range input.SavingThrows {
		if st == nil {
			continue
		}
		// saving throws come back as "str", "dex", ...
		if attr, ok := shared.ParseAttribute(st.Key); ok {
			def.SavingThrows = append(def.SavingThrows, string(attr))
		}
	}

	def.SkillChoice = apiSkillChoice(input.ProficiencyChoices)
	return def
}

// apiSkillChoice picks the first proficiency choice whose options are skills
func apiSkillChoice(choices []*apiEntities.ChoiceOption) *character.SkillChoice {
	for _, choice := range choices {
		if choice == nil || choice.OptionList == nil {
			continue
		}

		var options []string
		for _, option := range choice.OptionList.Options {
			ref, ok := option.(*apiEntities.ReferenceOption)
			if !ok || ref.Reference == nil {
				continue
			}
			if name, found := strings.CutPrefix(ref.Reference.Name, skillReferencePrefix); found {
				options = append(options, name)
			}
		}
		if len(options) > 0 {
			return &character.SkillChoice{Count: choice.ChoiceCount, Options: options}
		}
	}
	return nil
}

func addLevelFeatures(def *character.ClassDefinition, className string, level int, input *apiEntities.Level) {
	if input == nil {
		return
	}

	for _, ref := range input.Features {
		if ref == nil || strings.TrimSpace(ref.Name) == "" {
			continue
		}
		def.Progression[level] = append(def.Progression[level], ref.Name)
		if _, ok := def.FeatureDefinitions[ref.Name]; !ok {
			def.FeatureDefinitions[ref.Name] = fmt.Sprintf("A %s class feature gained at level %d.", className, level)
		}
	}
}

func apiEquipmentToItemImport(input dnd5e.EquipmentInterface) *character.ItemImport {
	if input == nil {
		return nil
	}

	switch equip := input.(type) {
	case *apiEntities.Weapon:
		return apiWeaponToItemImport(equip)
	case *apiEntities.Armor:
		return apiArmorToItemImport(equip)
	case *apiEntities.Equipment:
		return &character.ItemImport{
			Key:    equip.Key,
			Name:   equip.Name,
			Type:   string(shared.ItemTypeMisc),
			Weight: float64(equip.Weight),
		}
	default:
		return nil
	}
}

func apiWeaponToItemImport(input *apiEntities.Weapon) *character.ItemImport {
	item := &character.ItemImport{
		Key:            input.Key,
		Name:           input.Name,
		Type:           string(shared.ItemTypeWeapon),
		Weight:         float64(input.Weight),
		Properties:     referenceNames(input.Properties),
		WeaponCategory: strings.ToLower(input.WeaponCategory),
	}

	if input.Damage != nil {
		item.DamageDie = input.Damage.DamageDice
		if input.Damage.DamageType != nil {
			item.DamageType = strings.ToLower(input.Damage.DamageType.Name)
		}
	}
	if input.TwoHandedDamage != nil {
		item.VersatileDie = input.TwoHandedDamage.DamageDice
	}
	if strings.EqualFold(input.WeaponRange, "ranged") {
		item.Properties = append(item.Properties, "ranged")
	}

	return item
}

func apiArmorToItemImport(input *apiEntities.Armor) *character.ItemImport {
	item := &character.ItemImport{
		Key:                 input.Key,
		Name:                input.Name,
		Type:                string(shared.ItemTypeArmor),
		Weight:              float64(input.Weight),
		StealthDisadvantage: input.StealthDisadvantage,
		StrengthRequirement: input.StrMinimum,
	}

	category := strings.ToLower(input.ArmorCategory)
	if category == "shield" {
		item.Type = string(shared.ItemTypeShield)
	}

	if input.ArmorClass != nil {
		item.ACBonus = input.ArmorClass.Base
		switch {
		case item.Type == string(shared.ItemTypeShield):
		case !input.ArmorClass.DexBonus:
			item.MaxDex = new(int)
		case category == "medium":
			maxDex := mediumArmorMaxDex
			item.MaxDex = &maxDex
		}
	}

	return item
}

func apiSpellToSpellImport(input *apiEntities.Spell) *character.SpellImport {
	spell := &character.SpellImport{
		Key:         input.Key,
		Name:        input.Name,
		Level:       input.SpellLevel,
		CastingTime: input.CastingTime,
		Range:       input.Range,
		Duration:    input.Duration,
	}
	if input.SpellSchool != nil {
		spell.School = input.SpellSchool.Name
	}

	var tags []string
	if input.Ritual {
		tags = append(tags, "Ritual")
	}
	if input.Concentration {
		tags = append(tags, "Concentration")
	}
	spell.Components = strings.Join(tags, ", ")
	spell.Description = buildSpellDescription(spell)

	return spell
}

func buildSpellDescription(spell *character.SpellImport) string {
	school := spell.School
	if school == "" {
		school = "unknown school"
	}
	if spell.Level == 0 {
		return fmt.Sprintf("%s cantrip. Range %s, duration %s.", school, spell.Range, spell.Duration)
	}
	return fmt.Sprintf("Level %d %s spell. Range %s, duration %s.", spell.Level, strings.ToLower(school), spell.Range, spell.Duration)
}

func referenceNames(input []*apiEntities.ReferenceItem) []string {
	names := make([]string, 0, len(input))
	for _, ref := range input {
		if ref != nil && ref.Name != "" {
			names = append(names, ref.Name)
		}
	}
	return names
}
