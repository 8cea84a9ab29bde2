package character

import (
	"strings"

	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// ItemImport is an equipment record from a reference source. Missing fields
// default to their zero values.
type ItemImport struct {
	Key      string  `json:"key" yaml:"key"`
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Equipped bool    `json:"equipped" yaml:"equipped"`
	Notes    string  `json:"notes" yaml:"notes"`

	DamageDie      string   `json:"damageDie" yaml:"damageDie"`
	DamageType     string   `json:"damageType" yaml:"damageType"`
	Properties     []string `json:"properties" yaml:"properties"`
	WeaponCategory string   `json:"weaponCategory" yaml:"weaponCategory"`
	VersatileDie   string   `json:"versatileDie" yaml:"versatileDie"`

	ACBonus             int  `json:"acBonus" yaml:"acBonus"`
	MaxDex              *int `json:"maxDex" yaml:"maxDex"`
	StealthDisadvantage bool `json:"stealthDisadvantage" yaml:"stealthDisadvantage"`
	StrengthRequirement int  `json:"strengthRequirement" yaml:"strengthRequirement"`
}

func (i *ItemImport) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("item import is required")
	}

	vb := dnderr.NewValidationBuilder().Required("name", i.Name)
	if i.Quantity < 0 {
		vb.InvalidField("quantity", "must not be negative")
	}
	if i.Weight < 0 {
		vb.InvalidField("weight", "must not be negative")
	}
	if i.DamageDie != "" {
		if _, ok := rulebook.ParseDie(i.DamageDie); !ok {
			vb.Fieldf("damageDie", "%q is not a die expression", i.DamageDie)
		}
	}
	if i.VersatileDie != "" {
		if _, ok := rulebook.ParseDie(i.VersatileDie); !ok {
			vb.Fieldf("versatileDie", "%q is not a die expression", i.VersatileDie)
		}
	}

	return vb.Build()
}

// ItemType resolves the declared type, falling back on which fields are set
func (i *ItemImport) ItemType() shared.ItemType {
	if t := shared.ParseItemType(i.Type); t != shared.ItemTypeMisc || strings.EqualFold(i.Type, string(shared.ItemTypeMisc)) {
		return t
	}
	switch {
	case i.DamageDie != "":
		return shared.ItemTypeWeapon
	case i.ACBonus > 0 && strings.Contains(shared.NormalizeKey(i.Name), "shield"):
		return shared.ItemTypeShield
	case i.ACBonus > 0:
		return shared.ItemTypeArmor
	default:
		return shared.ItemTypeMisc
	}
}

// ToItem converts the record into an inventory item with the given id
func (i *ItemImport) ToItem(id string) Item {
	item := Item{
		ID:       id,
		Name:     strings.TrimSpace(i.Name),
		Type:     i.ItemType(),
		Equipped: i.Equipped,
		Weight:   i.Weight,
		Quantity: i.Quantity,
		Notes:    i.Notes,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	switch item.Type {
	case shared.ItemTypeWeapon:
		item.Weapon = &WeaponProps{
			DamageDie:    i.DamageDie,
			DamageType:   i.DamageType,
			Properties:   cloneSlice(i.Properties),
			Category:     i.WeaponCategory,
			VersatileDie: i.VersatileDie,
		}
		if item.Weapon.Properties == nil {
			item.Weapon.Properties = []string{}
		}
	case shared.ItemTypeArmor, shared.ItemTypeShield:
		armor := &ArmorProps{
			ACBonus:             i.ACBonus,
			StealthDisadvantage: i.StealthDisadvantage,
			StrengthRequirement: i.StrengthRequirement,
		}
		if i.MaxDex != nil {
			maxDex := *i.MaxDex
			armor.MaxDex = &maxDex
		}
		item.Armor = armor
	}

	return item
}

// SpellImport is a spell record from a reference source
type SpellImport struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Level       int    `json:"level" yaml:"level"`
	School      string `json:"school" yaml:"school"`
	CastingTime string `json:"castingTime" yaml:"castingTime"`
	Range       string `json:"range" yaml:"range"`
	Components  string `json:"components" yaml:"components"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
	// Prepared defaults to true when omitted
	Prepared *bool `json:"prepared,omitempty" yaml:"prepared,omitempty"`
}

func (s *SpellImport) Validate() error {
	if s == nil {
		return dnderr.InvalidArgument("spell import is required")
	}

	return dnderr.NewValidationBuilder().
		Required("name", s.Name).
		Range("level", s.Level, 0, SpellLevels-1).
		Build()
}

func (s *SpellImport) ToSpell(id string) Spell {
	prepared := true
	if s.Prepared != nil {
		prepared = *s.Prepared
	}

	return Spell{
		ID:          id,
		Name:        strings.TrimSpace(s.Name),
		Prepared:    prepared,
		School:      s.School,
		CastingTime: s.CastingTime,
		Range:       s.Range,
		Components:  s.Components,
		Duration:    s.Duration,
		Description: s.Description,
	}
}
