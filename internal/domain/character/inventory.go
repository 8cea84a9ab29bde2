package character

import (
	"strings"

	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

// WeaponProps are the weapon specific fields of an item
type WeaponProps struct {
	DamageDie  string   `json:"damageDie"`
	DamageType string   `json:"damageType"`
	Properties []string `json:"properties"`
	// Category is simple or martial
	Category     string `json:"category"`
	VersatileDie string `json:"versatileDie"`
	// TwoHanded is the grip toggle, set when wielded in both hands
	TwoHanded bool             `json:"twoHanded"`
	Ability   shared.Attribute `json:"ability,omitempty"`
}

// ArmorProps are shared by armor and shields
type ArmorProps struct {
	ACBonus int `json:"acBonus"`
	// MaxDex caps the dexterity modifier, nil means no cap
	MaxDex              *int `json:"maxDex"`
	StealthDisadvantage bool `json:"stealthDisadvantage"`
	StrengthRequirement int  `json:"strengthRequirement"`
}

type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     shared.ItemType `json:"type"`
	Equipped bool            `json:"equipped"`
	Weight   float64         `json:"weight"`
	Quantity int             `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
	Weapon   *WeaponProps    `json:"weapon,omitempty"`
	Armor    *ArmorProps     `json:"armor,omitempty"`
}

// IsTwoHanded is true when the weapon needs both hands, either by its
// property tags or because it is gripped two handed.
func (i *Item) IsTwoHanded() bool {
	if i.Type != shared.ItemTypeWeapon || i.Weapon == nil {
		return false
	}
	return i.Weapon.TwoHanded || rulebook.IsTwoHanded(i.Weapon.Properties)
}

// TotalWeight is weight times quantity, ignoring negative values
func (i *Item) TotalWeight() float64 {
	if i.Weight <= 0 || i.Quantity <= 0 {
		return 0
	}
	return i.Weight * float64(i.Quantity)
}

func (i Item) clone() Item {
	if i.Weapon != nil {
		w := *i.Weapon
		w.Properties = cloneSlice(i.Weapon.Properties)
		i.Weapon = &w
	}
	if i.Armor != nil {
		a := *i.Armor
		if i.Armor.MaxDex != nil {
			maxDex := *i.Armor.MaxDex
			a.MaxDex = &maxDex
		}
		i.Armor = &a
	}
	return i
}

func (d *Document) itemIndex(id string) int {
	for i := range d.Inventory {
		if d.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// EquipItem equips an item and unequips whatever it conflicts with: other
// armor, other shields, or a shield against a two handed weapon.
func (d *Document) EquipItem(id string) error {
	idx := d.itemIndex(id)
	if idx < 0 {
		return dnderr.NotFoundf("item %s not found", id).WithMeta("item_id", id)
	}

	item := &d.Inventory[idx]
	if !item.Type.Equippable() {
		return dnderr.Validationf("item %s of type %s cannot be equipped", item.Name, item.Type).
			WithMeta("item_id", id)
	}

	switch item.Type {
	case shared.ItemTypeArmor:
		d.unequipWhere(idx, func(other *Item) bool { return other.Type == shared.ItemTypeArmor })
	case shared.ItemTypeShield:
		d.unequipWhere(idx, func(other *Item) bool {
			return other.Type == shared.ItemTypeShield || other.IsTwoHanded()
		})
	case shared.ItemTypeWeapon:
		if item.IsTwoHanded() {
			d.unequipShields(idx)
		}
	}

	item.Equipped = true
	return nil
}

// UnequipItem clears the equipped flag
func (d *Document) UnequipItem(id string) error {
	idx := d.itemIndex(id)
	if idx < 0 {
		return dnderr.NotFoundf("item %s not found", id).WithMeta("item_id", id)
	}
	d.Inventory[idx].Equipped = false
	return nil
}

// SetWeaponGrip toggles two handed wielding. Gripping an equipped weapon with
// both hands drops any equipped shield.
func (d *Document) SetWeaponGrip(id string, twoHanded bool) error {
	idx := d.itemIndex(id)
	if idx < 0 {
		return dnderr.NotFoundf("item %s not found", id).WithMeta("item_id", id)
	}

	item := &d.Inventory[idx]
	if item.Type != shared.ItemTypeWeapon {
		return dnderr.Validationf("item %s is not a weapon", item.Name).WithMeta("item_id", id)
	}
	if item.Weapon == nil {
		item.Weapon = &WeaponProps{}
	}

	item.Weapon.TwoHanded = twoHanded
	if item.Equipped && item.IsTwoHanded() {
		d.unequipShields(idx)
	}
	return nil
}

// RemoveItem deletes an item by id
func (d *Document) RemoveItem(id string) error {
	idx := d.itemIndex(id)
	if idx < 0 {
		return dnderr.NotFoundf("item %s not found", id).WithMeta("item_id", id)
	}
	d.Inventory = append(d.Inventory[:idx], d.Inventory[idx+1:]...)
	return nil
}

// AddItem appends an item. Equipped items go through EquipItem so the
// slot rules hold.
func (d *Document) AddItem(item Item) error {
	if strings.TrimSpace(item.ID) == "" {
		return dnderr.InvalidArgument("item id is required")
	}
	if d.itemIndex(item.ID) >= 0 {
		return dnderr.AlreadyExistsf("item %s already in inventory", item.ID).WithMeta("item_id", item.ID)
	}

	equip := item.Equipped
	item.Equipped = false
	d.Inventory = append(d.Inventory, item.clone())
	if equip && item.Type.Equippable() {
		return d.EquipItem(item.ID)
	}
	return nil
}

func (d *Document) unequipShields(except int) {
	d.unequipWhere(except, func(other *Item) bool { return other.Type == shared.ItemTypeShield })
}

func (d *Document) unequipWhere(except int, match func(*Item) bool) {
	for i := range d.Inventory {
		if i != except && d.Inventory[i].Equipped && match(&d.Inventory[i]) {
			d.Inventory[i].Equipped = false
		}
	}
}

// enforceEquipRules repairs a loaded inventory. Items earlier in the list win.
func (d *Document) enforceEquipRules() {
	var armor, shield, twoHanded bool
	for i := range d.Inventory {
		item := &d.Inventory[i]
		if !item.Equipped {
			continue
		}

		switch {
		case !item.Type.Equippable():
			item.Equipped = false
		case item.Type == shared.ItemTypeArmor:
			if armor {
				item.Equipped = false
			}
			armor = true
		case item.Type == shared.ItemTypeShield:
			if shield || twoHanded {
				item.Equipped = false
				continue
			}
			shield = true
		case item.IsTwoHanded():
			if shield {
				item.Equipped = false
				continue
			}
			twoHanded = true
		}
	}
}

// EquippedArmor returns the equipped body armor, nil when unarmored
func (d *Document) EquippedArmor() *Item {
	return d.firstEquipped(shared.ItemTypeArmor)
}

// EquippedShield returns the equipped shield, nil when none
func (d *Document) EquippedShield() *Item {
	return d.firstEquipped(shared.ItemTypeShield)
}

func (d *Document) firstEquipped(t shared.ItemType) *Item {
	for i := range d.Inventory {
		if d.Inventory[i].Equipped && d.Inventory[i].Type == t {
			return &d.Inventory[i]
		}
	}
	return nil
}
