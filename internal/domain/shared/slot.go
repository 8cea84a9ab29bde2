package shared

import "strings"

// ItemType is the slot category an inventory item occupies when equipped
type ItemType string

const (
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeArmor  ItemType = "armor"
	ItemTypeShield ItemType = "shield"
	ItemTypeMisc   ItemType = "misc"
)

// ParseItemType maps loose input onto an item type. Anything unrecognized is misc.
func ParseItemType(s string) ItemType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weapon", "arma":
		return ItemTypeWeapon
	case "armor", "armour", "armadura":
		return ItemTypeArmor
	case "shield", "escudo":
		return ItemTypeShield
	default:
		return ItemTypeMisc
	}
}

// Equippable reports whether items of this type can be equipped
func (t ItemType) Equippable() bool {
	return t == ItemTypeWeapon || t == ItemTypeArmor || t == ItemTypeShield
}
