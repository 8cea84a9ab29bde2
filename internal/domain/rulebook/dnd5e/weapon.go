package rulebook

import "github.com/KirkDiggler/charsheet/internal/domain/shared"

type WeaponCategory string

const (
	WeaponCategoryUnknown WeaponCategory = ""
	WeaponCategorySimple  WeaponCategory = "simple"
	WeaponCategoryMartial WeaponCategory = "martial"
)

// weaponCategoryAliases is keyed by NormalizeKey output
var weaponCategoryAliases = map[string]WeaponCategory{
	"simple":         WeaponCategorySimple,
	"simpleweapon":   WeaponCategorySimple,
	"simpleweapons":  WeaponCategorySimple,
	"sencilla":       WeaponCategorySimple,
	"sencillas":      WeaponCategorySimple,
	"armasencilla":   WeaponCategorySimple,
	"armassencillas": WeaponCategorySimple,
	"armassimples":   WeaponCategorySimple,
	"martial":        WeaponCategoryMartial,
	"martialweapon":  WeaponCategoryMartial,
	"martialweapons": WeaponCategoryMartial,
	"marcial":        WeaponCategoryMartial,
	"marciales":      WeaponCategoryMartial,
	"armamarcial":    WeaponCategoryMartial,
	"armasmarciales": WeaponCategoryMartial,
	"armasdeguerra":  WeaponCategoryMartial,
}

// ParseWeaponCategory resolves a broad weapon category from a proficiency
// entry or an item's category field.
func ParseWeaponCategory(s string) (WeaponCategory, bool) {
	c, ok := weaponCategoryAliases[shared.NormalizeKey(s)]
	return c, ok
}

// Property tags that change how a weapon attacks, keyed by NormalizeKey output
var (
	finesseTags   = map[string]bool{"finesse": true, "sutil": true}
	rangedTags    = map[string]bool{"ranged": true, "ammunition": true, "adistancia": true, "municion": true}
	twoHandedTags = map[string]bool{"twohanded": true, "adosmanos": true, "dosmanos": true}
	versatileTags = map[string]bool{"versatile": true, "versatil": true}
)

func hasTag(tags []string, set map[string]bool) bool {
	for _, t := range tags {
		if set[shared.NormalizeKey(t)] {
			return true
		}
	}
	return false
}

func IsFinesse(properties []string) bool { return hasTag(properties, finesseTags) }

func IsRanged(properties []string) bool { return hasTag(properties, rangedTags) }

func IsTwoHanded(properties []string) bool { return hasTag(properties, twoHandedTags) }

func IsVersatile(properties []string) bool { return hasTag(properties, versatileTags) }
