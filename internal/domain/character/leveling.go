package character

import (
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
)

// LevelUp advances a held class by one level, recomputes everything derived
// from total level and unlocks the features its progression lists at the new
// level. Leveling a class that is not held is rejected with NotFound and the
// document is left unchanged.
func (d *Document) LevelUp(className string) error {
	if !d.HasClass(className) {
		return dnderr.NotFoundf("class %s is not held", className).WithMeta("class", className)
	}

	idx := d.classIndex(className)
	if d.Classes[idx].Level >= rulebook.MaxLevel {
		return dnderr.Validationf("class %s is already at level %d", d.Classes[idx].Name, rulebook.MaxLevel).
			WithMeta("class", className)
	}

	d.Classes[idx].Level++
	d.syncLevelDerived()
	d.unlockFeatures(d.Classes[idx].Name, d.Classes[idx].Level)

	return nil
}
