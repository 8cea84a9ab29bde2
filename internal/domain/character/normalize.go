package character

import (
	"strings"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

// Normalize restores the document invariants in place: nil collections become
// empty, classes and class features are deduplicated, missing ids are
// generated, equip rules are enforced and level derived values recomputed.
// It is safe to run on any document, including freshly decoded ones.
func (d *Document) Normalize(ids uuid.Generator) {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	d.fillCollections()
	d.dedupeClasses()
	d.dedupeClassFeatures()

	for i := range d.Inventory {
		item := &d.Inventory[i]
		if item.ID == "" {
			item.ID = ids.New()
		}
		if item.Type == "" {
			item.Type = shared.ItemTypeMisc
		} else {
			item.Type = shared.ParseItemType(string(item.Type))
		}
		if item.Quantity < 0 {
			item.Quantity = 0
		}
	}
	for i := range d.Feats {
		if d.Feats[i].ID == "" {
			d.Feats[i].ID = ids.New()
		}
	}
	for i := range d.ClassFeatures {
		if d.ClassFeatures[i].ID == "" {
			d.ClassFeatures[i].ID = featureID(d.ClassFeatures[i].SourceClass, d.ClassFeatures[i].Name)
		}
	}
	for lvl := range d.Spellcasting.SpellsByLevel {
		for i := range d.Spellcasting.SpellsByLevel[lvl] {
			if d.Spellcasting.SpellsByLevel[lvl][i].ID == "" {
				d.Spellcasting.SpellsByLevel[lvl][i].ID = ids.New()
			}
		}
	}
	for i := range d.Spellcasting.Slots {
		slot := &d.Spellcasting.Slots[i]
		slot.Total = max(0, slot.Total)
		slot.Used = min(max(0, slot.Used), slot.Total)
	}

	d.enforceEquipRules()
	d.syncLevelDerived()
}

func (d *Document) fillCollections() {
	if d.Classes == nil {
		d.Classes = []ClassLevel{}
	}
	if d.SavingThrowProficiencies == nil {
		d.SavingThrowProficiencies = map[shared.Attribute]bool{}
	}
	if d.SkillProficiencies == nil {
		d.SkillProficiencies = map[shared.Skill]bool{}
	}
	if d.SkillPrompts == nil {
		d.SkillPrompts = []SkillPrompt{}
	}
	for _, list := range []*[]string{&d.Proficiencies.Armor, &d.Proficiencies.Weapon, &d.Proficiencies.Tool, &d.Proficiencies.Language} {
		*list = appendUnique([]string{}, *list...)
	}
	if d.Feats == nil {
		d.Feats = []Feat{}
	}
	if d.ClassFeatures == nil {
		d.ClassFeatures = []ClassFeature{}
	}
	if d.ClassProgression == nil {
		d.ClassProgression = map[string]map[int][]string{}
	}
	if d.ClassFeatureDefinitions == nil {
		d.ClassFeatureDefinitions = map[string]string{}
	}
	if d.Inventory == nil {
		d.Inventory = []Item{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
}

// dedupeClasses merges repeated classes, keeping the first entry and the
// highest level seen. Levels below 1 are raised to 1.
func (d *Document) dedupeClasses() {
	out := make([]ClassLevel, 0, len(d.Classes))
	for _, c := range d.Classes {
		c.Name = strings.TrimSpace(c.Name)
		c.Level = max(1, c.Level)

		merged := false
		for i := range out {
			if out[i].Name != "" && shared.FoldEqual(out[i].Name, c.Name) {
				out[i].Level = max(out[i].Level, c.Level)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, c)
		}
	}

	// an unnamed placeholder only survives on its own
	if len(out) > 1 {
		named := out[:0]
		for _, c := range out {
			if c.Name != "" {
				named = append(named, c)
			}
		}
		out = named
	}
	d.Classes = out
}

func (d *Document) dedupeClassFeatures() {
	out := make([]ClassFeature, 0, len(d.ClassFeatures))
	for _, f := range d.ClassFeatures {
		dup := false
		for _, kept := range out {
			if shared.FoldEqual(kept.Name, f.Name) && shared.FoldEqual(kept.SourceClass, f.SourceClass) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	d.ClassFeatures = out
}
