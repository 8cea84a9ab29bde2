package character

import (
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// SpellLevels is the number of spell levels including cantrips
const SpellLevels = 10

// SlotState is the pool for one spell level
type SlotState struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Remaining never goes below zero
func (s SlotState) Remaining() int {
	if s.Used >= s.Total {
		return 0
	}
	return s.Total - s.Used
}

type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Prepared    bool   `json:"prepared"`
	School      string `json:"school"`
	CastingTime string `json:"castingTime"`
	Range       string `json:"range"`
	Components  string `json:"components"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Spellcasting holds slots for spell levels 1-9 at indexes 0-8 and spells by
// level with cantrips at index 0.
type Spellcasting struct {
	Ability       shared.Attribute     `json:"ability"`
	SaveDC        int                  `json:"saveDC"`
	AttackBonus   int                  `json:"attackBonus"`
	Slots         [9]SlotState         `json:"slots"`
	SpellsByLevel [SpellLevels][]Spell `json:"spellsByLevel"`
}

// findSpell returns the level and index of a spell id, or -1, -1
func (s *Spellcasting) findSpell(id string) (int, int) {
	for lvl := range s.SpellsByLevel {
		for i := range s.SpellsByLevel[lvl] {
			if s.SpellsByLevel[lvl][i].ID == id {
				return lvl, i
			}
		}
	}
	return -1, -1
}

// AddSpell files a spell under its level. A second spell with the same name at
// the same level is rejected.
func (d *Document) AddSpell(level int, spell Spell) error {
	if level < 0 || level >= SpellLevels {
		return dnderr.InvalidArgumentf("spell level %d is outside 0-%d", level, SpellLevels-1)
	}
	if spell.ID == "" {
		return dnderr.InvalidArgument("spell id is required")
	}
	for _, existing := range d.Spellcasting.SpellsByLevel[level] {
		if existing.ID == spell.ID || shared.FoldEqual(existing.Name, spell.Name) {
			return dnderr.AlreadyExistsf("spell %s already known", spell.Name).WithMeta("spell_id", existing.ID)
		}
	}

	d.Spellcasting.SpellsByLevel[level] = append(d.Spellcasting.SpellsByLevel[level], spell)
	return nil
}

func (d *Document) RemoveSpell(id string) error {
	lvl, idx := d.Spellcasting.findSpell(id)
	if lvl < 0 {
		return dnderr.NotFoundf("spell %s not found", id).WithMeta("spell_id", id)
	}
	list := d.Spellcasting.SpellsByLevel[lvl]
	d.Spellcasting.SpellsByLevel[lvl] = append(list[:idx], list[idx+1:]...)
	return nil
}

func (d *Document) SetSpellPrepared(id string, prepared bool) error {
	lvl, idx := d.Spellcasting.findSpell(id)
	if lvl < 0 {
		return dnderr.NotFoundf("spell %s not found", id).WithMeta("spell_id", id)
	}
	d.Spellcasting.SpellsByLevel[lvl][idx].Prepared = prepared
	return nil
}

// ExpendSlot marks one slot of spellLevel (1-9) used
func (d *Document) ExpendSlot(spellLevel int) error {
	if spellLevel < 1 || spellLevel > len(d.Spellcasting.Slots) {
		return dnderr.InvalidArgumentf("slot level %d is outside 1-9", spellLevel)
	}
	slot := &d.Spellcasting.Slots[spellLevel-1]
	if slot.Remaining() == 0 {
		return dnderr.Validationf("no level %d slots remaining", spellLevel).WithMeta("slot_level", spellLevel)
	}
	slot.Used++
	return nil
}
