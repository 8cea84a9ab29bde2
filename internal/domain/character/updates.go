package character

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// Update is one typed edit of a field group
type Update interface {
	Apply(doc *Document) error
}

// ApplyAll runs updates in order on a clone and returns it. The first failing
// update aborts and the input is returned untouched alongside the error.
func ApplyAll(doc *Document, updates ...Update) (*Document, error) {
	out := doc.Clone()
	for _, u := range updates {
		if u == nil {
			continue
		}
		if err := u.Apply(out); err != nil {
			return doc, err
		}
	}
	return out, nil
}

type SetName struct {
	Name string
}

func (u SetName) Apply(doc *Document) error {
	doc.Name = strings.TrimSpace(u.Name)
	return nil
}

type SetAbilityScore struct {
	Ability shared.Attribute
	Score   int
}

func (u SetAbilityScore) Apply(doc *Document) error {
	if u.Score < MinAbilityScore || u.Score > MaxAbilityScore {
		return dnderr.InvalidArgumentf("%s score %d is outside %d-%d", u.Ability, u.Score, MinAbilityScore, MaxAbilityScore)
	}
	attr, ok := shared.ParseAttribute(string(u.Ability))
	if !ok {
		return dnderr.InvalidArgumentf("unknown ability %q", u.Ability)
	}
	doc.Abilities.Set(attr, u.Score)
	return nil
}

type SetSkillProficiency struct {
	Skill      shared.Skill
	Proficient bool
}

// Apply accepts any skill alias the class import accepts
func (u SetSkillProficiency) Apply(doc *Document) error {
	skill, ok := shared.ParseSkill(string(u.Skill))
	if !ok {
		return dnderr.InvalidArgumentf("unknown skill %q", u.Skill)
	}
	if doc.SkillProficiencies == nil {
		doc.SkillProficiencies = map[shared.Skill]bool{}
	}
	if u.Proficient {
		doc.SkillProficiencies[skill] = true
	} else {
		delete(doc.SkillProficiencies, skill)
	}
	return nil
}

type SetSavingThrowProficiency struct {
	Ability    shared.Attribute
	Proficient bool
}

func (u SetSavingThrowProficiency) Apply(doc *Document) error {
	attr, ok := shared.ParseAttribute(string(u.Ability))
	if !ok {
		return dnderr.InvalidArgumentf("unknown ability %q", u.Ability)
	}
	if doc.SavingThrowProficiencies == nil {
		doc.SavingThrowProficiencies = map[shared.Attribute]bool{}
	}
	if u.Proficient {
		doc.SavingThrowProficiencies[attr] = true
	} else {
		delete(doc.SavingThrowProficiencies, attr)
	}
	return nil
}

// SetCurrency replaces every denomination. Blank values store as "0".
type SetCurrency struct {
	Currency Currency
}

func (u SetCurrency) Apply(doc *Document) error {
	fields := []*string{&u.Currency.CP, &u.Currency.SP, &u.Currency.EP, &u.Currency.GP, &u.Currency.PP}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
		if *f == "" {
			*f = "0"
			continue
		}
		if v, err := strconv.ParseFloat(*f, 64); err != nil || v < 0 {
			return dnderr.InvalidArgumentf("currency amount %q is not a non negative number", *f)
		}
	}
	doc.Currency = u.Currency
	return nil
}

// SetCombat edits the tracked combat numbers. Nil fields are left alone.
type SetCombat struct {
	HPMax            *int
	HPCurrent        *int
	HPTemp           *int
	HitDiceUsed      *int
	Speed            *int
	ManualACModifier *int
	DeathSaves       *DeathSaves
}

func (u SetCombat) Apply(doc *Document) error {
	c := &doc.Combat
	if u.HPMax != nil {
		c.HPMax = max(0, *u.HPMax)
	}
	if u.HPCurrent != nil {
		c.HPCurrent = *u.HPCurrent
	}
	if u.HPTemp != nil {
		c.HPTemp = max(0, *u.HPTemp)
	}
	if u.HitDiceUsed != nil {
		c.HitDiceUsed = min(max(0, *u.HitDiceUsed), c.HitDiceTotal)
	}
	if u.Speed != nil {
		c.Speed = max(0, *u.Speed)
	}
	if u.ManualACModifier != nil {
		c.ManualACModifier = *u.ManualACModifier
	}
	if u.DeathSaves != nil {
		c.DeathSaves = DeathSaves{
			Successes: min(max(0, u.DeathSaves.Successes), 3),
			Failures:  min(max(0, u.DeathSaves.Failures), 3),
		}
	}
	if c.HPMax > 0 && c.HPCurrent > c.HPMax {
		c.HPCurrent = c.HPMax
	}
	return nil
}

// SetSpellcastingAbility pins the casting ability. An empty value falls back
// to the ability of the highest level casting class.
type SetSpellcastingAbility struct {
	Ability shared.Attribute
}

func (u SetSpellcastingAbility) Apply(doc *Document) error {
	if u.Ability == shared.AttributeNone {
		doc.Spellcasting.Ability = shared.AttributeNone
		return nil
	}
	attr, ok := shared.ParseAttribute(string(u.Ability))
	if !ok {
		return dnderr.InvalidArgumentf("unknown ability %q", u.Ability)
	}
	doc.Spellcasting.Ability = attr
	return nil
}

type ProficiencyCategory string

const (
	ProficiencyArmor    ProficiencyCategory = "armor"
	ProficiencyWeapon   ProficiencyCategory = "weapon"
	ProficiencyTool     ProficiencyCategory = "tool"
	ProficiencyLanguage ProficiencyCategory = "language"
)

// list returns the slice backing a category
func (p *Proficiencies) list(category ProficiencyCategory) *[]string {
	switch category {
	case ProficiencyArmor:
		return &p.Armor
	case ProficiencyWeapon:
		return &p.Weapon
	case ProficiencyTool:
		return &p.Tool
	case ProficiencyLanguage:
		return &p.Language
	default:
		return nil
	}
}

type AddProficiency struct {
	Category ProficiencyCategory
	Value    string
}

func (u AddProficiency) Apply(doc *Document) error {
	list := doc.Proficiencies.list(u.Category)
	if list == nil {
		return dnderr.InvalidArgumentf("unknown proficiency category %q", u.Category)
	}
	if strings.TrimSpace(u.Value) == "" {
		return dnderr.InvalidArgument("proficiency value is required")
	}
	*list = appendUnique(*list, u.Value)
	return nil
}

type RemoveProficiency struct {
	Category ProficiencyCategory
	Value    string
}

func (u RemoveProficiency) Apply(doc *Document) error {
	list := doc.Proficiencies.list(u.Category)
	if list == nil {
		return dnderr.InvalidArgumentf("unknown proficiency category %q", u.Category)
	}
	kept := (*list)[:0:0]
	for _, v := range *list {
		if !shared.FoldEqual(v, u.Value) {
			kept = append(kept, v)
		}
	}
	*list = kept
	return nil
}

type AddFeat struct {
	Feat Feat
}

func (u AddFeat) Apply(doc *Document) error {
	if strings.TrimSpace(u.Feat.Name) == "" {
		return dnderr.InvalidArgument("feat name is required")
	}
	for _, f := range doc.Feats {
		if u.Feat.ID != "" && f.ID == u.Feat.ID {
			return dnderr.AlreadyExistsf("feat %s already present", u.Feat.ID)
		}
	}
	doc.Feats = append(doc.Feats, u.Feat)
	return nil
}

type RemoveFeat struct {
	ID string
}

func (u RemoveFeat) Apply(doc *Document) error {
	for i, f := range doc.Feats {
		if f.ID == u.ID {
			doc.Feats = append(doc.Feats[:i], doc.Feats[i+1:]...)
			return nil
		}
	}
	return dnderr.NotFoundf("feat %s not found", u.ID).WithMeta("feat_id", u.ID)
}

type RemoveClassFeature struct {
	ID string
}

func (u RemoveClassFeature) Apply(doc *Document) error {
	for i, f := range doc.ClassFeatures {
		if f.ID == u.ID {
			doc.ClassFeatures = append(doc.ClassFeatures[:i], doc.ClassFeatures[i+1:]...)
			return nil
		}
	}
	return dnderr.NotFoundf("class feature %s not found", u.ID).WithMeta("feature_id", u.ID)
}

type AddItem struct {
	Item Item
}

func (u AddItem) Apply(doc *Document) error { return doc.AddItem(u.Item) }

type RemoveItem struct {
	ID string
}

func (u RemoveItem) Apply(doc *Document) error { return doc.RemoveItem(u.ID) }

type EquipItem struct {
	ID string
}

func (u EquipItem) Apply(doc *Document) error { return doc.EquipItem(u.ID) }

type UnequipItem struct {
	ID string
}

func (u UnequipItem) Apply(doc *Document) error { return doc.UnequipItem(u.ID) }

type SetWeaponGrip struct {
	ID        string
	TwoHanded bool
}

func (u SetWeaponGrip) Apply(doc *Document) error { return doc.SetWeaponGrip(u.ID, u.TwoHanded) }

type SetItemQuantity struct {
	ID       string
	Quantity int
}

func (u SetItemQuantity) Apply(doc *Document) error {
	idx := doc.itemIndex(u.ID)
	if idx < 0 {
		return dnderr.NotFoundf("item %s not found", u.ID).WithMeta("item_id", u.ID)
	}
	if u.Quantity < 0 {
		return dnderr.InvalidArgument("quantity must not be negative")
	}
	doc.Inventory[idx].Quantity = u.Quantity
	return nil
}

type AddSpell struct {
	Level int
	Spell Spell
}

func (u AddSpell) Apply(doc *Document) error { return doc.AddSpell(u.Level, u.Spell) }

type RemoveSpell struct {
	ID string
}

func (u RemoveSpell) Apply(doc *Document) error { return doc.RemoveSpell(u.ID) }

type SetSpellPrepared struct {
	ID       string
	Prepared bool
}

func (u SetSpellPrepared) Apply(doc *Document) error { return doc.SetSpellPrepared(u.ID, u.Prepared) }

type ExpendSlot struct {
	Level int
}

func (u ExpendSlot) Apply(doc *Document) error { return doc.ExpendSlot(u.Level) }

// LongRest restores hit points and slots, clears temporary hit points and
// death saves, and recovers half the hit dice (at least one).
type LongRest struct{}

func (LongRest) Apply(doc *Document) error {
	c := &doc.Combat
	c.HPCurrent = c.HPMax
	c.HPTemp = 0
	c.DeathSaves = DeathSaves{}
	c.HitDiceUsed = max(0, c.HitDiceUsed-max(1, c.HitDiceTotal/2))

	for i := range doc.Spellcasting.Slots {
		doc.Spellcasting.Slots[i].Used = 0
	}
	return nil
}
