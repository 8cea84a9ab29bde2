package character

import (
	rulebook "github.com/KirkDiggler/charsheet/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

const (
	DefaultAbilityScore = 10
	DefaultSpeed        = 30
)

// ClassLevel is one entry of the class list
type ClassLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillPrompt is a pending "choose N of these skills" obligation
type SkillPrompt struct {
	ID             string         `json:"id"`
	SourceClass    string         `json:"sourceClass"`
	RequiredCount  int            `json:"requiredCount"`
	AllowedOptions []shared.Skill `json:"allowedOptions"`
}

// Proficiencies holds category tags and free text entries per group
type Proficiencies struct {
	Armor    []string `json:"armor"`
	Weapon   []string `json:"weapon"`
	Tool     []string `json:"tool"`
	Language []string `json:"language"`
}

type Feat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

// ClassFeature is an unlocked class ability
type ClassFeature struct {
	ID          string `json:"id"`
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SourceClass string `json:"sourceClass"`
}

type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

type Combat struct {
	HPMax            int        `json:"hpMax"`
	HPCurrent        int        `json:"hpCurrent"`
	HPTemp           int        `json:"hpTemp"`
	HitDiceTotal     int        `json:"hitDiceTotal"`
	HitDiceUsed      int        `json:"hitDiceUsed"`
	Speed            int        `json:"speed"`
	ManualACModifier int        `json:"manualACModifier"`
	DeathSaves       DeathSaves `json:"deathSaves"`
}

// Note is advisory text attached by a class acquisition
type Note struct {
	SourceClass string `json:"sourceClass"`
	Text        string `json:"text"`
}

// Document is the complete persisted state of a character. The rules engine
// owns its shape; callers own the instance.
type Document struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`

	Classes                  []ClassLevel                `json:"classes"`
	Abilities                Abilities                   `json:"abilities"`
	ProficiencyBonus         int                         `json:"proficiencyBonus"`
	SavingThrowProficiencies map[shared.Attribute]bool   `json:"savingThrowProficiencies"`
	SkillProficiencies       map[shared.Skill]bool       `json:"skillProficiencies"`
	SkillPrompts             []SkillPrompt               `json:"skillPrompts"`
	Proficiencies            Proficiencies               `json:"proficiencies"`
	Feats                    []Feat                      `json:"feats"`
	ClassFeatures            []ClassFeature              `json:"classFeatures"`
	ClassProgression         map[string]map[int][]string `json:"classProgression"`
	ClassFeatureDefinitions  map[string]string           `json:"classFeatureDefinitions"`
	HitDieType               int                         `json:"hitDieType"`
	Combat                   Combat                      `json:"combat"`
	Inventory                []Item                      `json:"inventory"`
	Currency                 Currency                    `json:"currency"`
	Spellcasting             Spellcasting                `json:"spellcasting"`
	Notes                    []Note                      `json:"notes"`
}

// NewDocument returns the default shape: a single unnamed level 1 class,
// every ability at 10 and empty collections.
func NewDocument() *Document {
	return &Document{
		Classes:                  []ClassLevel{{Name: "", Level: 1}},
		Abilities:                NewAbilities(),
		ProficiencyBonus:         rulebook.ProficiencyBonus(1),
		SavingThrowProficiencies: map[shared.Attribute]bool{},
		SkillProficiencies:       map[shared.Skill]bool{},
		SkillPrompts:             []SkillPrompt{},
		Proficiencies: Proficiencies{
			Armor:    []string{},
			Weapon:   []string{},
			Tool:     []string{},
			Language: []string{},
		},
		Feats:                   []Feat{},
		ClassFeatures:           []ClassFeature{},
		ClassProgression:        map[string]map[int][]string{},
		ClassFeatureDefinitions: map[string]string{},
		Combat: Combat{
			HitDiceTotal: 1,
			Speed:        DefaultSpeed,
		},
		Inventory: []Item{},
		Currency:  NewCurrency(),
		Spellcasting: Spellcasting{
			SpellsByLevel: [10][]Spell{},
		},
		Notes: []Note{},
	}
}

// TotalLevel is the sum of all class levels
func (d *Document) TotalLevel() int {
	total := 0
	for _, c := range d.Classes {
		if c.Level > 0 {
			total += c.Level
		}
	}
	return total
}

// Modifier returns the ability modifier for attr
func (d *Document) Modifier(attr shared.Attribute) int {
	return rulebook.AbilityModifier(d.Abilities.Get(attr))
}

// classIndex finds a class by name, ignoring case and diacritics
func (d *Document) classIndex(name string) int {
	if shared.NormalizeKey(name) == "" {
		return -1
	}
	for i, c := range d.Classes {
		if shared.FoldEqual(c.Name, name) {
			return i
		}
	}
	return -1
}

// HasClass reports whether name is in the class list
func (d *Document) HasClass(name string) bool {
	return d.classIndex(name) >= 0
}

// ClassLevelOf returns the level held in the named class, 0 if not held
func (d *Document) ClassLevelOf(name string) int {
	if i := d.classIndex(name); i >= 0 {
		return d.Classes[i].Level
	}
	return 0
}

// hasOnlyPlaceholder is true for a fresh document: its one class is unnamed
func (d *Document) hasOnlyPlaceholder() bool {
	return len(d.Classes) == 1 && shared.NormalizeKey(d.Classes[0].Name) == ""
}

// progressionFor finds the advancement table of a class by folded name
func (d *Document) progressionFor(name string) (map[int][]string, bool) {
	if p, ok := d.ClassProgression[name]; ok {
		return p, true
	}
	for k, p := range d.ClassProgression {
		if shared.FoldEqual(k, name) {
			return p, true
		}
	}
	return nil, false
}

// hasFeature reports whether a (name, sourceClass) pair is already unlocked
func (d *Document) hasFeature(name, sourceClass string) bool {
	for _, f := range d.ClassFeatures {
		if shared.FoldEqual(f.Name, name) && shared.FoldEqual(f.SourceClass, sourceClass) {
			return true
		}
	}
	return false
}

// syncLevelDerived recomputes everything that is a function of total level
func (d *Document) syncLevelDerived() {
	total := d.TotalLevel()
	d.ProficiencyBonus = rulebook.ProficiencyBonus(total)
	d.Combat.HitDiceTotal = total
	if d.Combat.HitDiceUsed > total {
		d.Combat.HitDiceUsed = total
	}
}

// Clone returns a deep copy that shares no memory with d
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	out := *d
	out.Classes = cloneSlice(d.Classes)
	out.SavingThrowProficiencies = cloneMap(d.SavingThrowProficiencies)
	out.SkillProficiencies = cloneMap(d.SkillProficiencies)

	out.SkillPrompts = cloneSlice(d.SkillPrompts)
	for i := range out.SkillPrompts {
		out.SkillPrompts[i].AllowedOptions = cloneSlice(d.SkillPrompts[i].AllowedOptions)
	}

	out.Proficiencies = Proficiencies{
		Armor:    cloneSlice(d.Proficiencies.Armor),
		Weapon:   cloneSlice(d.Proficiencies.Weapon),
		Tool:     cloneSlice(d.Proficiencies.Tool),
		Language: cloneSlice(d.Proficiencies.Language),
	}
	out.Feats = cloneSlice(d.Feats)
	out.ClassFeatures = cloneSlice(d.ClassFeatures)

	if d.ClassProgression != nil {
		out.ClassProgression = make(map[string]map[int][]string, len(d.ClassProgression))
		for class, levels := range d.ClassProgression {
			copied := make(map[int][]string, len(levels))
			for lvl, names := range levels {
				copied[lvl] = cloneSlice(names)
			}
			out.ClassProgression[class] = copied
		}
	}
	out.ClassFeatureDefinitions = cloneMap(d.ClassFeatureDefinitions)

	out.Inventory = cloneSlice(d.Inventory)
	for i := range out.Inventory {
		out.Inventory[i] = d.Inventory[i].clone()
	}

	for lvl := range d.Spellcasting.SpellsByLevel {
		out.Spellcasting.SpellsByLevel[lvl] = cloneSlice(d.Spellcasting.SpellsByLevel[lvl])
	}
	out.Notes = cloneSlice(d.Notes)

	return &out
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	if in == nil {
		return nil
	}
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
