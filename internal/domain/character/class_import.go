package character

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// SkillChoice is a "choose Count of Options" grant
type SkillChoice struct {
	Count   int      `json:"count" yaml:"count"`
	Options []string `json:"options" yaml:"options"`
}

// ClassDefinition is a class as delivered by a reference source
type ClassDefinition struct {
	Name             string           `json:"name" yaml:"name"`
	HitDie           int              `json:"hitDie" yaml:"hitDie"`
	SavingThrows     []string         `json:"savingThrows" yaml:"savingThrows"`
	ArmorCategories  []string         `json:"armor" yaml:"armor"`
	WeaponCategories []string         `json:"weapons" yaml:"weapons"`
	Tools            []string         `json:"tools,omitempty" yaml:"tools,omitempty"`
	Progression      map[int][]string `json:"progression" yaml:"progression"`
	// FeatureDefinitions maps feature name to its description
	FeatureDefinitions map[string]string `json:"definitions" yaml:"definitions"`
	SkillChoice        *SkillChoice      `json:"skillPrompt,omitempty" yaml:"skillPrompt,omitempty"`
	MulticlassText     string            `json:"multiclassText,omitempty" yaml:"multiclassText,omitempty"`
}

// Validate checks the definition at the import boundary
func (c *ClassDefinition) Validate() error {
	if c == nil {
		return dnderr.InvalidArgument("class definition is required")
	}

	vb := dnderr.NewValidationBuilder().Required("name", c.Name)
	if shared.NormalizeKey(c.Name) == "" && strings.TrimSpace(c.Name) != "" {
		vb.InvalidField("name", "must contain a letter or digit")
	}
	if c.HitDie != 0 {
		vb.Range("hitDie", c.HitDie, 4, 12)
	}
	for lvl := range c.Progression {
		if lvl < 1 || lvl > 20 {
			vb.Fieldf("progression", "level %d is outside 1-20", lvl)
		}
	}
	if c.SkillChoice != nil && c.SkillChoice.Count < 0 {
		vb.InvalidField("skillPrompt.count", "must not be negative")
	}
	for _, st := range c.SavingThrows {
		if _, ok := shared.ParseAttribute(st); !ok {
			vb.Fieldf("savingThrows", "unknown ability %q", st)
		}
	}

	return vb.Build()
}

// ImportClass merges a class acquired for the first time. A class that is
// already held is rejected with an AlreadyExists error and the document is
// left unchanged; more levels come only from LevelUp.
//
// The first class acquired is primary and sets the hit die, saving throws and
// armor, weapon and tool proficiencies. A later class only attaches its
// multiclass text as a note.
func (d *Document) ImportClass(def *ClassDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	name := strings.TrimSpace(def.Name)
	if d.HasClass(name) {
		return dnderr.AlreadyExistsf("class %s is already held", name).WithMeta("class", name)
	}
	primary := len(d.Classes) == 0 || d.hasOnlyPlaceholder()

	if primary {
		d.Classes = []ClassLevel{{Name: name, Level: 1}}
		d.applyPrimaryClass(def)
	} else {
		d.Classes = append(d.Classes, ClassLevel{Name: name, Level: 1})
		if text := strings.TrimSpace(def.MulticlassText); text != "" {
			d.Notes = append(d.Notes, Note{SourceClass: name, Text: text})
		}
	}

	if d.ClassProgression == nil {
		d.ClassProgression = map[string]map[int][]string{}
	}
	progression := make(map[int][]string, len(def.Progression))
	for lvl, names := range def.Progression {
		progression[lvl] = cloneSlice(names)
	}
	d.ClassProgression[name] = progression

	if d.ClassFeatureDefinitions == nil {
		d.ClassFeatureDefinitions = map[string]string{}
	}
	for featureName, desc := range def.FeatureDefinitions {
		key := shared.NormalizeKey(featureName)
		if key == "" {
			continue
		}
		if existing, ok := d.ClassFeatureDefinitions[key]; ok && existing != "" && desc == "" {
			continue
		}
		d.ClassFeatureDefinitions[key] = desc
	}

	if prompt, ok := skillPromptFor(name, def.SkillChoice); ok {
		d.SkillPrompts = append(d.SkillPrompts, prompt)
	}

	d.unlockFeatures(name, 1)
	d.syncLevelDerived()

	return nil
}

// AddClass is the multiclass entry point. It is the same transition as
// ImportClass; a second class always lands as non primary.
func (d *Document) AddClass(def *ClassDefinition) error {
	return d.ImportClass(def)
}

func (d *Document) applyPrimaryClass(def *ClassDefinition) {
	if def.HitDie > 0 {
		d.HitDieType = def.HitDie
	}

	if d.SavingThrowProficiencies == nil {
		d.SavingThrowProficiencies = map[shared.Attribute]bool{}
	}
	for _, st := range def.SavingThrows {
		if attr, ok := shared.ParseAttribute(st); ok {
			d.SavingThrowProficiencies[attr] = true
		}
	}

	d.Proficiencies.Armor = appendUnique(d.Proficiencies.Armor, def.ArmorCategories...)
	d.Proficiencies.Weapon = appendUnique(d.Proficiencies.Weapon, def.WeaponCategories...)
	d.Proficiencies.Tool = appendUnique(d.Proficiencies.Tool, def.Tools...)
}

func skillPromptFor(className string, choice *SkillChoice) (SkillPrompt, bool) {
	if choice == nil || choice.Count <= 0 {
		return SkillPrompt{}, false
	}

	options := make([]shared.Skill, 0, len(choice.Options))
	seen := map[shared.Skill]bool{}
	for _, raw := range choice.Options {
		skill, ok := shared.ParseSkill(raw)
		if !ok || seen[skill] {
			continue
		}
		seen[skill] = true
		options = append(options, skill)
	}
	if len(options) == 0 {
		return SkillPrompt{}, false
	}

	return SkillPrompt{
		ID:             fmt.Sprintf("%s-skills", shared.NormalizeKey(className)),
		SourceClass:    className,
		RequiredCount:  choice.Count,
		AllowedOptions: options,
	}, true
}

// unlockFeatures appends the features listed for className at level, skipping
// any (name, sourceClass) pair already present.
func (d *Document) unlockFeatures(className string, level int) int {
	progression, ok := d.progressionFor(className)
	if !ok {
		return 0
	}

	added := 0
	for _, featureName := range progression[level] {
		featureName = strings.TrimSpace(featureName)
		if featureName == "" || d.hasFeature(featureName, className) {
			continue
		}
		d.ClassFeatures = append(d.ClassFeatures, ClassFeature{
			ID:          featureID(className, featureName),
			Level:       level,
			Name:        featureName,
			Description: d.FeatureDescription(featureName),
			SourceClass: className,
		})
		added++
	}
	return added
}

func featureID(className, featureName string) string {
	return fmt.Sprintf("%s-%s", shared.NormalizeKey(className), shared.NormalizeKey(featureName))
}

// FeatureDescription looks a feature up in the shared definitions: normalized
// name, then the raw name, then the first key in sorted order containing the
// normalized name. Missing features describe as "".
func (d *Document) FeatureDescription(featureName string) string {
	if len(d.ClassFeatureDefinitions) == 0 {
		return ""
	}

	normalized := shared.NormalizeKey(featureName)
	if normalized == "" {
		return ""
	}
	if desc, ok := d.ClassFeatureDefinitions[normalized]; ok {
		return desc
	}
	if desc, ok := d.ClassFeatureDefinitions[featureName]; ok {
		return desc
	}

	keys := make([]string, 0, len(d.ClassFeatureDefinitions))
	for k := range d.ClassFeatureDefinitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(shared.NormalizeKey(k), normalized) {
			return d.ClassFeatureDefinitions[k]
		}
	}

	return ""
}

// appendUnique adds values not already present, compared after folding
func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		dup := false
		for _, existing := range list {
			if shared.FoldEqual(existing, v) {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, v)
		}
	}
	return list
}
