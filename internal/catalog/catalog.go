// Package catalog serves class, item and spell records from YAML files on
// disk. It satisfies the same reference source interface as the dnd5e client
// so a host can run without network access.
//
// Layout under the catalog directory:
//
//	classes/*.yaml  one class definition per file
//	items/*.yaml    a list of item records per file
//	spells/*.yaml   a list of spell records per file
//
// Any of the three directories may be missing.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// Catalog is read once at load time and is safe for concurrent reads
type Catalog struct {
	classes map[string]*character.ClassDefinition
	items   map[string]*character.ItemImport
	spells  map[string]*character.SpellImport
}

// Load reads every YAML file under dir. Records are validated as they are
// read and the first invalid one fails the load.
func Load(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog %s is not a directory", dir)
	}

	c := &Catalog{
		classes: map[string]*character.ClassDefinition{},
		items:   map[string]*character.ItemImport{},
		spells:  map[string]*character.SpellImport{},
	}

	if err := c.loadClasses(filepath.Join(dir, "classes")); err != nil {
		return nil, err
	}
	if err := c.loadItems(filepath.Join(dir, "items")); err != nil {
		return nil, err
	}
	if err := c.loadSpells(filepath.Join(dir, "spells")); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) loadClasses(dir string) error {
	files, err := yamlFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		var def character.ClassDefinition
		if err := decodeFile(path, &def); err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid class in %s: %w", path, err)
		}
		c.classes[shared.NormalizeKey(def.Name)] = &def
	}
	return nil
}

func (c *Catalog) loadItems(dir string) error {
	files, err := yamlFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		var items []*character.ItemImport
		if err := decodeFile(path, &items); err != nil {
			return err
		}
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return fmt.Errorf("invalid item in %s: %w", path, err)
			}
			c.items[recordKey(item.Key, item.Name)] = item
		}
	}
	return nil
}

func (c *Catalog) loadSpells(dir string) error {
	files, err := yamlFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		var spells []*character.SpellImport
		if err := decodeFile(path, &spells); err != nil {
			return err
		}
		for _, spell := range spells {
			if err := spell.Validate(); err != nil {
				return fmt.Errorf("invalid spell in %s: %w", path, err)
			}
			c.spells[recordKey(spell.Key, spell.Name)] = spell
		}
	}
	return nil
}

// GetClassDefinition looks a class up by name, ignoring case and accents
func (c *Catalog) GetClassDefinition(_ context.Context, key string) (*character.ClassDefinition, error) {
	def, ok := c.classes[shared.NormalizeKey(key)]
	if !ok {
		return nil, dnderr.NotFoundf("class %s not in catalog", key).WithMeta("class", key)
	}

	out := *def
	out.SavingThrows = append([]string(nil), def.SavingThrows...)
	out.ArmorCategories = append([]string(nil), def.ArmorCategories...)
	out.WeaponCategories = append([]string(nil), def.WeaponCategories...)
	out.Tools = append([]string(nil), def.Tools...)
	out.Progression = make(map[int][]string, len(def.Progression))
	for lvl, names := range def.Progression {
		out.Progression[lvl] = append([]string(nil), names...)
	}
	out.FeatureDefinitions = make(map[string]string, len(def.FeatureDefinitions))
	for name, desc := range def.FeatureDefinitions {
		out.FeatureDefinitions[name] = desc
	}
	if def.SkillChoice != nil {
		choice := *def.SkillChoice
		choice.Options = append([]string(nil), def.SkillChoice.Options...)
		out.SkillChoice = &choice
	}
	return &out, nil
}

// GetItem looks an item up by key or name
func (c *Catalog) GetItem(_ context.Context, key string) (*character.ItemImport, error) {
	item, ok := c.items[shared.NormalizeKey(key)]
	if !ok {
		return nil, dnderr.NotFoundf("item %s not in catalog", key).WithMeta("item", key)
	}

	out := *item
	out.Properties = append([]string(nil), item.Properties...)
	if item.MaxDex != nil {
		maxDex := *item.MaxDex
		out.MaxDex = &maxDex
	}
	return &out, nil
}

// GetSpell looks a spell up by key or name
func (c *Catalog) GetSpell(_ context.Context, key string) (*character.SpellImport, error) {
	spell, ok := c.spells[shared.NormalizeKey(key)]
	if !ok {
		return nil, dnderr.NotFoundf("spell %s not in catalog", key).WithMeta("spell", key)
	}

	out := *spell
	if spell.Prepared != nil {
		prepared := *spell.Prepared
		out.Prepared = &prepared
	}
	return &out, nil
}

// Classes lists class names in sorted order
func (c *Catalog) Classes() []string {
	names := make([]string, 0, len(c.classes))
	for _, def := range c.classes {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// recordKey prefers the explicit key and falls back to the name
func recordKey(key, name string) string {
	if strings.TrimSpace(key) != "" {
		return shared.NormalizeKey(key)
	}
	return shared.NormalizeKey(name)
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// yamlFiles returns the .yaml and .yml files in dir in sorted order. A
// missing directory has no files.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
