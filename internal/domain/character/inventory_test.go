package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

func equipped(doc *Document) []string {
	var ids []string
	for _, item := range doc.Inventory {
		if item.Equipped {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func TestEquipItem(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		equip    []string
		expected []string
	}{
		{
			name:     "second armor replaces the first",
			items:    []Item{chainMail("mail"), leatherArmor("leather")},
			equip:    []string{"mail", "leather"},
			expected: []string{"leather"},
		},
		{
			name:     "shield and one handed weapon coexist",
			items:    []Item{longsword("sword"), shield("shield")},
			equip:    []string{"sword", "shield"},
			expected: []string{"sword", "shield"},
		},
		{
			name:     "two handed weapon drops the shield",
			items:    []Item{shield("shield"), greatsword("great")},
			equip:    []string{"shield", "great"},
			expected: []string{"great"},
		},
		{
			name:     "shield drops the two handed weapon",
			items:    []Item{greatsword("great"), shield("shield")},
			equip:    []string{"great", "shield"},
			expected: []string{"shield"},
		},
		{
			name:     "armor and shield coexist",
			items:    []Item{chainMail("mail"), shield("shield"), longsword("sword")},
			equip:    []string{"mail", "shield", "sword"},
			expected: []string{"mail", "shield", "sword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			for _, item := range tt.items {
				require.NoError(t, doc.AddItem(item))
			}
			for _, id := range tt.equip {
				require.NoError(t, doc.EquipItem(id))
			}

			assert.Equal(t, tt.expected, equipped(doc))
		})
	}
}

func TestEquipItem_Errors(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.AddItem(Item{ID: "rope", Name: "Rope", Type: shared.ItemTypeMisc, Quantity: 1}))

	err := doc.EquipItem("missing")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))

	err = doc.EquipItem("rope")
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
	assert.False(t, doc.Inventory[0].Equipped)
}

func TestSetWeaponGrip_DropsShield(t *testing.T) {
	doc := NewDocument()
	sword := longsword("sword")
	sword.Equipped = true
	guard := shield("shield")
	guard.Equipped = true
	require.NoError(t, doc.AddItem(sword))
	require.NoError(t, doc.AddItem(guard))
	require.Equal(t, []string{"sword", "shield"}, equipped(doc))

	require.NoError(t, doc.SetWeaponGrip("sword", true))

	assert.Equal(t, []string{"sword"}, equipped(doc))
	assert.True(t, doc.Inventory[0].IsTwoHanded())

	err := doc.SetWeaponGrip("shield", true)
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
}

func TestAddItem(t *testing.T) {
	doc := NewDocument()

	err := doc.AddItem(Item{Name: "No id"})
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))

	require.NoError(t, doc.AddItem(longsword("sword")))
	err = doc.AddItem(longsword("sword"))
	require.Error(t, err)
	assert.True(t, dnderr.IsAlreadyExists(err))

	require.NoError(t, doc.RemoveItem("sword"))
	assert.Empty(t, doc.Inventory)
	assert.True(t, dnderr.IsNotFound(doc.RemoveItem("sword")))
}

func TestItem_TotalWeight(t *testing.T) {
	arrows := Item{Weight: 0.05, Quantity: 20}
	broken := Item{Weight: -1, Quantity: 3}

	assert.InDelta(t, 1.0, arrows.TotalWeight(), 0.0001)
	assert.Equal(t, 0.0, broken.TotalWeight())
}

func TestItemImport_ToItem(t *testing.T) {
	tests := []struct {
		name     string
		input    ItemImport
		expected shared.ItemType
	}{
		{name: "declared type", input: ItemImport{Name: "Club", Type: "weapon"}, expected: shared.ItemTypeWeapon},
		{name: "damage implies weapon", input: ItemImport{Name: "Dagger", DamageDie: "1d4"}, expected: shared.ItemTypeWeapon},
		{name: "shield by name", input: ItemImport{Name: "Wooden Shield", ACBonus: 2}, expected: shared.ItemTypeShield},
		{name: "armor by bonus", input: ItemImport{Name: "Hide", ACBonus: 2}, expected: shared.ItemTypeArmor},
		{name: "explicit misc", input: ItemImport{Name: "Pole", Type: "misc", DamageDie: "1d4"}, expected: shared.ItemTypeMisc},
		{name: "nothing set", input: ItemImport{Name: "Rope"}, expected: shared.ItemTypeMisc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.input.ToItem("id-1")

			assert.Equal(t, "id-1", item.ID)
			assert.Equal(t, tt.expected, item.Type)
			assert.Equal(t, 1, item.Quantity)
			assert.Equal(t, tt.expected == shared.ItemTypeWeapon, item.Weapon != nil)
		})
	}
}

func TestItemImport_Validate(t *testing.T) {
	bad := &ItemImport{Quantity: -1, DamageDie: "sword"}

	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "damageDie")
	assert.Contains(t, err.Error(), "quantity")

	assert.NoError(t, (&ItemImport{Name: "Dagger", DamageDie: "d4"}).Validate())
}

func TestSpells(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.AddSpell(0, Spell{ID: "a", Name: "Fire Bolt"}))

	err := doc.AddSpell(0, Spell{ID: "b", Name: "fire bolt"})
	require.Error(t, err)
	assert.True(t, dnderr.IsAlreadyExists(err))

	require.NoError(t, doc.AddSpell(1, Spell{ID: "b", Name: "Fire Bolt"}), "same name at another level is allowed")
	assert.True(t, dnderr.IsInvalidArgument(doc.AddSpell(10, Spell{ID: "c", Name: "Wish"})))

	require.NoError(t, doc.SetSpellPrepared("b", true))
	assert.True(t, doc.Spellcasting.SpellsByLevel[1][0].Prepared)
	require.NoError(t, doc.RemoveSpell("a"))
	assert.Empty(t, doc.Spellcasting.SpellsByLevel[0])
	assert.True(t, dnderr.IsNotFound(doc.RemoveSpell("a")))

	doc.Spellcasting.Slots[0] = SlotState{Total: 1}
	require.NoError(t, doc.ExpendSlot(1))
	err = doc.ExpendSlot(1)
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
	assert.True(t, dnderr.IsInvalidArgument(doc.ExpendSlot(0)))
}

func TestSpellImport_ToSpell(t *testing.T) {
	notPrepared := false

	assert.True(t, (&SpellImport{Name: "Bless"}).ToSpell("x").Prepared)
	assert.False(t, (&SpellImport{Name: "Bless", Prepared: &notPrepared}).ToSpell("x").Prepared)
	assert.True(t, dnderr.IsInvalidArgument((&SpellImport{Name: "Bless", Level: 12}).Validate()))
}
