package character

import (
	"fmt"
	"strings"

	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// MaxNameLength caps character names
const MaxNameLength = 50

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return dnderr.InvalidArgument("input cannot be nil")
	}
	return input.Validate()
}

// Validate checks CreateCharacterInput for validity
func (i *CreateCharacterInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("CreateCharacterInput cannot be nil")
	}

	vb := dnderr.NewValidationBuilder().
		Required("owner_id", i.OwnerID).
		Required("name", i.Name)
	if len(strings.TrimSpace(i.Name)) > MaxNameLength {
		vb.InvalidField("name", fmt.Sprintf("cannot exceed %d characters", MaxNameLength))
	}
	return vb.Build()
}

func (i *ApplyUpdatesInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("ApplyUpdatesInput cannot be nil")
	}
	return dnderr.NewValidationBuilder().Required("character_id", i.CharacterID).Build()
}

func (i *ImportClassInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("ImportClassInput cannot be nil")
	}
	return dnderr.NewValidationBuilder().
		Required("character_id", i.CharacterID).
		Required("class_key", i.ClassKey).
		Build()
}

func (i *LevelUpInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("LevelUpInput cannot be nil")
	}
	return dnderr.NewValidationBuilder().
		Required("character_id", i.CharacterID).
		Required("class_name", i.ClassName).
		Build()
}

func (i *ImportSpellInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("ImportSpellInput cannot be nil")
	}
	return dnderr.NewValidationBuilder().
		Required("character_id", i.CharacterID).
		Required("spell_key", i.SpellKey).
		Build()
}

func (i *ImportEquipmentInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("ImportEquipmentInput cannot be nil")
	}
	return dnderr.NewValidationBuilder().
		Required("character_id", i.CharacterID).
		Required("equipment_key", i.EquipmentKey).
		Build()
}
