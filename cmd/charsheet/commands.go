package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	characterService "github.com/KirkDiggler/charsheet/internal/services/character"
)

var (
	createOwner string
	createName  string
	listOwner   string
	equipFlag   bool
	unequipFlag bool
	removeSkill bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new character",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withService(func(ctx context.Context, svc characterService.Service) error {
			out, err := svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{
				OwnerID: createOwner,
				Name:    createName,
			})
			if err != nil {
				return fmt.Errorf("failed to create character: %w", err)
			}
			fmt.Printf("Created character %s (%s)\n", out.Document.Name, out.Document.ID)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <character-id>",
	Short: "Show a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc characterService.Service) error {
			out, err := svc.GetCharacter(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get character: %w", err)
			}
			fmt.Println(renderSheet(out))
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the characters of an owner",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withService(func(ctx context.Context, svc characterService.Service) error {
			outs, err := svc.ListCharacters(ctx, listOwner)
			if err != nil {
				return fmt.Errorf("failed to list characters: %w", err)
			}
			fmt.Println(renderList(outs))
			return nil
		})
	},
}

var importClassCmd = &cobra.Command{
	Use:   "import-class <character-id> <class-key>",
	Short: "Add a class from the reference source",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runCommand(func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error) {
			return svc.ImportClass(ctx, &characterService.ImportClassInput{CharacterID: args[0], ClassKey: args[1]})
		})
	},
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up <character-id> <class>",
	Short: "Advance a held class by one level",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runCommand(func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error) {
			return svc.LevelUp(ctx, &characterService.LevelUpInput{CharacterID: args[0], ClassName: args[1]})
		})
	},
}

var addItemCmd = &cobra.Command{
	Use:   "add-item <character-id> <equipment-key>",
	Short: "Add equipment from the reference source",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runCommand(func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error) {
			return svc.ImportEquipment(ctx, &characterService.ImportEquipmentInput{
				CharacterID:  args[0],
				EquipmentKey: args[1],
				Equip:        equipFlag,
			})
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip <character-id> <item-id>",
	Short: "Equip or unequip an inventory item",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		var update character.Update = character.EquipItem{ID: args[1]}
		if unequipFlag {
			update = character.UnequipItem{ID: args[1]}
		}
		return runCommand(func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error) {
			return svc.ApplyUpdates(ctx, &characterService.ApplyUpdatesInput{
				CharacterID: args[0],
				Updates:     []character.Update{update},
			})
		})
	},
}

var addSpellCmd = &cobra.Command{
	Use:   "add-spell <character-id> <spell-key>",
	Short: "Add a spell from the reference source",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runCommand(func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error) {
			return svc.ImportSpell(ctx, &characterService.ImportSpellInput{CharacterID: args[0], SpellKey: args[1]})
		})
	},
}

var skillCmd = &cobra.Command{
	Use:   "skill <character-id> <skill>",
	Short: "Mark a skill proficient, resolving a pending skill choice when satisfied",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		skill, ok := shared.ParseSkill(args[1])
		if !ok {
			return fmt.Errorf("unknown skill %q", args[1])
		}
		return runCommand(func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error) {
			return svc.ApplyUpdates(ctx, &characterService.ApplyUpdatesInput{
				CharacterID: args[0],
				Updates:     []character.Update{character.SetSkillProficiency{Skill: skill, Proficient: !removeSkill}},
			})
		})
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair <character-id>",
	Short: "Re-normalize a stored character and save it back",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc characterService.Service) error {
			out, err := svc.RepairCharacter(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to repair character: %w", err)
			}
			if out.Repaired {
				fmt.Printf("Repaired %s, dropped fields: %v\n", out.Document.ID, out.Skipped)
			} else {
				fmt.Printf("%s needed no repair, rewritten\n", out.Document.ID)
			}
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <character-id>",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc characterService.Service) error {
			if err := svc.DeleteCharacter(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete character: %w", err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	createCmd.Flags().StringVar(&createOwner, "owner", "", "Owner ID (required)")
	createCmd.Flags().StringVar(&createName, "name", "", "Character name (required)")
	_ = createCmd.MarkFlagRequired("owner") // nolint:errcheck // safe to ignore in init
	_ = createCmd.MarkFlagRequired("name")  // nolint:errcheck // safe to ignore in init

	listCmd.Flags().StringVar(&listOwner, "owner", "", "Owner ID (required)")
	_ = listCmd.MarkFlagRequired("owner") // nolint:errcheck // safe to ignore in init

	addItemCmd.Flags().BoolVar(&equipFlag, "equip", false, "Equip the item once added")
	equipCmd.Flags().BoolVar(&unequipFlag, "off", false, "Unequip instead")
	skillCmd.Flags().BoolVar(&removeSkill, "remove", false, "Remove the proficiency instead")
}

// runCommand runs a mutating service call and prints the resulting sheet, or
// the reason the change was rejected
func runCommand(fn func(ctx context.Context, svc characterService.Service) (*characterService.CharacterOutput, error)) error {
	return withService(func(ctx context.Context, svc characterService.Service) error {
		out, err := fn(ctx, svc)
		if err != nil {
			return err
		}
		if out.Rejected {
			fmt.Printf("Rejected: %s\n", out.Reason)
			return nil
		}
		fmt.Println(renderSheet(out))
		return nil
	})
}
