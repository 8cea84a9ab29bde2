package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charsheet/internal/catalog"
	"github.com/KirkDiggler/charsheet/internal/domain/character"
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	"github.com/KirkDiggler/charsheet/internal/repositories/characters"
	characterService "github.com/KirkDiggler/charsheet/internal/services/character"
)

func TestService_CatalogFlow(t *testing.T) {
	ctx := context.Background()
	ref, err := catalog.Load("../../catalog/testdata")
	require.NoError(t, err)

	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
		Reference:  ref,
	})

	created, err := svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{OwnerID: "owner-1", Name: "Elara"})
	require.NoError(t, err)
	id := created.Document.ID

	out, err := svc.ImportClass(ctx, &characterService.ImportClassInput{CharacterID: id, ClassKey: "mago"})
	require.NoError(t, err)
	require.False(t, out.Rejected, out.Reason)
	assert.Equal(t, 2, out.Spellcasting.SlotsPerLevel[0])
	assert.True(t, out.Document.SavingThrowProficiencies[shared.AttributeWisdom])
	require.NotNil(t, out.Document.PendingSkillPrompt())

	_, err = svc.ImportSpell(ctx, &characterService.ImportSpellInput{CharacterID: id, SpellKey: "fire-bolt"})
	require.NoError(t, err)
	_, err = svc.ImportSpell(ctx, &characterService.ImportSpellInput{CharacterID: id, SpellKey: "Shield"})
	require.NoError(t, err)

	_, err = svc.ImportEquipment(ctx, &characterService.ImportEquipmentInput{CharacterID: id, EquipmentKey: "rapier", Equip: true})
	require.NoError(t, err)

	out, err = svc.ApplyUpdates(ctx, &characterService.ApplyUpdatesInput{
		CharacterID: id,
		Updates: []character.Update{
			character.SetAbilityScore{Ability: shared.AttributeIntelligence, Score: 16},
			character.SetSkillProficiency{Skill: shared.SkillArcana, Proficient: true},
			character.SetSkillProficiency{Skill: shared.SkillHistory, Proficient: true},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, out.Document.PendingSkillPrompt())

	loaded, err := svc.GetCharacter(ctx, id)
	require.NoError(t, err)

	doc := loaded.Document
	assert.Equal(t, "Mago", doc.Classes[0].Name)
	assert.Len(t, doc.Spellcasting.SpellsByLevel[0], 1)
	require.Len(t, doc.Spellcasting.SpellsByLevel[1], 1)
	assert.False(t, doc.Spellcasting.SpellsByLevel[1][0].Prepared)
	assert.Equal(t, 13, doc.Spellcasting.SaveDC)
	assert.Equal(t, 1, loaded.Spellcasting.CurrentCantrips)
	require.Len(t, loaded.Stats.Attacks, 1)
	assert.Equal(t, "Rapier", loaded.Stats.Attacks[0].Name)

	list, err := svc.ListCharacters(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
