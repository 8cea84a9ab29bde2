package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charsheet/internal/services/engine"
	characterService "github.com/KirkDiggler/charsheet/internal/services/character"
	"github.com/KirkDiggler/charsheet/internal/testutils"
)

func sheetOutput(t *testing.T) *characterService.CharacterOutput {
	t.Helper()
	out, err := engine.New(&engine.Config{}).Normalize(testutils.CreateTestDocument("char-1", "owner-1", "Aria"))
	require.NoError(t, err)
	return &characterService.CharacterOutput{
		Document:     out.Document,
		Stats:        out.Stats,
		Spellcasting: out.Spellcasting,
	}
}

func TestRenderSheet(t *testing.T) {
	rendered := renderSheet(sheetOutput(t))

	assert.Contains(t, rendered, "Aria")
	assert.Contains(t, rendered, "Fighter 1")
	assert.Contains(t, rendered, "16 (+3)")
	assert.Contains(t, rendered, "Longsword")
	assert.Contains(t, rendered, "1d8+3 slashing")
	assert.Contains(t, rendered, "choose 2 skills")
	assert.NotContains(t, rendered, "Spellcasting")
}

func TestWarnings(t *testing.T) {
	out := sheetOutput(t)
	out.Repaired = true
	out.Skipped = []string{"combat.speed"}

	list := warnings(out)

	assert.Contains(t, list, "armor imposes stealth disadvantage")
	assert.Contains(t, list, "stored sheet was repaired, dropped: combat.speed")
	assert.NotContains(t, list, "armor strength requirement not met")
}

func TestRenderList(t *testing.T) {
	assert.Equal(t, "No characters.", renderList(nil))
	assert.Contains(t, renderList([]*characterService.CharacterOutput{sheetOutput(t)}), "char-1")
}
