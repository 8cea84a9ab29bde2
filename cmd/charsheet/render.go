package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/KirkDiggler/charsheet/internal/domain/shared"
	characterService "github.com/KirkDiggler/charsheet/internal/services/character"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderSheet(out *characterService.CharacterOutput) string {
	doc := out.Document
	var b strings.Builder

	classes := make([]string, 0, len(doc.Classes))
	for _, c := range doc.Classes {
		name := c.Name
		if name == "" {
			name = "(no class)"
		}
		classes = append(classes, fmt.Sprintf("%s %d", name, c.Level))
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  [%s]", doc.Name, strings.Join(classes, " / "))))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ID %s  Owner %s\n\n", doc.ID, doc.OwnerID)

	abilities := newTable("Ability", "Score", "Save")
	for _, attr := range shared.Attributes {
		save := doc.Modifier(attr)
		if doc.SavingThrowProficiencies[attr] {
			save += doc.ProficiencyBonus
		}
		abilities.Row(strings.ToUpper(attr.Short()), doc.Abilities.String(attr), fmt.Sprintf("%+d", save))
	}
	b.WriteString(abilities.Render())
	b.WriteString("\n")

	stats := out.Stats
	combat := newTable("AC", "Init", "HP", "Speed", "Prof", "Load")
	combat.Row(
		fmt.Sprintf("%d", stats.ArmorClass),
		fmt.Sprintf("%+d", stats.Initiative),
		fmt.Sprintf("%d/%d (+%d)", doc.Combat.HPCurrent, doc.Combat.HPMax, doc.Combat.HPTemp),
		fmt.Sprintf("%d", doc.Combat.Speed),
		fmt.Sprintf("+%d", doc.ProficiencyBonus),
		fmt.Sprintf("%.1f/%.0f", stats.CarryingLoad, stats.MaxCarryingLoad),
	)
	b.WriteString(combat.Render())
	b.WriteString("\n")

	if len(stats.Attacks) > 0 {
		attacks := newTable("Attack", "Hit", "Damage")
		for _, a := range stats.Attacks {
			damage := a.Damage
			if a.DamageType != "" {
				damage += " " + a.DamageType
			}
			attacks.Row(a.Name, fmt.Sprintf("%+d", a.AttackBonus), damage)
		}
		b.WriteString(attacks.Render())
		b.WriteString("\n")
	}

	if spells := renderSpellcasting(out); spells != "" {
		b.WriteString(spells)
		b.WriteString("\n")
	}

	for _, w := range warnings(out) {
		b.WriteString(warningStyle.Render("! " + w))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderSpellcasting(out *characterService.CharacterOutput) string {
	summary := out.Spellcasting
	if summary == nil || summary.Ability == shared.AttributeNone {
		return ""
	}

	slots := newTable("Slot", "Used", "Total")
	for i, slot := range out.Document.Spellcasting.Slots {
		if slot.Total == 0 {
			continue
		}
		slots.Row(fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", slot.Used), fmt.Sprintf("%d", slot.Total))
	}

	header := fmt.Sprintf("Spellcasting %s  DC %d  Attack %+d  Prepared %d/%d  Cantrips %d/%d",
		strings.ToUpper(summary.Ability.Short()), summary.SaveDC, summary.AttackBonus,
		summary.CurrentPrepared, summary.MaxPreparedOrKnown,
		summary.CurrentCantrips, summary.MaxCantrips)

	return header + "\n" + slots.Render()
}

func warnings(out *characterService.CharacterOutput) []string {
	var list []string
	if out.Stats.IsOverloaded {
		list = append(list, "carrying more than capacity")
	}
	if out.Stats.StrengthRequirementUnmet {
		list = append(list, "armor strength requirement not met")
	}
	if out.Stats.ArmorStealthDisadvantage {
		list = append(list, "armor imposes stealth disadvantage")
	}
	if out.Spellcasting != nil && out.Spellcasting.PreparedOverCap {
		list = append(list, "more spells prepared than allowed")
	}
	if out.Spellcasting != nil && out.Spellcasting.CantripsOverCap {
		list = append(list, "more cantrips than allowed")
	}
	if prompt := out.Document.PendingSkillPrompt(); prompt != nil {
		options := make([]string, len(prompt.AllowedOptions))
		for i, o := range prompt.AllowedOptions {
			options[i] = string(o)
		}
		list = append(list, fmt.Sprintf("%s: choose %d skills from %s",
			prompt.SourceClass, prompt.RequiredCount, strings.Join(options, ", ")))
	}
	if out.Repaired {
		list = append(list, fmt.Sprintf("stored sheet was repaired, dropped: %s", strings.Join(out.Skipped, ", ")))
	}
	return list
}

func renderList(outs []*characterService.CharacterOutput) string {
	if len(outs) == 0 {
		return "No characters."
	}

	t := newTable("ID", "Name", "Level", "AC")
	for _, out := range outs {
		t.Row(out.Document.ID, out.Document.Name, fmt.Sprintf("%d", out.Document.TotalLevel()), fmt.Sprintf("%d", out.Stats.ArmorClass))
	}
	return t.Render()
}
