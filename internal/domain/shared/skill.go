package shared

import "strings"

type Skill string

const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal-handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight-of-hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

var skillAttributes = map[Skill]Attribute{
	SkillAcrobatics:     AttributeDexterity,
	SkillAnimalHandling: AttributeWisdom,
	SkillArcana:         AttributeIntelligence,
	SkillAthletics:      AttributeStrength,
	SkillDeception:      AttributeCharisma,
	SkillHistory:        AttributeIntelligence,
	SkillInsight:        AttributeWisdom,
	SkillIntimidation:   AttributeCharisma,
	SkillInvestigation:  AttributeIntelligence,
	SkillMedicine:       AttributeWisdom,
	SkillNature:         AttributeIntelligence,
	SkillPerception:     AttributeWisdom,
	SkillPerformance:    AttributeCharisma,
	SkillPersuasion:     AttributeCharisma,
	SkillReligion:       AttributeIntelligence,
	SkillSleightOfHand:  AttributeDexterity,
	SkillStealth:        AttributeDexterity,
	SkillSurvival:       AttributeWisdom,
}

// Skills lists every skill in sheet order
var Skills = []Skill{
	SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics, SkillDeception, SkillHistory,
	SkillInsight, SkillIntimidation, SkillInvestigation, SkillMedicine, SkillNature, SkillPerception,
	SkillPerformance, SkillPersuasion, SkillReligion, SkillSleightOfHand, SkillStealth, SkillSurvival,
}

var skillAliases = map[string]Skill{
	"acrobacias":         SkillAcrobatics,
	"tratoconanimales":   SkillAnimalHandling,
	"arcanos":            SkillArcana,
	"conocimientoarcano": SkillArcana,
	"atletismo":          SkillAthletics,
	"engano":             SkillDeception,
	"historia":           SkillHistory,
	"perspicacia":        SkillInsight,
	"intimidacion":       SkillIntimidation,
	"investigacion":      SkillInvestigation,
	"medicina":           SkillMedicine,
	"naturaleza":         SkillNature,
	"percepcion":         SkillPerception,
	"interpretacion":     SkillPerformance,
	"persuasion":         SkillPersuasion,
	"religion":           SkillReligion,
	"juegodemanos":       SkillSleightOfHand,
	"sigilo":             SkillStealth,
	"supervivencia":      SkillSurvival,
}

func init() {
	for _, s := range Skills {
		skillAliases[NormalizeKey(string(s))] = s
	}
}

// ParseSkill resolves a skill from its key, its display name, a reference
// name such as "Skill: Animal Handling", a reference key such as
// "skill-stealth", or its Spanish name.
func ParseSkill(s string) (Skill, bool) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "skill:"):
		trimmed = trimmed[len("skill:"):]
	case strings.HasPrefix(lower, "skill-"):
		trimmed = trimmed[len("skill-"):]
	}

	skill, ok := skillAliases[NormalizeKey(trimmed)]
	return skill, ok
}

// Attribute returns the ability that governs the skill
func (s Skill) Attribute() Attribute {
	return skillAttributes[s]
}
