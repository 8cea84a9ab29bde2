package rulebook

// MaxLevel is the highest character or class level the tables cover
const MaxLevel = 20

// AbilityModifier returns floor((score-10)/2)
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// ProficiencyBonus returns ceil(1 + totalLevel/4). Levels below 1 are treated as 1.
func ProficiencyBonus(totalLevel int) int {
	if totalLevel < 1 {
		totalLevel = 1
	}
	return 1 + (totalLevel+3)/4
}

// spellSlotTable is indexed by aggregate caster level - 1, columns are spell levels 1-9
var spellSlotTable = [MaxLevel][9]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// SpellSlots returns a copy of the slot row for an aggregate caster level.
// Level 0 yields all zeros, levels past the table clamp to the last row.
func SpellSlots(casterLevel int) [9]int {
	if casterLevel < 1 {
		return [9]int{}
	}
	if casterLevel > MaxLevel {
		casterLevel = MaxLevel
	}
	return spellSlotTable[casterLevel-1]
}

var warlockSpellsKnown = [MaxLevel]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15}

// WarlockSpellsKnown returns the spells known by a warlock of the given level
func WarlockSpellsKnown(level int) int {
	if level < 1 {
		return 0
	}
	return warlockSpellsKnown[min(level, MaxLevel)-1]
}

// PactSlots returns how many pact slots a warlock of the given level has
func PactSlots(level int) int {
	switch {
	case level < 1:
		return 0
	case level == 1:
		return 1
	case level <= 10:
		return 2
	case level <= 16:
		return 3
	default:
		return 4
	}
}

// PactSlotLevel returns the spell level of a warlock's pact slots
func PactSlotLevel(level int) int {
	switch {
	case level < 1:
		return 0
	case level >= 9:
		return 5
	default:
		return (level + 1) / 2
	}
}
