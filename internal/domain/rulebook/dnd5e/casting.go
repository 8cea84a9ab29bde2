package rulebook

import "github.com/KirkDiggler/charsheet/internal/domain/shared"

type CasterType string

const (
	CasterNone    CasterType = "none"
	CasterFull    CasterType = "full"
	CasterHalf    CasterType = "half"
	CasterThird   CasterType = "third"
	CasterWarlock CasterType = "warlock"
)

type SpellStyle string

const (
	SpellStyleNone     SpellStyle = ""
	SpellStyleKnown    SpellStyle = "known"
	SpellStylePrepared SpellStyle = "prepared"
)

// MaxSpellsKnown caps the known-spell allotment of a single class
const MaxSpellsKnown = 22

// CastingRule is the static spellcasting profile of a class
type CastingRule struct {
	Caster          CasterType
	Ability         shared.Attribute
	Style           SpellStyle
	CantripsAtFirst int
}

var castingRules = map[ClassKey]CastingRule{
	ClassBard:            {Caster: CasterFull, Ability: shared.AttributeCharisma, Style: SpellStyleKnown, CantripsAtFirst: 2},
	ClassCleric:          {Caster: CasterFull, Ability: shared.AttributeWisdom, Style: SpellStylePrepared, CantripsAtFirst: 3},
	ClassDruid:           {Caster: CasterFull, Ability: shared.AttributeWisdom, Style: SpellStylePrepared, CantripsAtFirst: 2},
	ClassSorcerer:        {Caster: CasterFull, Ability: shared.AttributeCharisma, Style: SpellStyleKnown, CantripsAtFirst: 4},
	ClassWizard:          {Caster: CasterFull, Ability: shared.AttributeIntelligence, Style: SpellStylePrepared, CantripsAtFirst: 3},
	ClassPaladin:         {Caster: CasterHalf, Ability: shared.AttributeCharisma, Style: SpellStylePrepared},
	ClassRanger:          {Caster: CasterHalf, Ability: shared.AttributeWisdom, Style: SpellStyleKnown},
	ClassArtificer:       {Caster: CasterHalf, Ability: shared.AttributeIntelligence, Style: SpellStylePrepared, CantripsAtFirst: 2},
	ClassEldritchKnight:  {Caster: CasterThird, Ability: shared.AttributeIntelligence, Style: SpellStyleKnown, CantripsAtFirst: 2},
	ClassArcaneTrickster: {Caster: CasterThird, Ability: shared.AttributeIntelligence, Style: SpellStyleKnown, CantripsAtFirst: 3},
	ClassWarlock:         {Caster: CasterWarlock, Ability: shared.AttributeCharisma, Style: SpellStyleKnown, CantripsAtFirst: 2},
	ClassBarbarian:       {Caster: CasterNone},
	ClassFighter:         {Caster: CasterNone},
	ClassMonk:            {Caster: CasterNone},
	ClassRogue:           {Caster: CasterNone},
}

// CastingRuleFor looks up the rule for a class name. The bool is false when the
// name does not resolve to a known class.
func CastingRuleFor(name string) (CastingRule, bool) {
	key, ok := ParseClass(name)
	if !ok {
		return CastingRule{}, false
	}

	rule, ok := castingRules[key]
	return rule, ok
}

// IsCaster reports whether the rule grants any spellcasting
func (r CastingRule) IsCaster() bool {
	return r.Caster != CasterNone && r.Caster != ""
}

// Cantrips returns the cantrip allotment at the given class level. Classes
// without cantrips at first level never gain any.
func (r CastingRule) Cantrips(level int) int {
	if r.CantripsAtFirst == 0 || level < 1 {
		return 0
	}

	count := r.CantripsAtFirst
	if level >= 4 {
		count++
	}
	if level >= 10 {
		count++
	}

	return count
}

// Spells returns the prepared or known spell allotment at the given class level
// for a character whose casting ability modifier is abilityMod.
func (r CastingRule) Spells(level, abilityMod int) int {
	if !r.IsCaster() || level < 1 {
		return 0
	}

	switch {
	case r.Style == SpellStylePrepared:
		return max(1, abilityMod+level)
	case r.Caster == CasterWarlock:
		return WarlockSpellsKnown(level)
	case r.Style == SpellStyleKnown:
		return min(MaxSpellsKnown, level+1)
	default:
		return 0
	}
}

// CasterLevel returns the contribution of a class level to the shared slot
// table. Warlocks contribute nothing, pact magic is tracked on its own.
func (r CastingRule) CasterLevel(level int) int {
	switch r.Caster {
	case CasterFull:
		return level
	case CasterHalf:
		return level / 2
	case CasterThird:
		return level / 3
	default:
		return 0
	}
}
