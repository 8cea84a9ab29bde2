package rulebook

import (
	"github.com/KirkDiggler/charsheet/internal/domain/shared"
)

// ClassKey identifies a class the rules tables know about
type ClassKey string

const (
	ClassUnknown         ClassKey = ""
	ClassArtificer       ClassKey = "artificer"
	ClassBarbarian       ClassKey = "barbarian"
	ClassBard            ClassKey = "bard"
	ClassCleric          ClassKey = "cleric"
	ClassDruid           ClassKey = "druid"
	ClassFighter         ClassKey = "fighter"
	ClassMonk            ClassKey = "monk"
	ClassPaladin         ClassKey = "paladin"
	ClassRanger          ClassKey = "ranger"
	ClassRogue           ClassKey = "rogue"
	ClassSorcerer        ClassKey = "sorcerer"
	ClassWarlock         ClassKey = "warlock"
	ClassWizard          ClassKey = "wizard"
	ClassEldritchKnight  ClassKey = "eldritch-knight"
	ClassArcaneTrickster ClassKey = "arcane-trickster"
)

// Classes lists the known classes in display order
var Classes = []ClassKey{
	ClassArtificer, ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter, ClassMonk,
	ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer, ClassWarlock, ClassWizard,
	ClassEldritchKnight, ClassArcaneTrickster,
}

// classAliases maps NormalizeKey output to a class. English keys are added in init.
var classAliases = map[string]ClassKey{
	"artifice":                ClassArtificer,
	"barbaro":                 ClassBarbarian,
	"bardo":                   ClassBard,
	"clerigo":                 ClassCleric,
	"druida":                  ClassDruid,
	"guerrero":                ClassFighter,
	"monje":                   ClassMonk,
	"explorador":              ClassRanger,
	"guardabosques":           ClassRanger,
	"picaro":                  ClassRogue,
	"hechicero":               ClassSorcerer,
	"brujo":                   ClassWarlock,
	"mago":                    ClassWizard,
	"caballeroarcano":         ClassEldritchKnight,
	"fightereldritchknight":   ClassEldritchKnight,
	"guerrerocaballeroarcano": ClassEldritchKnight,
	"embaucadorarcano":        ClassArcaneTrickster,
	"roguearcanetrickster":    ClassArcaneTrickster,
	"picaroembaucadorarcano":  ClassArcaneTrickster,
}

func init() {
	for _, c := range Classes {
		classAliases[shared.NormalizeKey(string(c))] = c
	}
}

// ParseClass resolves a class name in English or Spanish, any case, with or
// without diacritics. Unknown names return ClassUnknown and false.
func ParseClass(name string) (ClassKey, bool) {
	key, ok := classAliases[shared.NormalizeKey(name)]
	return key, ok
}

func (c ClassKey) String() string {
	return string(c)
}
