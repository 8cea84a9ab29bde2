package shared

type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeConstitution Attribute = "constitution"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

// attributeAliases is keyed by NormalizeKey output
var attributeAliases = map[string]Attribute{
	"str": AttributeStrength, "strength": AttributeStrength, "fue": AttributeStrength, "fuerza": AttributeStrength,
	"dex": AttributeDexterity, "dexterity": AttributeDexterity, "des": AttributeDexterity, "destreza": AttributeDexterity,
	"con": AttributeConstitution, "constitution": AttributeConstitution, "constitucion": AttributeConstitution,
	"int": AttributeIntelligence, "intelligence": AttributeIntelligence, "inteligencia": AttributeIntelligence,
	"wis": AttributeWisdom, "wisdom": AttributeWisdom, "sab": AttributeWisdom, "sabiduria": AttributeWisdom,
	"cha": AttributeCharisma, "charisma": AttributeCharisma, "car": AttributeCharisma, "carisma": AttributeCharisma,
}

// ParseAttribute accepts full names, three letter abbreviations and the Spanish
// forms. Unknown input returns AttributeNone and false.
func ParseAttribute(s string) (Attribute, bool) {
	a, ok := attributeAliases[NormalizeKey(s)]
	return a, ok
}

func (a Attribute) Short() string {
	if len(a) < 3 {
		return string(a)
	}
	return string(a[:3])
}
