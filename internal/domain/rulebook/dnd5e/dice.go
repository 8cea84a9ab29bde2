package rulebook

import (
	"fmt"
	"strconv"
	"strings"
)

// dieLadder is the step-up order for a weapon wielded in two hands. The last
// size steps to two dice of size 6.
var dieLadder = []int{4, 6, 8, 10, 12}

// Die is a parsed damage die expression such as "1d8" or "d6"
type Die struct {
	Count int
	Size  int
	// implicit is true when the count was omitted, "d8" rather than "1d8"
	implicit bool
}

// ParseDie parses "NdX" or "dX". The bool is false for anything else.
func ParseDie(expr string) (Die, bool) {
	s := strings.ToLower(strings.TrimSpace(expr))
	idx := strings.IndexByte(s, 'd')
	if idx < 0 {
		return Die{}, false
	}

	size, err := strconv.Atoi(s[idx+1:])
	if err != nil || size <= 0 {
		return Die{}, false
	}

	if idx == 0 {
		return Die{Count: 1, Size: size, implicit: true}, true
	}

	count, err := strconv.Atoi(s[:idx])
	if err != nil || count <= 0 {
		return Die{}, false
	}

	return Die{Count: count, Size: size}, true
}

func (d Die) String() string {
	if d.implicit && d.Count == 1 {
		return fmt.Sprintf("d%d", d.Size)
	}
	return fmt.Sprintf("%dd%d", d.Count, d.Size)
}

// StepUp returns the next die on the ladder d4 d6 d8 d10 d12 2d6. Sizes off the
// ladder are returned unchanged.
func (d Die) StepUp() Die {
	for i, size := range dieLadder {
		if size != d.Size {
			continue
		}
		if i == len(dieLadder)-1 {
			return Die{Count: d.Count * 2, Size: 6}
		}
		return Die{Count: d.Count, Size: dieLadder[i+1], implicit: d.implicit}
	}
	return d
}

// StepUpDie applies StepUp to a die expression. Unparseable input is returned as is.
func StepUpDie(expr string) string {
	d, ok := ParseDie(expr)
	if !ok {
		return expr
	}
	return d.StepUp().String()
}

// DamageExpression formats a die with a flat modifier: "1d8", "1d8+3", "1d8-1"
func DamageExpression(die string, modifier int) string {
	switch {
	case modifier > 0:
		return fmt.Sprintf("%s+%d", die, modifier)
	case modifier < 0:
		return fmt.Sprintf("%s%d", die, modifier)
	default:
		return die
	}
}
