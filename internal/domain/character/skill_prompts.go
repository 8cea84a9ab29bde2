package character

import "github.com/KirkDiggler/charsheet/internal/domain/shared"

// ResolveSkillPrompts dequeues the head prompt once enough of its options are
// proficient. Only the head is inspected; a satisfied prompt further back waits
// until everything ahead of it resolves. Returns true when the queue changed.
func (d *Document) ResolveSkillPrompts() bool {
	if len(d.SkillPrompts) == 0 {
		return false
	}

	head := d.SkillPrompts[0]
	if head.satisfiedBy(d.SkillProficiencies) < head.RequiredCount {
		return false
	}

	d.SkillPrompts = append(d.SkillPrompts[:0:0], d.SkillPrompts[1:]...)
	return true
}

// PendingSkillPrompt returns the head of the queue, nil when empty
func (d *Document) PendingSkillPrompt() *SkillPrompt {
	if len(d.SkillPrompts) == 0 {
		return nil
	}
	return &d.SkillPrompts[0]
}

func (p SkillPrompt) satisfiedBy(proficient map[shared.Skill]bool) int {
	count := 0
	for _, option := range p.AllowedOptions {
		if proficient[option] {
			count++
		}
	}
	return count
}
