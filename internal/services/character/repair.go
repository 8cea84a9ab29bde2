package character

import (
	"context"
	"log"

	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
)

// RepairCharacter loads a character through the tolerant decoder, runs the
// normalizer over it and writes the result back. Documents that needed no
// repair are still rewritten so they pick up the current envelope version.
func (s *service) RepairCharacter(ctx context.Context, characterID string) (*CharacterOutput, error) {
	record, err := s.load(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if record.Repaired {
		log.Printf("Repairing character %s (%s), skipped fields: %v", record.Document.Name, characterID, record.Skipped)
	}

	out, err := s.engine.Normalize(record.Document)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to normalize character '%s'", characterID).
			WithMeta("character_id", characterID)
	}

	if err := s.repository.Update(ctx, out.Document); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save repaired character '%s'", characterID).
			WithMeta("character_id", characterID)
	}

	result := toOutput(out)
	result.Repaired = record.Repaired
	result.Skipped = record.Skipped
	return result, nil
}
