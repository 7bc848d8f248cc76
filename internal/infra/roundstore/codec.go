package roundstore

import (
	"encoding/json"

	"github.com/aalvaropc/forecounter/internal/domain"
)

// Encode renders the persisted layout:
// {"holes":[{"holeNumber":1,"strokes":0}],"startedAt":"<RFC 3339 nano>"}
func Encode(round domain.Round) ([]byte, error) {
	b, err := json.MarshalIndent(round, "", "  ")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "roundstore.encode",
			Kind: domain.KindCorruptData,
			Err:  err,
		}
	}
	return b, nil
}

// Decode parses and validates a persisted round. Anything that is not a well-formed
// round is reported as KindCorruptData.
func Decode(b []byte) (domain.Round, error) {
	var round domain.Round
	if err := json.Unmarshal(b, &round); err != nil {
		return domain.Round{}, &domain.OpError{
			Op:   "roundstore.decode",
			Kind: domain.KindCorruptData,
			Err:  err,
		}
	}
	if err := round.Validate(); err != nil {
		return domain.Round{}, err
	}
	return round, nil
}
