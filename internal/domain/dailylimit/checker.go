package dailylimit

import "errors"

var ErrLimitReached = errors.New("boat already has a sauna commitment on this island today")

// Result answers whether a boat may take another commitment on a given island and day.
type Result struct {
	CanReserve               bool
	HasIndividualReservation bool
	HasSharedParticipation   bool
	Existing                 Commitment
}

// Evaluate applies the one-commitment-per-boat-per-island-per-day rule.
// An individual reservation takes precedence over a shared participation as Existing.
func Evaluate(commitments []Commitment) Result {
	res := Result{CanReserve: true}
	for _, c := range commitments {
		switch v := c.(type) {
		case Individual:
			if !res.HasIndividualReservation {
				res.Existing = v
			}
			res.HasIndividualReservation = true
		case Shared:
			if res.Existing == nil {
				res.Existing = v
			}
			res.HasSharedParticipation = true
		}
	}
	res.CanReserve = !res.HasIndividualReservation && !res.HasSharedParticipation
	return res
}

// Err returns ErrLimitReached when the boat cannot reserve.
func (r Result) Err() error {
	if r.CanReserve {
		return nil
	}
	return ErrLimitReached
}
