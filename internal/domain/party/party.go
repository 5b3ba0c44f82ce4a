package party

import "errors"

const MaxPartySize = 20

var (
	ErrNegativeCount = errors.New("adults and kids cannot be negative")
	ErrEmptyParty    = errors.New("party must have at least one person")
	ErrPartyTooLarge = errors.New("party is too large")
)

// Party is the head count a boat brings to a sauna session.
type Party struct {
	adults int
	kids   int
}

func New(adults, kids int) (Party, error) {
	if adults < 0 || kids < 0 {
		return Party{}, ErrNegativeCount
	}
	if adults+kids == 0 {
		return Party{}, ErrEmptyParty
	}
	if adults+kids > MaxPartySize {
		return Party{}, ErrPartyTooLarge
	}
	return Party{adults: adults, kids: kids}, nil
}

func Reconstruct(adults, kids int) Party {
	return Party{adults: adults, kids: kids}
}

func (p Party) Adults() int { return p.adults }
func (p Party) Kids() int   { return p.kids }
func (p Party) Total() int  { return p.adults + p.kids }

func (p Party) Add(other Party) Party {
	return Party{adults: p.adults + other.adults, kids: p.kids + other.kids}
}
