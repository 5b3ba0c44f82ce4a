package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Sauna errors
	ErrSaunaNotFound         = errors.New("sauna not found")
	ErrBoatNotFound          = errors.New("boat not found")
	ErrNoSlotWithinLookahead = errors.New("no free slot within lookahead")

	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationConflict  = errors.New("reservation conflict")
	ErrDailyLimitReached    = errors.New("daily limit reached")
	ErrInsufficientLeadTime = errors.New("sauna cannot be heated by the requested start")
	ErrCannotCancel         = errors.New("reservation cannot be cancelled")

	// Shared reservation errors
	ErrSharedReservationNotFound = errors.New("shared reservation not found")
	ErrAlreadyParticipant        = errors.New("boat already participates")
	ErrNotParticipant            = errors.New("boat does not participate")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
