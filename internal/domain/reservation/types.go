package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CancelReason is a result value, not an error: callers map it to a message.
type CancelReason string

const (
	ReasonNone             CancelReason = ""
	ReasonTooLate          CancelReason = "too_late"
	ReasonAlreadyStarted   CancelReason = "already_started"
	ReasonAlreadyCancelled CancelReason = "already_cancelled"
	ReasonNotActive        CancelReason = "not_active"
)

func (r CancelReason) String() string {
	return string(r)
}
