package model

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	StatusExpired    Status = "EXPIRED"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusExpired},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusExpired},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled, StatusExpired},
}

// InactiveStatuses never occupy a room.
var InactiveStatuses = []Status{StatusCancelled, StatusExpired}

func ParseStatus(value string) (Status, bool) {
	status := Status(value)

	switch status {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusExpired:
		return status, true
	default:
		return "", false
	}
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether a reservation in this status holds its room.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != StatusExpired
}

func (s Status) IsTerminal() bool {
	_, open := transitions[s]

	return !open
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}

	return false
}
