package models

// Status represents an issue status row
type Status struct {
	ID       int
	Name     string
	Closed   bool
	CSSClass string // "error" for closed statuses, "success" for open ones
}

// StatusCSSClass derives the css class for a status
func StatusCSSClass(closed bool) string {
	if closed {
		return "error"
	}
	return "success"
}

// StatusState selects a partition of the status table
type StatusState int

const (
	StateOpen StatusState = iota
	StateClosed
	StateAll
)

// ParseStatusState converts "open", "closed" or "all" (also "0"/"1") to a StatusState
func ParseStatusState(s string) (StatusState, bool) {
	switch s {
	case "open", "0":
		return StateOpen, true
	case "closed", "1":
		return StateClosed, true
	case "all", "":
		return StateAll, true
	}
	return StateAll, false
}

func (s StatusState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "all"
	}
}
