package campaign

// Status is the lifecycle state of a campaign as reported by the backend.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses returns every known status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusPending, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
