package reservation

// Status is derived from BookedAt and the duration label on every read and is
// never persisted.
type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired:
		return true
	default:
		return false
	}
}
