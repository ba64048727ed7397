package apitype

// Command is a message sent over the event bus. Throttled commands may be
// coalesced by receivers that only care about the latest value.
type Command interface {
	IsThrottled() bool
}

type Throttled struct {
}

type NotThrottled struct {
}

func (s *Throttled) IsThrottled() bool {
	return true
}

func (s *NotThrottled) IsThrottled() bool {
	return false
}
