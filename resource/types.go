package resource

import "io"

// Handle is an opaque reference to a tracked value.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Kind classifies tracked values.
type Kind uint8

const (
	KindOther Kind = iota
	KindStream
	KindFile
)

var kindNames = [...]string{
	KindOther:  "other",
	KindStream: "stream",
	KindFile:   "file",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// EventType identifies lifecycle notifications.
type EventType uint8

const (
	EventTracked EventType = iota
	EventReleased
)

func (e EventType) String() string {
	switch e {
	case EventTracked:
		return "tracked"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event represents a lifecycle notification. Err is the result of Close
// for EventReleased.
type Event struct {
	Value  io.Closer
	Err    error
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives lifecycle notifications.
type Observer interface {
	OnResourceEvent(Event)
}
