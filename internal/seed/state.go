package seed

// State is a stage of a seeding run. A run moves forward through the
// stages in order; any failure jumps straight to Closed.
type State int

const (
	Idle State = iota
	Connected
	CollectionReset
	Inserted
	Reported
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connected:
		return "connected"
	case CollectionReset:
		return "collection_reset"
	case Inserted:
		return "inserted"
	case Reported:
		return "reported"
	case Closed:
		return "closed"
	}
	return "unknown"
}
