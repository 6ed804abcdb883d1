package coordinator

// State is a window's position in its lifecycle.
type State int

const (
	Uninitialized State = iota
	Created
	// ContentLoaded means a load has been started, not that it succeeded.
	ContentLoaded
	Visible
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Created:
		return "created"
	case ContentLoaded:
		return "content_loaded"
	case Visible:
		return "visible"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
