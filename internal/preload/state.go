package preload

type State int32

const (
	NotStarted State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Complete:
		return "complete"
	default:
		return "not_started"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
