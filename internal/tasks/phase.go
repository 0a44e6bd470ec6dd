package tasks

// Phase names a pipeline step in log entries.
type Phase int

const (
	Read Phase = iota
	Extract
	Compare
)

func (p Phase) String() string {
	switch p {
	case Read:
		return "read"
	case Extract:
		return "extract"
	case Compare:
		return "compare"
	default:
		return "unknown"
	}
}
