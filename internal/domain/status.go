package domain

// Status is a monitoring plugin state. It renders as OK, WARN, CRIT or UNKNOWN.
type Status int

const (
	OK Status = iota
	Warning
	Critical
	Unknown
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARN"
	case Critical:
		return "CRIT"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code monitoring agents expect for s.
func (s Status) ExitCode() int {
	switch s {
	case OK, Warning, Critical:
		return int(s)
	default:
		return int(Unknown)
	}
}

// Verdict is a terminal status together with its human-readable message.
type Verdict struct {
	Message string
	Status  Status
}

// Line renders the verdict as "<LEVEL>: <message>".
func (v Verdict) Line() string {
	return v.Status.String() + ": " + v.Message
}

// Thresholds holds staleness limits in seconds.
type Thresholds struct {
	Warn int64
	Crit int64
}
