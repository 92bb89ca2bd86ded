package ports

// Summary is the part of a configuration-management run summary the staleness check needs.
type Summary struct {
	LastRun int64
	Failed  bool
}

type SummaryReader interface {
	Read(path string) (Summary, error)
}
