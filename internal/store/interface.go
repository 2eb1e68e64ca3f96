package store

// Repository is the write-mostly journal: a finished run's output records are
// exported for audit, never read back into the engine.
type Repository interface {
	CreateRun(id, scenario string, startedAt int64) error
	AppendEvents(runID string, events []Event) error

	GetRun(id string) (*Run, error)
	ListRuns(limit int) ([]*Run, error)
	GetEventsByRun(runID string) ([]*Event, error)

	Close() error
}
