package store

// Run is one recorded simulation run.
type Run struct {
	ID        string
	Scenario  string
	StartedAt int64
}

// Event is one output record of a run, in emission order. Payload holds the
// JSON-encoded command result; Error is empty for successful commands.
type Event struct {
	ID        int64
	RunID     string
	Seq       int
	Command   string
	Timestamp int64
	Error     string
	Payload   string
}
