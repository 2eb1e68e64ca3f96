package engine

// OutputRecord is one structured result or error emitted by a pipeline. The
// sink is externally owned; the engine only appends.
type OutputRecord struct {
	Command   string
	Timestamp int64
	Error     string
	Payload   any
}

// Sink collects pipeline output.
type Sink interface {
	Append(rec OutputRecord)
}

// Collector is the in-memory Sink used by the scenario runner and tests.
type Collector struct {
	records []OutputRecord
}

func (c *Collector) Append(rec OutputRecord) {
	c.records = append(c.records, rec)
}

func (c *Collector) Records() []OutputRecord {
	return c.records
}

func (e *Engine) emitError(command string, timestamp int64, description string) {
	e.out.Append(OutputRecord{Command: command, Timestamp: timestamp, Error: description})
}
