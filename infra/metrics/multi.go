package metrics

// MultiSink fanouts validation outcomes to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCheckResults forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordCheckResults(records []CheckRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordCheckResults(records); err != nil {
			return err
		}
	}
	return nil
}
