package events

import "time"

// CompileStart is emitted before a selection is compiled into a document.
type CompileStart struct {
	Operation string
	RootField string
	Model     string
}

// CompileFinish is emitted after compilation completes, whether or not the
// document validated.
type CompileFinish struct {
	Operation  string
	RootField  string
	Model      string
	ErrorCount int
	Duration   time.Duration
}
