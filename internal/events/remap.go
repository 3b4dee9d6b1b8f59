package events

import "time"

// RemapStart is emitted before a response payload is remapped against a
// compiled document.
type RemapStart struct {
	Operation string
	RootField string
}

// RemapFinish is emitted after remapping completes.
type RemapFinish struct {
	Operation string
	RootField string
	Duration  time.Duration
}
