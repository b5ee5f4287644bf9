package app

import (
	"errors"
	"sync"
)

// Mode fixes whether a form creates a new entity or edits an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

var ErrFormClosed = errors.New("form is closed")

// SubmitResult is the outcome of one submit: OK closes the form, Errors
// means validation blocked the call, Err carries the store's failure.
type SubmitResult struct {
	OK     bool
	Errors FieldErrors
	Err    error
}

// lifecycle is the mode/open state shared by the entity forms. gen changes
// on every reset or close so a fetch that resolves late can tell it is stale.
type lifecycle struct {
	mu      sync.Mutex
	mode    Mode
	id      int64
	gen     uint64
	closed  bool
	onClose func()
}

func (l *lifecycle) Mode() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

func (l *lifecycle) ID() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.id
}

func (l *lifecycle) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Close unmounts the form; late fetch results are dropped afterwards.
func (l *lifecycle) Close() {
	l.mu.Lock()
	l.closed = true
	l.gen++
	l.mu.Unlock()
}

// finish closes after a successful submit and signals the parent.
func (l *lifecycle) finish() {
	l.Close()
	if l.onClose != nil {
		l.onClose()
	}
}
