package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
)

// Writer prints operator notifications as single lines, the terminal
// counterpart of a toast.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer { return &Writer{out: out} }

func (w *Writer) Success(msg string) { w.line("ok", msg) }

func (w *Writer) Error(msg string) { w.line("error", msg) }

func (w *Writer) line(kind, msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintf(w.out, "[%s] %s\n", kind, msg); err != nil {
		log.Error().Err(err).Msg("write notification failed")
	}
}

// Log sends notifications to the structured log only. Used by the console
// server, where the HTTP response carries the outcome.
type Log struct{}

func (Log) Success(msg string) { log.Info().Str("notice", "success").Msg(msg) }

func (Log) Error(msg string) { log.Warn().Str("notice", "error").Msg(msg) }
