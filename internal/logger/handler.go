package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/apex/log"
)

var levelToStrings = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

// handler writes "[LEVEL] message key=value ..." lines with fields sorted by name.
type handler struct {
	mu     sync.Mutex
	writer io.Writer
}

func (h *handler) setOutput(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writer = w
}

// HandleLog implements log.Handler.
func (h *handler) HandleLog(e *log.Entry) error {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, "[%s] %s", levelToStrings[e.Level], e.Message)
	for _, name := range names {
		_, _ = fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, b.String())
	return err
}
