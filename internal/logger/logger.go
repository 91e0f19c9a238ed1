package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"
)

// JSONLogger turns each log line into a JSON object. It is meant to be
// installed with log.SetOutput.
type JSONLogger struct {
	Instance string
	Out      io.Writer // defaults to stdout
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     "info",
		"instance":  l.Instance,
		"message":   strings.TrimRight(string(p), "\n"),
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return 0, err
	}

	if _, err := out.Write(append(jsonBytes, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
