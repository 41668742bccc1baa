package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

type Fields map[string]any

var std = log.New(os.Stderr, "", 0)

// SetOutput redirects the JSON lines, mainly for tests.
func SetOutput(w io.Writer) { std.SetOutput(w) }

func output(level, msg string, fields Fields) {
	line := make(Fields, len(fields)+3)
	for k, v := range fields {
		line[k] = v
	}
	line["level"] = level
	line["ts"] = time.Now().UTC().Format(time.RFC3339)
	line["msg"] = msg
	b, err := json.Marshal(line)
	if err != nil {
		std.Printf("%s: %s (%v)", level, msg, fields)
		return
	}
	std.Println(string(b))
}

func Info(msg string, fields Fields) {
	output("info", msg, fields)
}

// Error logs msg with err under the "error" key.
func Error(msg string, err error, fields Fields) {
	output("error", msg, withErr(fields, err))
}

// Fatal logs like Error and exits with status 1.
func Fatal(msg string, err error, fields Fields) {
	output("fatal", msg, withErr(fields, err))
	os.Exit(1)
}

func withErr(fields Fields, err error) Fields {
	if err == nil {
		return fields
	}
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
