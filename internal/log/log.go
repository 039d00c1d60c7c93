// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// DefaultLevel keeps cache write failures visible without any setup.
const DefaultLevel = "WARN"

// InitLogger sets up Apex with a custom handler and a log level from the
// PALINDROMES_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("PALINDROMES_LOG"))
	if level == "" {
		level = DefaultLevel
	}
	log.SetHandler(&CustomHandler{Writer: os.Stderr})

	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.SetLevel(log.WarnLevel)
		log.Warnf("ignoring unknown PALINDROMES_LOG level %q", level)
		return
	}
	log.SetLevel(parsed)
}

// CustomHandler formats log messages and writes them to Writer. Logs go to
// stderr so they never mix with report output.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	_, err := fmt.Fprintf(h.Writer, "%s %.1s %s%s\n",
		timestamp.Format("2006-01-02 15:04:05"), level, e.Message, fields.String())
	return err
}
