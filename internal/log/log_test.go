// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	l := &log.Logger{Handler: &CustomHandler{Writer: &buf}, Level: log.DebugLevel}

	l.WithError(errors.New("disk full")).Warnf("using uncached word list for %s", "words.txt")

	out := buf.String()
	assert.Contains(t, out, " W using uncached word list for words.txt")
	assert.Contains(t, out, "error=disk full")
	assert.Contains(t, out, time.Now().Format("2006-01-02"))
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"", log.WarnLevel},
		{"debug", log.DebugLevel},
		{"ERROR", log.ErrorLevel},
		{"bogus", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv("PALINDROMES_LOG", tt.env)
			InitLogger()
			assert.Equal(t, tt.want, log.Log.(*log.Logger).Level)
		})
	}
}
