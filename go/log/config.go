// Copyright 2026 The BQFlow Authors. All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log configures structured logging for the whole project on top of
// logrus.  Call InitLogger once at program start; packages then log through
// WithFields.
package log

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields is an alias of logrus.Fields.
type Fields = logrus.Fields

// Format selects the log line formatter.
type Format int

const (
	// TextFormatter is the stock logrus text formatter.
	TextFormatter Format = iota
	// OrderedTextFormatter prints fields sorted by key, which keeps log
	// lines stable for tests and for line-oriented tooling.
	OrderedTextFormatter
)

// InitLogger configures the global logger.  An empty logFileName logs to
// stdout; otherwise lines go to a size-rotated file.  The log level is read
// from BQFLOW_LOG_LEVEL and defaults to info.
func InitLogger(logFileName string, format Format) {
	if format == OrderedTextFormatter {
		logrus.SetFormatter(&orderedTextFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
	if logFileName != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   logFileName,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		})
	} else {
		logrus.SetOutput(os.Stdout)
	}
	level, err := logrus.ParseLevel(os.Getenv("BQFLOW_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// WithFields returns an entry of the global logger carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

type orderedTextFormatter struct{}

func (f *orderedTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "%s %s msg=%q", entry.Time.Format(time.RFC3339), entry.Level.String(), entry.Message)
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := entry.Data[k].(type) {
		case string:
			fmt.Fprintf(b, " %s=%q", k, v)
		default:
			fmt.Fprintf(b, " %s=%v", k, v)
		}
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
