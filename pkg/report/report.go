// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 🖥️ ConsoleDestination selects the console sink in the log option
const ConsoleDestination = "console"

// 🔌 Sink is where matched paths and user-facing diagnostics are written
type Sink interface {
	// 📝 Emit durably surfaces one text message before returning
	Emit(msg string) error
}

// 🏭 NewSink selects the sink for the given log destination. Anything other
// than the literal "console" is treated as an append-file path.
func NewSink(destination string, console io.Writer) Sink {
	if destination == ConsoleDestination {
		return &ConsoleSink{console: console}
	}
	return &FileSink{path: destination}
}

// 🖥️ ConsoleSink writes messages to the console verbatim, with no added
// newline. Successive matched paths therefore concatenate, same as the
// direct-print behavior callers rely on.
type ConsoleSink struct {
	console io.Writer
}

func (s *ConsoleSink) Emit(msg string) error {
	if _, err := fmt.Fprint(s.console, msg); err != nil {
		return errors.Errorf("writing to console: %w", err)
	}
	return nil
}

// 📄 FileSink appends one message plus newline per call. Each call performs
// its own open/write/close cycle; no handle is kept across calls.
type FileSink struct {
	path string
}

func (s *FileSink) Emit(msg string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Errorf("opening log file %s: %w", s.path, err)
	}

	if _, err := f.WriteString(msg + "\n"); err != nil {
		f.Close()
		return errors.Errorf("writing to log file %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing log file %s: %w", s.path, err)
	}
	return nil
}
