// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/nasutil/nasutil/nasaddr"
)

// logWriter implements an io.Writer that outputs to both the error output of
// the command and, when initialized, a log rotator.
type logWriter struct {
	out     io.Writer
	rotator *rotator.Rotator
}

// Write writes the data in p to the error output and the log rotator.
func (w *logWriter) Write(p []byte) (n int, err error) {
	w.out.Write(p)
	if w.rotator != nil {
		w.rotator.Write(p)
	}
	return len(p), nil
}

// log is the logger of the command itself.  It is replaced once the logging
// options are known.
var log = slog.Disabled

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.
func initLogRotator(logFile string) (*rotator.Rotator, error) {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, defaultLogRollKB, false, defaultMaxLogRoll)
	if err != nil {
		return nil, fmt.Errorf("failed to create file rotator: %w", err)
	}
	return r, nil
}

// initLogging creates the subsystem loggers according to the configured
// options and hands them to the packages that log.  The returned function
// disables the loggers again and closes the log file.
func (a *app) initLogging() (func(), error) {
	level, ok := slog.LevelFromString(a.cfg.DebugLevel)
	if !ok {
		return nil, fmt.Errorf("the specified debug level %q is invalid",
			a.cfg.DebugLevel)
	}

	w := &logWriter{out: a.stderr}
	if a.cfg.LogFile != "" {
		r, err := initLogRotator(a.cfg.LogFile)
		if err != nil {
			return nil, err
		}
		w.rotator = r
	}

	backend := slog.NewBackend(w)
	mainLog := backend.Logger("MAIN")
	nadrLog := backend.Logger("NADR")
	mainLog.SetLevel(level)
	nadrLog.SetLevel(level)
	log = mainLog
	nasaddr.UseLogger(nadrLog)

	return func() {
		log = slog.Disabled
		nasaddr.UseLogger(slog.Disabled)
		if w.rotator != nil {
			w.rotator.Close()
		}
	}, nil
}
