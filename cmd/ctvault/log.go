// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/ctvault/ctvault/ctv"
	"github.com/ctvault/ctvault/vault"
)

// logWriter implements an io.Writer that outputs to standard error and
// to the log rotator when one has been initialized.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var (
	backendLog = btclog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed
	// on application shutdown.
	logRotator *rotator.Rotator

	log      = backendLog.Logger("MAIN")
	ctvLog   = backendLog.Logger("CTV")
	vaultLog = backendLog.Logger("VALT")
)

func init() {
	ctv.UseLogger(ctvLog)
	vault.UseLogger(vaultLog)
}

// initLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// setLogLevels sets the logging level for every subsystem.
func setLogLevels(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}
	for _, logger := range []btclog.Logger{log, ctvLog, vaultLog} {
		logger.SetLevel(lvl)
	}
	return nil
}
