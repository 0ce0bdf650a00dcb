// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns. To be used as a optional companion of the
// assert/check library.
package testt

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger returns a logger that records every entry at or above the
// level, and the recorded entries. Entries are also written to the
// test log when the test fails.
func Logger(t testing.TB, level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	t.Cleanup(func() {
		if !t.Failed() {
			return
		}
		for _, entry := range logs.All() {
			t.Logf("%s %s %v", entry.Level, entry.Message, entry.ContextMap())
		}
	})
	return zap.New(core), logs
}

// WriteFile writes contents to a file named name in a temporary
// directory owned by the test, and returns its path.
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
