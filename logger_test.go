package configfile_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/AndrewDonelson/configfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	mu     sync.Mutex
	debugs []string
}

func (l *captureLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, msg)
}

func (l *captureLogger) Info(msg string, _ ...any)  {}
func (l *captureLogger) Warn(msg string, _ ...any)  {}
func (l *captureLogger) Error(msg string, _ ...any) {}
func (l *captureLogger) Debug(msg string, _ ...any) { l.log(msg) }

// Not parallel: SetLogger swaps package state.
func TestSetLogger(t *testing.T) {
	logged := &captureLogger{}
	configfile.SetLogger(logged)
	defer configfile.SetLogger(nil)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, configfile.Store(exampleConfig(), path))
	_, err := configfile.Load[Config](path)
	require.NoError(t, err)

	assert.Contains(t, logged.debugs, "config stored")
	assert.Contains(t, logged.debugs, "config loaded")
}
