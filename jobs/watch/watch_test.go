package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcheck/infra/logger"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate(), "empty interval disables the watcher")
	assert.NoError(t, Config{Every: "15m"}.Validate())
	assert.Error(t, Config{Every: "soon"}.Validate())
}

func TestNewRequiresInterval(t *testing.T) {
	_, err := New(Config{}, logger.NopLogger{}, func() {})
	assert.Error(t, err)

	_, err = New(Config{Every: "not-a-duration"}, logger.NopLogger{}, func() {})
	assert.Error(t, err)
}

func TestWatcherRuns(t *testing.T) {
	ran := make(chan struct{}, 1)
	w, err := New(Config{Every: "10ms"}, logger.NopLogger{}, func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	w.Start()
	defer w.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never ran")
	}
}
