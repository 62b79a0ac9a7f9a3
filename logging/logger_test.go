package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsNop(t *testing.T) {
	Set(nil)
	require.NotNil(t, L())
	assert.False(t, L().Core().Enabled(zapcore.ErrorLevel))
}

func TestSetCapturesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	L().Debug("asteroid destroyed", zap.Int("children", 2))

	entries := logs.FilterMessage("asteroid destroyed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["children"])
}

func TestInitLevels(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	l, err := Init(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = Init(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.Same(t, l, L())
}
