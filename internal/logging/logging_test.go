package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_WarnLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()), "expected no-op logger")

	var buf bytes.Buffer
	log := New(&buf, true)
	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}
