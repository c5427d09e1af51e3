package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=dbg a=1",
		"level=INFO msg=inf b=2",
		"level=WARN msg=wrn c=3",
		"level=ERROR msg=err d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_WithAndContextAttributes(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelInfo)

	ctx := ContextWith(context.Background(), "command", "goals")
	ctx = ContextWith(ctx, "view", "/goals")
	log.With("component", "api").Info(ctx, "hello", "k", "v")

	assert.Contains(t, buf.String(), "msg=hello component=api k=v command=goals view=/goals")
}

func TestSlogLogger_DisabledLevelSkipped(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelWarn)

	log.Info(ContextWith(context.Background(), "x", 1), "quiet")
	assert.Empty(t, buf.String())
}

func TestContextWith_DoesNotLeakIntoParent(t *testing.T) {
	parent := ContextWith(context.Background(), "a", 1)
	_ = ContextWith(parent, "b", 2)

	assert.Equal(t, []any{"a", 1}, fromContext(parent))
	assert.Nil(t, fromContext(context.Background()))
	assert.Equal(t, parent, ContextWith(parent))
}
