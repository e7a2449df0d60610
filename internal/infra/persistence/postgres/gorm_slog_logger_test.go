package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tours/config"
	deliverycontext "tours/internal/delivery/context"
	"tours/internal/errors"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String(), "fast queries are quiet outside debug")

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 2"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is not an error")

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 3"), errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "SELECT 3")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 4"), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugAndRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(newBufferLogger(&base), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-1"`)
	assert.Contains(t, scoped.String(), "GORM query")

	scoped.Reset()
	l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	assert.Empty(t, scoped.String())
}
