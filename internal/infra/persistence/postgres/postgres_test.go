package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"testing"
	"time"

	"saleslens/config"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	prev := sql.DBStats{WaitCount: 2, WaitDuration: time.Millisecond}

	logPoolWait(context.Background(), log, prev, prev)
	assert.Empty(t, buf.String())

	logPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 4, WaitDuration: 101 * time.Millisecond, InUse: 3})
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "waits=2")
	assert.Contains(t, out, "avg_wait=50ms")
	assert.Contains(t, out, "in_use=3")

	buf.Reset()
	logPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 3, WaitDuration: 2 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	l := newGormSlogLogger(bufferLogger(&buf), cfg)
	stmt := func() (string, int64) { return "SELECT 1", 1 }

	// fast successful statements are not logged outside debug
	l.Trace(context.Background(), time.Now(), stmt, nil)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), stmt, assert.AnError)
	assert.Contains(t, buf.String(), "Postgres query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), stmt, &pq.Error{Code: pgUniqueViolation})
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now().Add(-time.Second), stmt, nil)
	assert.Contains(t, buf.String(), "Postgres slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), stmt, assert.AnError)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_DebugLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(bufferLogger(&buf), cfg)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Contains(t, buf.String(), "Postgres query")
}

func TestTruncateSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1", truncateSQL("SELECT 1"))

	long := "INSERT INTO sales_records VALUES " + strings.Repeat("(1),", 400)
	got := truncateSQL(long)
	assert.True(t, strings.HasPrefix(got, long[:maxLoggedSQLLength]))
	assert.Contains(t, got, "bytes)")
}
