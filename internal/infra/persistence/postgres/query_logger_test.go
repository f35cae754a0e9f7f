package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"marketplace/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRecordingLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func statement(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed query", err: errors.New("connection reset"), want: "Postgres query failed"},
		{name: "missing record is quiet", err: gorm.ErrRecordNotFound},
		{name: "cancelled poll is quiet", err: errors.Wrap(context.Canceled, "poll")},
		{name: "slow query", elapsed: time.Second, want: "Slow Postgres query"},
		{name: "routine query hidden outside debug"},
		{name: "routine query in debug", debug: true, want: "level=DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newRecordingLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newQueryLogger(base, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement(`SELECT * FROM "documents"`), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestQueryLogger_SilentAndThreshold(t *testing.T) {
	base, buf := newRecordingLogger()
	cfg := &config.Config{DocStore: &config.DocStoreConfig{SlowQueryThreshold: 2 * time.Second}}

	l := newQueryLogger(base, cfg)
	l.Trace(context.Background(), time.Now().Add(-time.Second), statement("SELECT 1"), nil)
	assert.Empty(t, buf.String(), "below the configured threshold")

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), statement("SELECT 1"), errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestClipStatement(t *testing.T) {
	short := "SELECT 1"
	assert.Equal(t, short, clipStatement(short))

	long := strings.Repeat("é", maxLoggedStatement)
	clipped := clipStatement(long)
	assert.True(t, strings.HasSuffix(clipped, "...(truncated)"))
	assert.LessOrEqual(t, len(clipped), maxLoggedStatement+len("...(truncated)"))
}
