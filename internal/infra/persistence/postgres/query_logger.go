package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond

	// JSONB payloads can be large; statements are clipped in logs.
	maxLoggedStatement = 1024
)

// queryLogger routes gorm output to slog. Routine statements go to debug,
// since polling subscriptions issue one every poll interval.
type queryLogger struct {
	logger *slog.Logger
	mode   logger.LogLevel
	slow   time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{
		logger: base,
		mode:   logger.Warn,
		slow:   defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.mode = logger.Info
	}
	if cfg.DocStore != nil && cfg.DocStore.SlowQueryThreshold > 0 {
		l.slow = cfg.DocStore.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(mode logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.mode = mode

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.mode < enabledAt {
		return
	}

	l.logger.LogAttrs(ctx, level, "[DocStore] gorm: "+fmt.Sprintf(msg, args...))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.mode == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	stmt, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", clipStatement(stmt)),
	}, extra...)
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) classify(err error, elapsed time.Duration) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && l.mode >= logger.Error && !isExpectedQueryError(err):
		return slog.LevelError, "[DocStore] Postgres query failed", []slog.Attr{slog.Any("error", err)}, true
	case l.slow > 0 && elapsed > l.slow && l.mode >= logger.Warn:
		return slog.LevelWarn, "[DocStore] Slow Postgres query", []slog.Attr{slog.Duration("threshold", l.slow)}, true
	case l.mode >= logger.Info:
		return slog.LevelDebug, "[DocStore] Postgres query", nil, true
	default:
		return 0, "", nil, false
	}
}

// isExpectedQueryError covers misses the store reports as ErrDocumentNotFound
// and polls cancelled by Unsubscribe.
func isExpectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, context.Canceled)
}

func clipStatement(stmt string) string {
	if len(stmt) <= maxLoggedStatement {
		return stmt
	}

	return strings.ToValidUTF8(stmt[:maxLoggedStatement], "") + "...(truncated)"
}
