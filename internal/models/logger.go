package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// gormLogger writes gorm's log output through zerolog so that database logs
// share the format and level filtering of the rest of the application.
type gormLogger struct {
	log zerolog.Logger
}

// LogMode is a no-op, the zerolog level decides what gets written.
func (l *gormLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *gormLogger) Warn(_ context.Context, format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *gormLogger) Error(_ context.Context, format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	// Missing records are reported to the client, they are not query errors
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		l.log.Error().Err(err).Str("sql", sql).Dur("duration", time.Since(begin)).Msg("query error")
		return
	}

	l.log.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", time.Since(begin)).Msg("query")
}
