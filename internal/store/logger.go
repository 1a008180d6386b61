package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	dbLogger "gorm.io/gorm/logger"
)

var _ dbLogger.Interface = (*logger)(nil)

// logger routes gorm output through zap. Statements are traced at debug.
type logger struct {
	logger *zap.Logger
	level  dbLogger.LogLevel
}

func newLogger(zlog *zap.Logger) *logger {
	return &logger{logger: zlog.Named("db"), level: dbLogger.Warn}
}

func (l *logger) LogMode(level dbLogger.LogLevel) dbLogger.Interface {
	return &logger{logger: l.logger, level: level}
}

func (l *logger) Info(ctx context.Context, s string, args ...any) {
	if l.level >= dbLogger.Info {
		l.logger.Info(fmt.Sprintf(s, args...))
	}
}

func (l *logger) Warn(ctx context.Context, s string, args ...any) {
	if l.level >= dbLogger.Warn {
		l.logger.Warn(fmt.Sprintf(s, args...))
	}
}

func (l *logger) Error(ctx context.Context, s string, args ...any) {
	if l.level >= dbLogger.Error {
		l.logger.Error(fmt.Sprintf(s, args...))
	}
}

func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level == dbLogger.Silent {
		return
	}

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		l.logger.Error("query failed",
			zap.String("sql", sql),
			zap.Int64("rows_affected", rows),
			zap.Duration("elapsed", time.Since(begin)),
			zap.Error(err))
		return
	}

	if ce := l.logger.Check(zap.DebugLevel, "trace"); ce != nil {
		sql, rows := fc()
		ce.Write(
			zap.String("sql", sql),
			zap.Int64("rows_affected", rows),
			zap.Duration("elapsed", time.Since(begin)))
	}
}
