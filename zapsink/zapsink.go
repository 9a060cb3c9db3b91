// Package zapsink reports violated assumptions as structured zap log entries.
//
//	restore := irrelevant.SetSink(zapsink.New(logger))
//	defer restore()
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sirkon/irrelevant"
)

// Message of every entry.
const Message = "assumption violated"

// New returns a sink logging warnings for Warn and Debug directives and errors for Abort ones.
// Nil logger means no-op logging.
func New(logger *zap.Logger) irrelevant.Sink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &sink{logger: logger.WithOptions(zap.AddCallerSkip(3))}
}

type sink struct {
	logger *zap.Logger
}

func (s *sink) Report(v *irrelevant.Violation) {
	if v == nil {
		return
	}

	fields := []zap.Field{
		zap.String("file", v.Location.File),
		zap.Int("line", v.Location.Line),
		zap.String("reason", v.Reason),
		zap.Stringer("strength", v.Strength),
		zap.Stringer("variant", v.Variant),
	}
	if v.Location.Column > 0 {
		fields = append(fields, zap.Int("column", v.Location.Column))
	}
	if v.Detail != "" {
		fields = append(fields, zap.String("detail", v.Detail))
	}

	s.logger.Log(level(v.Strength), Message, fields...)
}

func level(s irrelevant.Strength) zapcore.Level {
	if s == irrelevant.StrengthAbort {
		return zapcore.ErrorLevel
	}

	return zapcore.WarnLevel
}
