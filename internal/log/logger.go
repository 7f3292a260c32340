// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	settings settings
	level    zap.AtomicLevel
	zap      *zap.Logger
	childs   []*Logger
	mutex    *sync.Mutex // pointer for child loggers
}

// New creates a new logger.
// It can only be called once per writer.
// If you want to create more loggers with different settings for the
// same writer, child loggers can be created using the New(options) method,
// to ensure thread safety on the same writer.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	l := &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
	l.build()
	return l
}

// New creates a new thread safe child logger.
// It can use a different writer, but it is expected to use the
// same writer since it is thread safe.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	child := &Logger{
		settings: s,
		mutex:    l.mutex,
	}
	child.build()
	l.childs = append(l.childs, child)
	return child
}

// build creates the zap logger from the current settings.
// It must be called with the mutex locked, or before the
// logger is shared.
func (l *Logger) build() {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      levelEncoder(*l.settings.colour && *l.settings.format == FormatConsole),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}

	var zapOptions []zap.Option
	if *l.settings.caller {
		encoderConfig.CallerKey = "caller"
		// skip the log method and the exported level method
		const callerSkip = 2
		zapOptions = append(zapOptions, zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	}

	var encoder zapcore.Encoder
	switch *l.settings.format {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	l.level = zap.NewAtomicLevelAt(l.settings.level.zapLevel())
	core := zapcore.NewCore(encoder, zapcore.AddSync(l.settings.writer), l.level)

	fields := make([]zap.Field, len(l.settings.context))
	for i, kv := range l.settings.context {
		fields[i] = zap.String(kv.key, strings.Join(kv.values, ","))
	}

	l.zap = zap.New(core, zapOptions...).With(fields...)
}

func levelEncoder(coloured bool) zapcore.LevelEncoder {
	return func(zapLevel zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
		level := levelFromZap(zapLevel)
		if coloured {
			encoder.AppendString(level.ColouredString())
			return
		}
		encoder.AppendString(level.String())
	}
}
