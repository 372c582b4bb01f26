// Package logging hands out named loggers for the uploader's subsystems.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var root = func() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lg, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return lg
}()

// Logger returns a sugared logger named after the given system.
func Logger(system string) *zap.SugaredLogger {
	return root.Named(system).Sugar()
}

// SetDebug raises the global log level to debug.
func SetDebug() {
	level.SetLevel(zapcore.DebugLevel)
}
