package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	SetLevel(zapcore.WarnLevel)
}

func SetLevel(l zapcore.Level) {
	writeSyncer := zapcore.AddSync(os.Stderr)
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, writeSyncer, l)
	logger = zap.New(core)
}

func prepareLogLevel(verbose int) {
	switch {
	case verbose >= 2:
		SetLevel(zapcore.DebugLevel)
	case verbose >= 1:
		SetLevel(zapcore.InfoLevel)
	default:
		SetLevel(zapcore.WarnLevel)
	}
}
