/*
NAME
  logger.go

DESCRIPTION
  logger.go provides the small structured-logging interface used by
  cmd/quiche-probe, backed by zap and rotated with lumberjack.

AUTHOR
  AusOcean Core Team <engineering@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package problog implements a minimal key-value Logger, the shape this
// codebase's command-line tools have always used, backed by
// go.uber.org/zap and gopkg.in/natefinch/lumberjack.v2. It is not imported
// by any codec package — the codec itself never logs.
package problog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the key-value logging surface this repository's command-line
// tools call: a message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Options configures New.
type Options struct {
	FilePath   string // if empty, logs go to stderr only.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Verbose    bool
}

type sugared struct {
	s *zap.SugaredLogger
}

// New builds a Logger writing structured, levelled output to stderr and,
// if opts.FilePath is set, to a lumberjack-rotated file.
func New(opts Options) Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), level),
	}
	if opts.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	core := zapcore.NewTee(cores...)
	return &sugared{s: zap.New(core).Sugar()}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *sugared) Debug(msg string, args ...interface{})   { l.s.Debugw(msg, args...) }
func (l *sugared) Info(msg string, args ...interface{})    { l.s.Infow(msg, args...) }
func (l *sugared) Warning(msg string, args ...interface{}) { l.s.Warnw(msg, args...) }
func (l *sugared) Error(msg string, args ...interface{})   { l.s.Errorw(msg, args...) }
func (l *sugared) Fatal(msg string, args ...interface{})   { l.s.Fatalw(msg, args...) }
