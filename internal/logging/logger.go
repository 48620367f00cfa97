// Package logging holds the zerolog logger shared by every package in this
// module. It discards everything until SetGlobalLogger is called.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the logger used by the package-level helpers and
// by zerolog.Ctx for contexts without a logger.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// SetLevel changes the minimum level of the current global logger.
func SetLevel(level zerolog.Level) {
	SetGlobalLogger(Logger.Level(level))
}

func With() zerolog.Context { return Logger.With() }

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Warn() *zerolog.Event { return Logger.Warn() }

func Ctx(ctx context.Context) *zerolog.Logger { return zerolog.Ctx(ctx) }
