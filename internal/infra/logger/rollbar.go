package logger

import (
	"log"

	"github.com/rollbar/rollbar-go"
)

// RollbarLogger prints to a std logger and forwards to Rollbar when a token is set.
type RollbarLogger struct {
	std *log.Logger
}

var _ Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, token, env, serverHost string) *RollbarLogger {
	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetServerHost(serverHost)
	rollbar.SetEnabled(token != "")
	return &RollbarLogger{std: std}
}

// Close flushes queued Rollbar items.
func (l *RollbarLogger) Close() {
	rollbar.Wait()
}

func (l *RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, msg)
	return append(out, args...)
}

func (l *RollbarLogger) print(level, msg string, args []interface{}) {
	l.std.Printf("level=%s msg=%q", level, msg)
	for _, arg := range args {
		l.std.Printf("  %+v", arg)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print("debug", msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print("info", msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print("warn", msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print("error", msg, args)
}
