// Package logger provides a zerolog wrapper with the CLI's defaults and
// actor-scoped child loggers
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/yms/internal/ctxutil"
)

// Options configures the logger
type Options struct {
	Level  string
	Format string // "console" or "json"
	Writer io.Writer
}

// FromEnv builds Options from YMS_LOG_LEVEL and YMS_LOG_FORMAT
func FromEnv() Options {
	return Options{
		Level:  getenv("YMS_LOG_LEVEL", "warn"),
		Format: getenv("YMS_LOG_FORMAT", "console"),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Get returns the process-wide root logger
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init configures the root logger, safe to call once
func Init(opt Options) {
	once.Do(func() {
		root.Store(New(opt))
		inited.Store(true)
	})
}

// New builds a standalone logger; stderr is the default sink so label output
// on stdout stays clean for piping
func New(opt Options) *Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.ToLower(opt.Format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	log := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp().Str("app", "yms").Logger()
	return &log
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	l := zerolog.Nop()
	return &l
}

// ParseLevel supports string-only levels, defaulting to warn
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// C returns a child of l enriched with the actor carried by ctx
func C(ctx context.Context, l *Logger) *Logger {
	if l == nil {
		l = Get()
	}
	actor := ctxutil.ActorFromContext(ctx)
	if actor == "" {
		return l
	}
	child := l.With().Str("actor", actor).Logger()
	return &child
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return strings.ToLower(v)
	}
	return def
}
