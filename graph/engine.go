package graph

import (
	"go.uber.org/zap"

	"github.com/arannis/conexus/config"
	"github.com/arannis/conexus/internal/telemetry/logging"
)

// Engine carries the capacity limits and observability hooks shared by
// every connectivity operation. The zero value is not usable; construct
// with NewEngine.
type Engine struct {
	cfg config.EngineConfig
	log *zap.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig sets the full EngineConfig, overriding any prior WithConfig
// or individual field options applied before it.
func WithConfig(cfg config.EngineConfig) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithHardLimitBytes overrides the capacity ceiling above which an
// operation fails with ErrCapacityExceeded.
func WithHardLimitBytes(n int64) Option {
	return func(e *Engine) { e.cfg.HardLimitBytes = n }
}

// WithAdvisoryBytes overrides the advisory-logging threshold: past this
// estimated allocation size the engine logs a warning but proceeds.
func WithAdvisoryBytes(n int64) Option {
	return func(e *Engine) { e.cfg.AdvisoryBytes = n }
}

// WithLogger attaches a *zap.Logger for advisory messages, overriding
// whatever logger cfg.LogLevel would otherwise select.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine constructs an Engine with config.Default(), then applies
// opts in order (last wins on conflicting fields). Unless WithLogger
// overrides it, the Engine's logger is built from the final
// cfg.LogLevel via logging.NewLogger; an invalid level falls back to a
// discard logger rather than failing construction.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{cfg: config.Default()}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		l, err := logging.NewLogger(logging.Config{Level: e.cfg.LogLevel})
		if err != nil {
			l = logging.DiscardLogger()
		}
		e.log = l
	}
	return e
}

// defaultEngine backs the package-level convenience functions.
var defaultEngine = NewEngine()
