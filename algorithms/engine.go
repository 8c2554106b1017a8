package algorithms

import (
	"go.uber.org/zap"

	"github.com/arannis/conexus/config"
	"github.com/arannis/conexus/internal/telemetry/logging"
)

// Engine carries the configuration and observability hooks for
// ShortestPath and Degrees, mirroring graph.Engine and entity.Engine.
type Engine struct {
	cfg config.EngineConfig
	log *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithConfig sets the full EngineConfig, overriding any prior WithConfig.
func WithConfig(cfg config.EngineConfig) EngineOption {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger attaches a *zap.Logger, overriding whatever logger
// cfg.LogLevel would otherwise select.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// NewEngine constructs an Engine with config.Default(), then applies
// opts in order. Unless WithLogger overrides it, the Engine's logger is
// built from the final cfg.LogLevel via logging.NewLogger; an invalid
// level falls back to a discard logger rather than failing construction.
func NewEngine(opts ...EngineOption) *Engine {
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

var defaultEngine = NewEngine()
