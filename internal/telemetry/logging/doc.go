// Package logging wraps go.uber.org/zap with the connectivity engine's
// deterministic default configuration: a small Config struct, a
// NewLogger constructor that resolves format/level, and a DiscardLogger
// for tests and library callers who have not opted in to logging.
package logging
