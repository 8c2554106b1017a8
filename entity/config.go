package entity

// defaultIncomparables is the default set of values that can never
// produce a match.
var defaultIncomparables = []string{"", "NA", "NULL", "Unknown"}

// resolveConfig aggregates all knobs used by GroupID. Built via
// newResolveConfig + functional Options: deterministic defaults,
// options applied in order, last wins.
type resolveConfig struct {
	rawIncomparables []string
	caseSensitive    bool
	minGroupSize     int
	returnDetails    bool

	// incomparables is derived from rawIncomparables + caseSensitive
	// once option application is finished; see finalize.
	incomparables map[string]struct{}
}

// Option configures a GroupID call.
type Option func(*resolveConfig)

// WithIncomparables replaces the default incomparables set. Pass nil or
// an empty slice to disable the default sentinels entirely. The empty
// string is skipped regardless of this set.
func WithIncomparables(values []string) Option {
	return func(cfg *resolveConfig) { cfg.rawIncomparables = values }
}

// WithCaseSensitive toggles ASCII case folding of values and
// incomparables before comparison. Default false (case-insensitive).
// Unicode case-folding is deliberately not offered; callers that need it
// must fold their input before passing it in.
func WithCaseSensitive(sensitive bool) Option {
	return func(cfg *resolveConfig) { cfg.caseSensitive = sensitive }
}

// WithMinGroupSize sets the minimum component size that receives a
// non-zero group ID; smaller components receive 0. Must be >= 1.
func WithMinGroupSize(n int) Option {
	return func(cfg *resolveConfig) { cfg.minGroupSize = n }
}

// WithReturnDetails toggles whether GroupID tracks and returns ValueMap.
// Default true. Set to false to skip the per-value record-list
// bookkeeping when only GroupIDs/GroupSizes are needed.
func WithReturnDetails(enabled bool) Option {
	return func(cfg *resolveConfig) { cfg.returnDetails = enabled }
}

func newResolveConfig(opts ...Option) resolveConfig {
	cfg := resolveConfig{
		rawIncomparables: defaultIncomparables,
		caseSensitive:    false,
		minGroupSize:     1,
		returnDetails:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.finalize()
	return cfg
}

// finalize derives the case-folded incomparables set used for matching,
// applied after every option has been able to touch both
// rawIncomparables and caseSensitive (so option order never matters).
func (cfg *resolveConfig) finalize() {
	cfg.incomparables = make(map[string]struct{}, len(cfg.rawIncomparables))
	for _, v := range cfg.rawIncomparables {
		if !cfg.caseSensitive {
			v = asciiLower(v)
		}
		cfg.incomparables[v] = struct{}{}
	}
}

// normalise applies case folding (if configured) and reports whether s
// should be skipped as empty or incomparable.
func (cfg resolveConfig) normalise(s string) (norm string, skip bool) {
	if !cfg.caseSensitive {
		s = asciiLower(s)
	}
	if s == "" {
		return "", true
	}
	if _, excluded := cfg.incomparables[s]; excluded {
		return "", true
	}
	return s, false
}
