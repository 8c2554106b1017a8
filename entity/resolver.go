package entity

import (
	"time"

	"go.uber.org/zap"

	"github.com/arannis/conexus/config"
	"github.com/arannis/conexus/dsu"
	"github.com/arannis/conexus/internal/telemetry/logging"
	"github.com/arannis/conexus/internal/telemetry/metrics"
)

// Result is the output of GroupID.
type Result struct {
	// GroupIDs[r] is the group assigned to record r: 0 if its component
	// has fewer than MinGroupSize records, else a dense label in [1,G].
	GroupIDs []int

	// NGroups is G, the number of groups that received a non-zero label.
	// With the default MinGroupSize of 1, singleton records count too.
	NGroups int

	// GroupSizes[g-1] is the size of group g.
	GroupSizes []int

	// ValueMap holds, for every normalised value that produced at least
	// one non-trivial merge, the full list of record rows it connected.
	ValueMap map[string][]int
}

// Engine carries the configuration and observability hooks for entity
// resolution, mirroring graph.Engine.
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

// GroupID groups records that share any value across columns. Columns
// must all share the same row count R, inferred from columns[0]; a
// mismatch fails with ErrColumnLengthMismatch.
//
// Algorithm: for every column, for every row, normalise the value and
// skip it if empty or incomparable; the first row to produce a given
// value becomes its representative, every later row bearing the same
// value is unioned with the representative. Components smaller than
// MinGroupSize receive group ID 0; the rest receive a dense label in
// [1,G].
func (e *Engine) GroupID(columns []Column, opts ...Option) (*Result, error) {
	const op = "GroupID"
	start := time.Now()
	defer func() {
		if e.cfg.MetricsEnabled {
			metrics.FindDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}
	}()

	if len(columns) == 0 {
		return nil, wrapf(op, "no columns supplied", ErrNoColumns)
	}

	r := columns[0].Len()
	for _, c := range columns {
		if c.Len() != r {
			return nil, wrapf(op, "column length mismatch", ErrColumnLengthMismatch)
		}
	}

	cfg := newResolveConfig(opts...)
	if cfg.minGroupSize < 1 {
		return nil, wrapf(op, "min_group_size must be >= 1", ErrInvalidMinGroupSize)
	}

	forest := dsu.New(uint64(r))
	firstSeen := make(map[string]int)
	var valueRows map[string][]int
	if cfg.returnDetails {
		valueRows = make(map[string][]int)
	}

	for _, col := range columns {
		for row := 0; row < r; row++ {
			s, skip := cfg.normalise(col.canonical(row))
			if skip {
				continue
			}
			first, seen := firstSeen[s]
			if !seen {
				firstSeen[s] = row
				if cfg.returnDetails {
					valueRows[s] = []int{row}
				}
				continue
			}
			if forest.Union(uint64(first), uint64(row)) && e.cfg.MetricsEnabled {
				metrics.UnionOpsTotal.Inc()
			}
			if cfg.returnDetails {
				valueRows[s] = append(valueRows[s], row)
			}
		}
	}

	sizes := make(map[uint64]int, len(firstSeen))
	for row := 0; row < r; row++ {
		sizes[forest.Find(uint64(row))]++
	}

	groupIDs := make([]int, r)
	rootLabel := make(map[uint64]int)
	var groupSizes []int
	nextLabel := 1
	for row := 0; row < r; row++ {
		root := forest.Find(uint64(row))
		if sizes[root] < cfg.minGroupSize {
			continue // groupIDs[row] stays 0
		}
		label, ok := rootLabel[root]
		if !ok {
			label = nextLabel
			rootLabel[root] = label
			groupSizes = append(groupSizes, 0)
			nextLabel++
		}
		groupIDs[row] = label
		groupSizes[label-1]++
	}

	valueMap := make(map[string][]int, len(valueRows))
	for value, rows := range valueRows {
		if len(rows) >= 2 {
			valueMap[value] = rows
		}
	}

	if e.cfg.MetricsEnabled {
		metrics.EntityGroupsTotal.Add(float64(nextLabel - 1))
	}

	return &Result{
		GroupIDs:   groupIDs,
		NGroups:    nextLabel - 1,
		GroupSizes: groupSizes,
		ValueMap:   valueMap,
	}, nil
}

// GroupID delegates to a default, unconfigured Engine.
func GroupID(columns []Column, opts ...Option) (*Result, error) {
	return defaultEngine.GroupID(columns, opts...)
}
