// Package config defines EngineConfig, the capacity and observability
// knobs shared by the graph and entity packages. Values are set either
// via functional options at the call site (see graph.Option,
// entity.EngineOption) or loaded once per process from the environment via
// FromEnv.
package config
