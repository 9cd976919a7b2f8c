package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial [StructuredConfig] per source, in
// priority order, and merges them into the final configuration. Loader
// failures are accumulated and surface from build.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources (earlier sources win for non-zero
// fields), applies the built-in defaults, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, source := range b.sources {
		if err := mergo.Merge(merged, source); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.applyDefaults()

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.sources = append(b.sources, ParseFlags())
	return b
}

// withJSON loads the optional JSON file. The path is taken from the sources
// already collected, so env and flags decide whether a file is read at all.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, jsonCfg)
	return b
}

// jsonPath returns the JSON config file path named by the lowest-priority
// source that sets one, or the empty string when no source does.
func (b *configBuilder) jsonPath() string {
	var path string
	for _, source := range b.sources {
		if source.JSONFilePath != "" {
			path = source.JSONFilePath
		}
	}
	return path
}
