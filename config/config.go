package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/gridcheck/core/bounds"
	"github.com/kilianp07/gridcheck/infra/metrics"
	"github.com/kilianp07/gridcheck/infra/mqtt"
	"github.com/kilianp07/gridcheck/infra/source"
	"github.com/kilianp07/gridcheck/jobs/watch"
)

type Config struct {
	Dataset source.Config  `json:"dataset"`
	Suite   bounds.Suite   `json:"suite"`
	Report  ReportConfig   `json:"report"`
	Metrics metrics.Config `json:"metrics"`
	MQTT    mqtt.Config    `json:"mqtt"`
	Watch   watch.Config   `json:"watch"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GRIDCHECK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gridcheck_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Dataset.SetDefaults()
	cfg.Suite.SetDefaults()
	cfg.Report.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Suite.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Watch.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
