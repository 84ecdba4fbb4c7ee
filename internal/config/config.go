package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"mondaynightpoker-handeval/internal/util"
	"mondaynightpoker-handeval/pkg/handrank"
)

// Config provides configuration for the hand evaluator
type Config struct {
	loaded     bool
	Addr       string `yaml:"addr" envconfig:"addr"`
	RankPolicy string `yaml:"rankPolicy" envconfig:"rank_policy"`
	Log        struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" split_words:"true"`
	}
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" split_words:"true"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:       ":5000",
		RankPolicy: handrank.SkipUnknownRanks.String(),
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing configuration file is not an error, the defaults are used instead
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HANDEVAL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	}

	if err := envconfig.Process("handeval", &config); err != nil {
		return err
	}

	if _, err := handrank.ParseRankPolicy(config.RankPolicy); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// Policy returns the parsed rank policy
func (c Config) Policy() handrank.RankPolicy {
	// validated by Load()
	p, _ := handrank.ParseRankPolicy(c.RankPolicy)
	return p
}
