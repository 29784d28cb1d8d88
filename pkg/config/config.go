// Package config assembles runtime configuration from defaults, an optional
// config file, RESULTADO_* environment variables and command-line flags, in
// that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/yurifrl/resultado/pkg/extractor"
)

// Config is the resolved runtime configuration.
type Config struct {
	// OutputPath is where extracted records are stored; empty means
	// alongside the input.
	OutputPath string

	// Extraction holds the engine tunables.
	Extraction extractor.Options
}

// Build loads configuration. cfgFile overrides the default config.yaml
// lookup; flags, when given, override everything.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	def := extractor.DefaultOptions()
	v.SetDefault("output_path", "")
	v.SetDefault("tolerance_abs", def.ToleranceAbs)
	v.SetDefault("tolerance_rel", def.ToleranceRel)
	v.SetDefault("lookahead", def.Lookahead)
	v.SetDefault("parent_ratio", def.ParentRatio)
	v.SetDefault("max_item_value", def.MaxItemValue)
	v.SetDefault("year_min", def.YearMin)
	v.SetDefault("year_max", def.YearMax)
	v.SetDefault("header_scan_rows", def.HeaderScanRows)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("RESULTADO")
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return &Config{
		OutputPath: v.GetString("output_path"),
		Extraction: extractor.Options{
			ToleranceAbs:   v.GetFloat64("tolerance_abs"),
			ToleranceRel:   v.GetFloat64("tolerance_rel"),
			Lookahead:      v.GetInt("lookahead"),
			ParentRatio:    v.GetFloat64("parent_ratio"),
			MaxItemValue:   v.GetFloat64("max_item_value"),
			YearMin:        v.GetInt("year_min"),
			YearMax:        v.GetInt("year_max"),
			HeaderScanRows: v.GetInt("header_scan_rows"),
		},
	}, nil
}

// New returns a configuration with defaults and the given output path; the
// simple entry point for callers that skip files and flags.
func New(outputPath string) *Config {
	return &Config{
		OutputPath: outputPath,
		Extraction: extractor.DefaultOptions(),
	}
}
