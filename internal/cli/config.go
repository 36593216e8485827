// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/itinerary-extract/pkg/types"
)

// EnvPrefix is the prefix of environment variables that override config keys
// (e.g. ITINERARY_EXTRACTOR_SNIPPET_LENGTH).
const EnvPrefix = "ITINERARY"

// NewViper returns a viper instance with the built-in defaults and
// environment overrides registered. Commands bind their flags on it.
func NewViper() *viper.Viper {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault("format", string(def.Format))
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("extractor.snippet_length", def.Extractor.SnippetLength)
	v.SetDefault("extractor.backend", string(def.Extractor.Backend))
	v.SetDefault("extractor.pdftotext_image", def.Extractor.PdftotextImage)
	v.SetDefault("parser.stop_word", def.Parser.StopWord)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads cfgFile (when non-empty) into v and decodes the result.
// Without a config file the built-in city table is used; a config file that
// lists cities replaces the table entirely.
func LoadConfig(v *viper.Viper, cfgFile string) (types.Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	cfg := types.DefaultConfig()
	cfg.Extractor.Cities = nil
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.Extractor.Cities) == 0 {
		cfg.Extractor.Cities = types.DefaultCityTable()
	}

	switch cfg.Format {
	case types.OutputJSON, types.OutputYAML:
	default:
		return types.Config{}, fmt.Errorf("unsupported format %q: use json or yaml", cfg.Format)
	}
	return cfg, nil
}
