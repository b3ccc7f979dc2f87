package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/fdr"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. FDR_ALPHA.
const envPrefix = "FDR"

// Config is the resolved run configuration.
// Precedence: flags > FDR_* environment > config file > defaults.
type Config struct {
	Alpha     float64 `mapstructure:"alpha"`
	Dependent bool    `mapstructure:"dependent"`
	Strict    bool    `mapstructure:"strict"`
	Verbose   bool    `mapstructure:"verbose"`
}

// Options converts the configuration into corrector options.
func (c Config) Options() []fdr.Option {
	opts := []fdr.Option{
		fdr.WithAlpha(c.Alpha),
		fdr.WithDependent(c.Dependent),
	}
	if c.Strict {
		opts = append(opts, fdr.WithStrictPValues())
	}

	return opts
}

// Method reports the procedure selected by Dependent.
func (c Config) Method() fdr.Method {
	if c.Dependent {
		return fdr.MethodBHY
	}

	return fdr.MethodBH
}

// initConfig wires environment lookups and reads the config file.
// An explicit cfgFile must exist; the default $HOME/.fdr.yaml or ./.fdr.yaml
// is optional.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}

		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(".fdr")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

// loadConfig decodes the merged settings.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
