package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Optional OptionalConfig `mapstructure:"optional"`
	Writer   WriterConfig   `mapstructure:"writer"`
	Timer    TimerConfig    `mapstructure:"timer"`
}

type OptionalConfig struct {
	Start    float64   `mapstructure:"start"`
	Divisors []float64 `mapstructure:"divisors"`
}

type WriterConfig struct {
	Start float64 `mapstructure:"start"`
}

type TimerConfig struct {
	Delay  time.Duration `mapstructure:"delay"`
	Values []int         `mapstructure:"values"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("optional.start", 16.0)
	v.SetDefault("optional.divisors", []float64{2, 3, 2})
	v.SetDefault("writer.start", 1.0)
	v.SetDefault("timer.delay", time.Second)
	v.SetDefault("timer.values", []int{1, 2, 3})
}

// LoadConfig reads defaults, then the file (playground.yaml in the working
// directory unless path is given), then PLAYGROUND_* environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("playground")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("playground")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "playground: read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "playground: decode config")
	}
	return cfg, nil
}
