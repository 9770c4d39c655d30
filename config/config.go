// Package config loads the run configuration of the lm command.
//
// Values come from, in order of precedence, command line flags bound to a
// viper instance, GOLM_ prefixed environment variables, an optional config
// file and the defaults below.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/pkg/log"
	"github.com/YuminosukeSato/golm/preprocessing"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "GOLM"

// Keys used in viper and config files.
const (
	KeyConfig    = "config"
	KeyEncoding  = "encoding"
	KeyTestRatio = "test_ratio"
	KeySeed      = "seed"
	KeyTransform = "transform"
	KeyOutput    = "output"
	KeyPlot      = "plot"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyInput     = "input"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config は 1 回の実行設定
type Config struct {
	Encoding  string
	TestRatio float64
	// Seed 0 は起動時刻から種を作る
	Seed      int64
	Transform string
	// Output is the base path for .coef/.json/.state files. Empty writes nothing.
	Output    string
	Plot      string
	LogLevel  string
	LogFormat string
	// Input is the data file; empty or "-" reads stdin.
	Input string
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEncoding, preprocessing.None.String())
	v.SetDefault(KeyTestRatio, 0.0)
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeyTransform, preprocessing.Identity.String())
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyPlot, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, FormatConsole)
	v.SetDefault(KeyInput, "")
}

// Load reads the configuration from v.
//
// When v holds a "config" value, that file is read first. Its values are
// overridden by environment variables and flags already bound to v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Encoding:  v.GetString(KeyEncoding),
		TestRatio: v.GetFloat64(KeyTestRatio),
		Seed:      v.GetInt64(KeySeed),
		Transform: v.GetString(KeyTransform),
		Output:    v.GetString(KeyOutput),
		Plot:      v.GetString(KeyPlot),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		Input:     v.GetString(KeyInput),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証する
//
// 不明なエンコーディング名はエラーにせず、Strategy で警告して none 扱い。
// 範囲外の TestRatio も分割側で 0 として扱う。
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError(KeyLogLevel, "must be one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case FormatJSON, FormatConsole:
	default:
		return errors.NewValidationError(KeyLogFormat, "must be json or console", c.LogFormat)
	}
	if _, err := preprocessing.ParseTransform(c.Transform); err != nil {
		return errors.NewValidationError(KeyTransform, "must be none, log or log_offset", c.Transform)
	}
	return nil
}

// Strategy resolves the encoding name.
func (c *Config) Strategy() preprocessing.Strategy {
	return preprocessing.ParseStrategy(c.Encoding)
}

// ResponseTransform resolves the transform name.
func (c *Config) ResponseTransform() (preprocessing.Transform, error) {
	return preprocessing.ParseTransform(c.Transform)
}

// Level resolves the log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Stdin reports whether the input is read from standard input.
func (c *Config) Stdin() bool {
	return c.Input == "" || c.Input == "-"
}
