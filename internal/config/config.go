package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
	CLI     CLIConfig     `mapstructure:"cli"`
}

type DisplayConfig struct {
	Theme string `mapstructure:"theme" validate:"oneof=off brown green gray"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `mapstructure:"pretty"`
}

type CLIConfig struct {
	Prompt      string `mapstructure:"prompt" validate:"required,max=32"`
	HistoryFile string `mapstructure:"history_file"`
	// FEN resumes from a position instead of the standard start.
	FEN string `mapstructure:"fen" validate:"max=100"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"theme":        "display.theme",
	"log-level":    "log.level",
	"log-pretty":   "log.pretty",
	"prompt":       "cli.prompt",
	"history-file": "cli.history_file",
	"fen":          "cli.fen",
}

var validate = validator.New()

// RegisterFlags adds the configuration flags to fs. Their defaults are left
// empty so that unset flags fall through to the environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("theme", "", "Board colour theme: off, brown, green or gray")
	fs.String("log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	fs.Bool("log-pretty", false, "Human-readable log output")
	fs.String("prompt", "", "Prompt shown before each command")
	fs.String("history-file", "", "File to keep command history in")
	fs.String("fen", "", "Start from this FEN position")
}

// Load resolves the configuration from defaults, CHESSVAR_* environment
// variables and any flags in fs that were set explicitly.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Enable environment variables
	v.SetEnvPrefix("CHESSVAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("display.theme", "off")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("cli.prompt", "chessvar")
	v.SetDefault("cli.history_file", "")
	v.SetDefault("cli.fen", "")

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field against its constraints and reports all
// failures in one error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid config: %w", err)
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", field))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "max":
			if fe.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", field, fe.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}

	return fmt.Errorf("invalid config: %s", details.String())
}
