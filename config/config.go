package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "CORRIDOR"
	ConfigName     = "corridor"
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds every runtime setting, resolved from flags, environment and config file in that order
type Config struct {
	TickRate      int           `mapstructure:"tick_rate"`
	Speed         float64       `mapstructure:"speed"`
	Threshold     float64       `mapstructure:"threshold"`
	Color         string        `mapstructure:"color"`
	Audio         bool          `mapstructure:"audio"`
	Debug         bool          `mapstructure:"debug"`
	LogDir        string        `mapstructure:"log_dir"`
	Keymap        string        `mapstructure:"keymap"`
	Headless      bool          `mapstructure:"headless"`
	Ticks         uint64        `mapstructure:"ticks"`
	Autopilot     bool          `mapstructure:"autopilot"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"tick-rate":      "tick_rate",
	"speed":          "speed",
	"threshold":      "threshold",
	"color":          "color",
	"audio":          "audio",
	"debug":          "debug",
	"log-dir":        "log_dir",
	"keymap":         "keymap",
	"headless":       "headless",
	"ticks":          "ticks",
	"autopilot":      "autopilot",
	"toast-duration": "toast_duration",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tick_rate", 60)
	v.SetDefault("speed", 0.3)
	v.SetDefault("threshold", 1.5)
	v.SetDefault("color", ColorAuto)
	v.SetDefault("audio", true)
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "./logs")
	v.SetDefault("keymap", "")
	v.SetDefault("headless", false)
	v.SetDefault("ticks", 0)
	v.SetDefault("autopilot", false)
	v.SetDefault("toast_duration", 2*time.Second)
}

// Flags returns the command-line flag set understood by Load
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Path to a YAML config file (default ./corridor.yaml if present)")
	fs.Int("tick-rate", 60, "Simulation ticks per second")
	fs.Float64("speed", 0.3, "Distance moved per directional command")
	fs.Float64("threshold", 1.5, "Distance below which a marker is solved")
	fs.String("color", ColorAuto, "Color mode: auto, truecolor, 256")
	fs.Bool("audio", true, "Play sound cues")
	fs.Bool("debug", false, "Write a debug log to --log-dir")
	fs.String("log-dir", "./logs", "Directory for the debug log")
	fs.String("keymap", "", "Path to a YAML key binding override file")
	fs.Bool("headless", false, "Run without a display, driven by the autopilot")
	fs.Uint64("ticks", 0, "Stop after N ticks (0 = no limit)")
	fs.Bool("autopilot", false, "Let the autopilot walk the corridor")
	fs.Duration("toast-duration", 2*time.Second, "How long notifications stay on screen")
	return fs
}

// Load parses args into fs and resolves the final Config
// Precedence: explicit flags, CORRIDOR_* environment, config file, defaults
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	var cfg Config

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	v := viper.New()
	setDefaults(v)

	for flagName, key := range flagKeys {
		if f := fs.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return cfg, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the implicit one is optional
		if path != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("color must be one of auto, truecolor, 256, got %q", c.Color)
	}
	if c.ToastDuration < 0 {
		return fmt.Errorf("toast_duration must not be negative, got %v", c.ToastDuration)
	}
	return nil
}
