package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	appName    = "poemview"
	fileName   = "config.toml"
	envPrefix  = "POEMVIEW"
	configType = "toml"
)

// Config represents the application configuration
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	State   StateConfig   `mapstructure:"state"`
	UI      UIConfig      `mapstructure:"ui"`
	Gesture GestureConfig `mapstructure:"gesture"`
	Hint    HintConfig    `mapstructure:"hint"`
}

// ContentConfig locates the poem files
type ContentConfig struct {
	Dir   string `mapstructure:"dir"`
	Title string `mapstructure:"title"` // collection title on the cover
}

// StateConfig locates persisted state and the log file
type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

// UIConfig represents terminal layout settings
type UIConfig struct {
	CompactBreakpoint int     `mapstructure:"compact_breakpoint"` // columns
	CellWidthPx       float64 `mapstructure:"cell_width_px"`
	WheelStep         float64 `mapstructure:"wheel_step"` // cells per wheel notch
	MarkdownStyle     string  `mapstructure:"markdown_style"`
	Cover             bool    `mapstructure:"cover"` // open on the title screen
}

// GestureConfig tunes the input interpreters
type GestureConfig struct {
	SwipeDeltaPx  float64       `mapstructure:"swipe_delta_px"`
	SwipeDuration time.Duration `mapstructure:"swipe_duration"`
	DragGain      float64       `mapstructure:"drag_gain"`
}

// HintConfig tunes the swipe hint policy
type HintConfig struct {
	MaxShows  int           `mapstructure:"max_shows"`
	CoolOff   time.Duration `mapstructure:"cool_off"`
	FadeDelay time.Duration `mapstructure:"fade_delay"`
}

// fileConfig is the on-disk shape; durations are written as strings
type fileConfig struct {
	Content struct {
		Dir   string `toml:"dir"`
		Title string `toml:"title"`
	} `toml:"content"`
	State struct {
		Dir string `toml:"dir"`
	} `toml:"state"`
	UI struct {
		CompactBreakpoint int     `toml:"compact_breakpoint"`
		CellWidthPx       float64 `toml:"cell_width_px"`
		WheelStep         float64 `toml:"wheel_step"`
		MarkdownStyle     string  `toml:"markdown_style"`
		Cover             bool    `toml:"cover"`
	} `toml:"ui"`
	Gesture struct {
		SwipeDeltaPx  float64 `toml:"swipe_delta_px"`
		SwipeDuration string  `toml:"swipe_duration"`
		DragGain      float64 `toml:"drag_gain"`
	} `toml:"gesture"`
	Hint struct {
		MaxShows  int    `toml:"max_shows"`
		CoolOff   string `toml:"cool_off"`
		FadeDelay string `toml:"fade_delay"`
	} `toml:"hint"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: "content/poems", Title: "Kid's Finger"},
		State:   StateConfig{Dir: defaultStateDir()},
		UI: UIConfig{
			CompactBreakpoint: 96,
			CellWidthPx:       8,
			WheelStep:         3,
			MarkdownStyle:     "dark",
			Cover:             true,
		},
		Gesture: GestureConfig{
			SwipeDeltaPx:  10,
			SwipeDuration: 500 * time.Millisecond,
			DragGain:      2,
		},
		Hint: HintConfig{
			MaxShows:  3,
			CoolOff:   30 * 24 * time.Hour,
			FadeDelay: 4500 * time.Millisecond,
		},
	}
}

// DefaultPath returns the user-level config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName, fileName)
}

func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}

// Load reads configuration from path (or the default location when empty)
// and from POEMVIEW_* environment variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType(configType)
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("content.dir", d.Content.Dir)
	v.SetDefault("content.title", d.Content.Title)
	v.SetDefault("state.dir", d.State.Dir)
	v.SetDefault("ui.compact_breakpoint", d.UI.CompactBreakpoint)
	v.SetDefault("ui.cell_width_px", d.UI.CellWidthPx)
	v.SetDefault("ui.wheel_step", d.UI.WheelStep)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.cover", d.UI.Cover)
	v.SetDefault("gesture.swipe_delta_px", d.Gesture.SwipeDeltaPx)
	v.SetDefault("gesture.swipe_duration", d.Gesture.SwipeDuration)
	v.SetDefault("gesture.drag_gain", d.Gesture.DragGain)
	v.SetDefault("hint.max_shows", d.Hint.MaxShows)
	v.SetDefault("hint.cool_off", d.Hint.CoolOff)
	v.SetDefault("hint.fade_delay", d.Hint.FadeDelay)
}

// Validate rejects settings the viewer cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.UI.CompactBreakpoint < 0 {
		errs = append(errs, errors.New("ui.compact_breakpoint must not be negative"))
	}
	if c.UI.CellWidthPx <= 0 {
		errs = append(errs, errors.New("ui.cell_width_px must be positive"))
	}
	if c.UI.WheelStep <= 0 {
		errs = append(errs, errors.New("ui.wheel_step must be positive"))
	}
	if c.Gesture.SwipeDeltaPx <= 0 {
		errs = append(errs, errors.New("gesture.swipe_delta_px must be positive"))
	}
	if c.Gesture.SwipeDuration <= 0 {
		errs = append(errs, errors.New("gesture.swipe_duration must be positive"))
	}
	if c.Gesture.DragGain <= 0 {
		errs = append(errs, errors.New("gesture.drag_gain must be positive"))
	}
	if c.Hint.MaxShows < 0 {
		errs = append(errs, errors.New("hint.max_shows must not be negative"))
	}
	if c.Hint.CoolOff <= 0 || c.Hint.FadeDelay <= 0 {
		errs = append(errs, errors.New("hint durations must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the configuration as TOML, creating the directory if needed
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var fc fileConfig
	fc.Content.Dir = cfg.Content.Dir
	fc.Content.Title = cfg.Content.Title
	fc.State.Dir = cfg.State.Dir
	fc.UI.CompactBreakpoint = cfg.UI.CompactBreakpoint
	fc.UI.CellWidthPx = cfg.UI.CellWidthPx
	fc.UI.WheelStep = cfg.UI.WheelStep
	fc.UI.MarkdownStyle = cfg.UI.MarkdownStyle
	fc.UI.Cover = cfg.UI.Cover
	fc.Gesture.SwipeDeltaPx = cfg.Gesture.SwipeDeltaPx
	fc.Gesture.SwipeDuration = cfg.Gesture.SwipeDuration.String()
	fc.Gesture.DragGain = cfg.Gesture.DragGain
	fc.Hint.MaxShows = cfg.Hint.MaxShows
	fc.Hint.CoolOff = cfg.Hint.CoolOff.String()
	fc.Hint.FadeDelay = cfg.Hint.FadeDelay.String()

	data, err := toml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EnsureFile writes the defaults to path when no file exists yet. It reports
// whether a file was created.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	if err := Save(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
