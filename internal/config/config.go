package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Export ExportConfig `mapstructure:"export"`
	UI     UIConfig     `mapstructure:"ui"`
	Colors ColorsConfig `mapstructure:"colors"`
	Log    LogConfig    `mapstructure:"log"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Board    BoardConfig    `mapstructure:"board"`
	Turn     TurnConfig     `mapstructure:"turn"`
	Rollover RolloverConfig `mapstructure:"rollover"`
	Mirror   MirrorConfig   `mapstructure:"mirror"`
	Solve    SolveConfig    `mapstructure:"solve"`
	Seed     int64          `mapstructure:"seed"`  // 0 means seed from the clock
	Level    string         `mapstructure:"level"` // optional YAML level file
}

// BoardConfig holds board dimensions
type BoardConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

// TurnConfig holds the rollover threshold
type TurnConfig struct {
	Threshold int `mapstructure:"threshold"`
}

// RolloverConfig holds board mutation settings
type RolloverConfig struct {
	Obstacles     int `mapstructure:"obstacles"`
	AttemptFactor int `mapstructure:"attempt_factor"`
}

// MirrorConfig selects the reflection relation
type MirrorConfig struct {
	Relation string `mapstructure:"relation"`
}

// SolveConfig holds path solving options
type SolveConfig struct {
	AutoSeed bool `mapstructure:"auto_seed"`
}

// ExportConfig holds snapshot settings
type ExportConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Grid   GridConfig   `mapstructure:"grid"`
	Reveal RevealConfig `mapstructure:"reveal"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// GridConfig holds triangle grid layout settings
type GridConfig struct {
	TriSize    int `mapstructure:"tri_size"`
	PanelWidth int `mapstructure:"panel_width"`
}

// RevealConfig holds path reveal animation settings
type RevealConfig struct {
	IntervalMS int `mapstructure:"interval_ms"`
}

// ColorsConfig holds the render category palette
type ColorsConfig struct {
	Empty      [3]int `mapstructure:"empty"`
	Base       [3]int `mapstructure:"base"`
	Reflected  [3]int `mapstructure:"reflected"`
	Exit       [3]int `mapstructure:"exit"`
	Blocked    [3]int `mapstructure:"blocked"`
	Path       [3]int `mapstructure:"path"`
	Hovered    [3]int `mapstructure:"hovered"`
	Player     [3]int `mapstructure:"player"`
	Background [3]int `mapstructure:"background"`
	GridLines  [3]int `mapstructure:"grid_lines"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.board.rows", 30)
	v.SetDefault("game.board.cols", 20)
	v.SetDefault("game.turn.threshold", 10)
	v.SetDefault("game.rollover.obstacles", 5)
	v.SetDefault("game.rollover.attempt_factor", 2)
	v.SetDefault("game.mirror.relation", core.MirrorCardinal.String())
	v.SetDefault("game.solve.auto_seed", false)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.level", "")

	v.SetDefault("export.path", "board_state.txt")

	// UI defaults
	v.SetDefault("ui.window.width", 1000)
	v.SetDefault("ui.window.height", 1240)
	v.SetDefault("ui.window.title", "Crystal Caves")
	v.SetDefault("ui.grid.tri_size", 40)
	v.SetDefault("ui.grid.panel_width", 200)
	v.SetDefault("ui.reveal.interval_ms", 60)

	// Color defaults
	v.SetDefault("colors.empty", []int{255, 255, 255})
	v.SetDefault("colors.base", []int{0, 255, 255})
	v.SetDefault("colors.reflected", []int{150, 255, 255})
	v.SetDefault("colors.exit", []int{255, 0, 0})
	v.SetDefault("colors.blocked", []int{50, 50, 50})
	v.SetDefault("colors.path", []int{0, 255, 0})
	v.SetDefault("colors.hovered", []int{255, 255, 0})
	v.SetDefault("colors.player", []int{255, 0, 255})
	v.SetDefault("colors.background", []int{0, 0, 0})
	v.SetDefault("colors.grid_lines", []int{0, 0, 0})

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()

	// Set defaults before loading any config
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/crystalcaves")
	}

	nv.SetEnvPrefix("CRYSTAL")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath == "" && errors.As(err, &notFound):
			// No config in the default locations; use defaults
		case configPath != "" && isMissingFile(err):
			// Requested file does not exist; use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next := &Config{}
	if err := nv.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	v, cfg = nv, next
	mu.Unlock()
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates. Invalid values are rejected and the
// previous configuration is kept.
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = next
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. A reload that fails
// validation is dropped and onChange receives the error.
func WatchConfig(onChange func(*Config, error)) {
	wv := GetViper()
	wv.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := wv.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err == nil {
			mu.Lock()
			cfg = next
			mu.Unlock()
		}
		if onChange != nil {
			onChange(next, err)
		}
	})
	wv.WatchConfig()
}

// MirrorRelation parses the configured reflection relation
func (c *Config) MirrorRelation() core.MirrorRelation {
	rel, _ := core.ParseMirrorRelation(c.Game.Mirror.Relation)
	return rel
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Board.Rows <= 0 || c.Game.Board.Cols <= 0 {
		return fmt.Errorf("game.board dimensions must be positive")
	}
	if c.Game.Board.Rows*c.Game.Board.Cols < 2 {
		return fmt.Errorf("game.board must have room for a player and an exit")
	}
	if c.Game.Turn.Threshold <= 0 {
		return fmt.Errorf("game.turn.threshold must be positive")
	}
	if c.Game.Rollover.Obstacles < 0 {
		return fmt.Errorf("game.rollover.obstacles must be non-negative")
	}
	if c.Game.Rollover.AttemptFactor < 1 {
		return fmt.Errorf("game.rollover.attempt_factor must be at least 1")
	}
	if _, err := core.ParseMirrorRelation(c.Game.Mirror.Relation); err != nil {
		return fmt.Errorf("game.mirror.relation: %w", err)
	}

	if c.Export.Path == "" {
		return fmt.Errorf("export.path must not be empty")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Grid.TriSize <= 0 {
		return fmt.Errorf("ui.grid.tri_size must be positive")
	}
	if c.UI.Grid.PanelWidth < 0 {
		return fmt.Errorf("ui.grid.panel_width must be non-negative")
	}
	if c.UI.Reveal.IntervalMS < 0 {
		return fmt.Errorf("ui.reveal.interval_ms must be non-negative")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}
	palette := []struct {
		name string
		rgb  [3]int
	}{
		{"colors.empty", c.Colors.Empty},
		{"colors.base", c.Colors.Base},
		{"colors.reflected", c.Colors.Reflected},
		{"colors.exit", c.Colors.Exit},
		{"colors.blocked", c.Colors.Blocked},
		{"colors.path", c.Colors.Path},
		{"colors.hovered", c.Colors.Hovered},
		{"colors.player", c.Colors.Player},
		{"colors.background", c.Colors.Background},
		{"colors.grid_lines", c.Colors.GridLines},
	}
	for _, p := range palette {
		if err := validateRGB(p.rgb, p.name); err != nil {
			return err
		}
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	return nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
