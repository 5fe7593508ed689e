package tabletop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// CardAspect is a card's height divided by its width.
const CardAspect = 1.4

// Config holds everything needed to build and run a table.
type Config struct {
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Table  TableConfig  `toml:"table"`
	Setup  SetupConfig  `toml:"setup"`
	Keys   KeysConfig   `toml:"keys"`

	// Logger receives table logs. Nil means slog.Default().
	Logger *slog.Logger `toml:"-"`
}

// WindowConfig controls the game window.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	VSync   bool   `toml:"vsync"`
	ShowHUD bool   `toml:"show_hud"`
}

// LogConfig selects the log level: debug, info, warn, or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// TableConfig sizes cards and tunes interaction.
type TableConfig struct {
	// CardSize is a card's width; its height is CardSize * CardAspect.
	CardSize           float64 `toml:"card_size"`
	DragDeadZone       float64 `toml:"drag_dead_zone"`
	LayoutTweenSeconds float64 `toml:"layout_tween_seconds"`
	AssetsDir          string  `toml:"assets_dir"`
}

// CardDimensions returns the card width and height.
func (c TableConfig) CardDimensions() Vec2 {
	return Vec2{c.CardSize, c.CardSize * CardAspect}
}

// SetupConfig controls the opening deal.
type SetupConfig struct {
	DonCards       int `toml:"don_cards"`
	CharacterCards int `toml:"character_cards"`
}

// KeysConfig binds table actions to Ebitengine key names.
type KeysConfig struct {
	DebugDump   string `toml:"debug_dump"`
	Organize    string `toml:"organize"`
	RemoveCard  string `toml:"remove_card"`
	OpenSpawner string `toml:"open_spawner"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "tabletop",
			Width:  1920,
			Height: 1080,
			VSync:  true,
		},
		Log: LogConfig{Level: "info"},
		Table: TableConfig{
			CardSize:           120,
			DragDeadZone:       defaultDragDeadZone,
			LayoutTweenSeconds: 0.2,
			AssetsDir:          "assets",
		},
		Setup: SetupConfig{DonCards: 10},
		Keys: KeysConfig{
			DebugDump:   "F2",
			Organize:    "F3",
			RemoveCard:  "Backspace",
			OpenSpawner: "F4",
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("decode config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate reports every problem with cfg.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Table.CardSize <= 0 {
		errs = append(errs, fmt.Errorf("table.card_size %v must be positive", c.Table.CardSize))
	}
	if c.Table.DragDeadZone < 0 {
		errs = append(errs, fmt.Errorf("table.drag_dead_zone %v must not be negative", c.Table.DragDeadZone))
	}
	if c.Table.LayoutTweenSeconds < 0 {
		errs = append(errs, fmt.Errorf("table.layout_tween_seconds %v must not be negative", c.Table.LayoutTweenSeconds))
	}
	if c.Setup.DonCards < 0 || c.Setup.CharacterCards < 0 {
		errs = append(errs, errors.New("setup card counts must not be negative"))
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := resolveKeyBindings(c.Keys); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
