package main

import (
	"log/slog"
	"os"

	"github.com/phanxgames/tabletop"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	width      int
	height     int
)

var rootCmd = &cobra.Command{
	Use:          "tabletop",
	Short:        "Card-game table prototype",
	Long:         `Opens a window with a card table: drag cards, right-click to tap, F3 to lay out rows, F4 to spawn a card.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		table, err := tabletop.NewTable(cfg)
		if err != nil {
			return err
		}
		table.Setup(cfg.Setup)
		return tabletop.Run(table, cfg.Window)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height in pixels")
	rootCmd.AddCommand(configCmd)
}

// loadConfig builds the effective configuration: defaults, then the config
// file, then flags that were set explicitly. It also installs the logger.
func loadConfig(cmd *cobra.Command) (tabletop.Config, error) {
	cfg := tabletop.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = tabletop.LoadConfig(configPath); err != nil {
			return tabletop.Config{}, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return tabletop.Config{}, err
	}

	level, _ := tabletop.ParseLogLevel(cfg.Log.Level)
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.Logger)
	return cfg, nil
}
