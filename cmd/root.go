package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/storybook/internal/app"
	"github.com/zjrosen/storybook/internal/cachemanager"
	"github.com/zjrosen/storybook/internal/config"
	"github.com/zjrosen/storybook/internal/flags"
	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/mode/shared"
	"github.com/zjrosen/storybook/internal/ui/markdown"
	"github.com/zjrosen/storybook/internal/ui/vortexview"
	"github.com/zjrosen/storybook/internal/vortex"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin so the
	// OSC 11 reply cannot leak into the input loop.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config.
const localConfigPath = ".storybook/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:   "storybook",
	Short: "A terminal reader for choose-your-own-adventure books",
	Long: `Read choose-your-own-adventure books in the terminal. The book opens
on a two-page spread; pick a choice with its number or click it to turn
to the page it names.

Stories are YAML files. A few are built in (see 'storybook stories').`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return cfgErr },
	RunE:              runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/storybook/config.yaml)")
	rootCmd.PersistentFlags().StringP("story", "s", "",
		"embedded story name or path to a YAML story")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug.log and enable the log overlay (ctrl+x)")
	rootCmd.Flags().IntP("page", "p", 0,
		"page to open after the cover (0 uses the story's start page)")
	rootCmd.Flags().Int64("seed", 0,
		"vortex seed for the loading spinner and cover art")
	rootCmd.Flags().Bool("no-loading", false,
		"skip the loading screen")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"do not reload the story when its file changes")

	_ = viper.BindPFlag("story", rootCmd.PersistentFlags().Lookup("story"))
	_ = viper.BindPFlag("start_page", rootCmd.Flags().Lookup("page"))
	_ = viper.BindPFlag("vortex.seed", rootCmd.Flags().Lookup("seed"))
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	v.SetEnvPrefix("STORYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			_ = config.WriteDefaultConfig(cfgFile)
		}
		v.SetConfigFile(cfgFile)
	default:
		// Config lookup order:
		// 1. .storybook/config.yaml (current directory)
		// 2. ~/.config/storybook/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else if p := config.DefaultConfigPath(); p != "" {
			v.AddConfigPath(filepath.Dir(p))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// First run: write the commented defaults so there is something to edit.
		if p := config.DefaultConfigPath(); p != "" {
			if writeErr := config.WriteDefaultConfig(p); writeErr == nil {
				v.SetConfigFile(p)
				_ = v.ReadInConfig()
			}
		}
	}

	cfg, cfgErr = config.Load(v)
}

// configPath is where commands that edit the config write to.
func configPath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

func debugEnabled() bool {
	return debugFlag || os.Getenv("STORYBOOK_DEBUG") != ""
}

func runApp(cmd *cobra.Command, _ []string) error {
	debug := debugEnabled()
	if debug {
		logPath := os.Getenv("STORYBOOK_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath, log.DefaultBufferSize)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "Storybook starting", "version", version, "config", configPath(), "logPath", logPath)
	}

	if off, _ := cmd.Flags().GetBool("no-loading"); off {
		cfg.Loading.Enabled = false
	}
	if off, _ := cmd.Flags().GetBool("no-auto-reload"); off {
		cfg.AutoReload = false
	}

	src, err := resolveStory(cfg.Story)
	if err != nil {
		return err
	}

	services := newServices(cfg, src)
	zone.NewGlobal()

	model := app.New(services, debug)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newServices wires the shared dependencies the modes read from.
func newServices(c config.Config, src storySource) mode.Services {
	style := c.UI.MarkdownStyle
	if style == "" {
		style = "light"
		if lipgloss.HasDarkBackground() {
			style = "dark"
		}
	}

	layouts := cachemanager.NewInMemoryCacheManager[string, []vortex.Placement](
		"vortex-layouts", vortexview.LayoutTTL, cachemanager.DefaultCleanupInterval)

	return mode.Services{
		Config:     &c,
		ConfigPath: configPath(),
		StoryPath:  src.path,
		Open:       src.open,
		Layouts:    vortexview.NewLayouts(layouts),
		Markdown:   markdown.NewPool(style),
		Flags:      flags.New(c.Flags),
		Clipboard:  shared.SystemClipboard{},
		Clock:      shared.RealClock{},
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
