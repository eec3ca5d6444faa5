package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nahw-app/nahw/internal/config"
	"github.com/nahw-app/nahw/internal/db"
	"github.com/nahw-app/nahw/internal/logging"
	"github.com/nahw-app/nahw/internal/tui"
	"github.com/nahw-app/nahw/internal/tui/anim"
	"github.com/nahw-app/nahw/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the lesson menu",
	Long:  "Launch the nahw terminal lesson menu.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the lesson menu requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the theme subcommands",
			NextStep: "nahw --help",
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := GetConfig()
	// The TUI owns the terminal, so logs go to a file.
	if err := logging.Init(logging.Config{Level: cfg.Log.Level, File: cfg.LogPath()}); err != nil {
		return err
	}

	theme, err := loadTheme(cfg)
	if err != nil {
		return err
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	timing := anim.Timing{Duration: cfg.Animation.Duration, Easing: anim.EaseInOutCubic}
	pressTiming := anim.Timing{Duration: cfg.Animation.PressDuration, Easing: anim.EaseInOutCubic}

	return tui.Run(tui.Options{
		Sections:    tui.LessonMenu(),
		Theme:       theme,
		DarkMode:    cfg.DarkMode,
		Store:       db.NewSettingsRepository(database),
		ArabicFont:  resolveArabicFont(cfg),
		Timing:      timing,
		PressTiming: pressTiming,
	})
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// loadTheme picks the palette file when configured, otherwise a built-in.
func loadTheme(cfg *config.Config) (styles.Theme, error) {
	if cfg.PaletteFile != "" {
		return styles.LoadPaletteFile(cfg.PaletteFile)
	}
	return styles.LookupTheme(cfg.Theme)
}

func newFontResolver(cfg *config.Config) (*styles.FontResolver, []string) {
	dirs := cfg.Fonts.Dirs
	if len(dirs) == 0 {
		dirs = styles.DefaultFontDirs(runtime.GOOS)
	}
	fonts, err := styles.ScanFontDirs(dirs)
	if err != nil {
		logger := logging.Component("fonts")
		logger.Warn().Err(err).Msg("font scan failed")
	}
	return styles.NewFontResolver(fonts, ""), dirs
}

func resolveArabicFont(cfg *config.Config) string {
	resolver, _ := newFontResolver(cfg)
	return resolver.Resolve(styles.FontArabic)
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
