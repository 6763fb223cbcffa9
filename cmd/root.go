package cmd

import (
	"context"
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/hubloom-cli/internal/config"
	"github.com/KaramelBytes/hubloom-cli/internal/hub"
	"github.com/KaramelBytes/hubloom-cli/internal/importer"
	"github.com/KaramelBytes/hubloom-cli/internal/logging"
	"github.com/KaramelBytes/hubloom-cli/internal/parser"
	"github.com/KaramelBytes/hubloom-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	debug     bool
	logFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
	// Structured logger for diagnostics; command results go to stdout.
	logger = logging.Discard()
	// Custom classifier vocabulary, nil means built-in
	vocab *importer.Vocabulary
)

var rootCmd = &cobra.Command{
	Use:   "hubloom",
	Short: "HubLoom CLI: import markdown into a knowledge hub",
	Long: `HubLoom imports markdown, text and HTML documents into a local knowledge hub.
Each document is parsed into a title, excerpt, video references, a content type
(article, guide or tool review) and a read-time estimate, then stored in the hub's
SQLite database for listing, rendering and export.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hubloom/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")
}

// setup loads config, logger and vocabulary before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: failed to load config: %v\n", err)
		cfg = nil
	} else {
		cfg = c
	}

	level, format := "info", "text"
	if cfg != nil {
		level, format = cfg.LogLevel, cfg.LogFormat
	}
	if debug {
		level = "debug"
	}
	if logFormat != "" {
		format = logFormat
	}
	l, err := logging.New(logging.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	logger = l
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))

	vocab = nil
	if cfg != nil && cfg.VocabularyFile != "" {
		v, err := importer.LoadVocabulary(expandHome(cfg.VocabularyFile))
		if err != nil {
			return err
		}
		vocab = &v
		logger.Debug("loaded vocabulary", "file", cfg.VocabularyFile,
			"guide_terms", len(v.Guide), "tool_review_terms", len(v.ToolReview))
	}
	return nil
}

func defaultSettings() hub.Settings {
	if cfg == nil {
		return hub.Settings{ExcerptMaxLength: importer.DefaultMaxExcerptLength, WordsPerMinute: importer.DefaultWordsPerMinute}
	}
	return hub.Settings{ExcerptMaxLength: cfg.ExcerptMaxLength, WordsPerMinute: cfg.WordsPerMinute}
}

func maxFileBytes() int64 {
	if cfg == nil || cfg.MaxFileBytes <= 0 {
		return parser.MaxFileBytes
	}
	return cfg.MaxFileBytes
}

// renderOptions applies the configured markdown extensions to HTML output.
func renderOptions(embedVideos bool) render.Options {
	opts := render.Options{EmbedVideos: embedVideos}
	if cfg != nil {
		opts.Extensions = cfg.RenderExtensions
		opts.HardWraps = cfg.HardWraps
		opts.SafeMode = cfg.SafeMode
	}
	return opts
}

func hubOptions() []hub.Option {
	opts := []hub.Option{
		hub.WithLogger(logger),
		hub.WithDefaults(defaultSettings()),
		hub.WithMaxFileBytes(maxFileBytes()),
	}
	if vocab != nil {
		opts = append(opts, hub.WithVocabulary(*vocab))
	}
	return opts
}

// newImporter builds an importer from global settings for commands that run without a hub.
func newImporter() *importer.Importer {
	s := defaultSettings()
	opts := []importer.Option{
		importer.WithMaxExcerptLength(s.ExcerptMaxLength),
		importer.WithWordsPerMinute(s.WordsPerMinute),
	}
	if vocab != nil {
		opts = append(opts, importer.WithVocabulary(*vocab))
	}
	return importer.New(opts...)
}
