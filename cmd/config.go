package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/hubloom-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set HubLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(w, "No config loaded")
			return nil
		}
		fmt.Fprintf(w, "hubs_dir: %s\n", cfg.HubsDir)
		if cfg.DefaultHub != "" {
			fmt.Fprintf(w, "default_hub: %s\n", cfg.DefaultHub)
		}
		fmt.Fprintf(w, "excerpt_max_length: %d\n", cfg.ExcerptMaxLength)
		fmt.Fprintf(w, "words_per_minute: %d\n", cfg.WordsPerMinute)
		if cfg.VocabularyFile != "" {
			fmt.Fprintf(w, "vocabulary_file: %s\n", cfg.VocabularyFile)
		}
		fmt.Fprintf(w, "max_file_bytes: %d\n", cfg.MaxFileBytes)
		if len(cfg.RenderExtensions) > 0 {
			fmt.Fprintf(w, "render_extensions: %s\n", strings.Join(cfg.RenderExtensions, ","))
		} else {
			fmt.Fprintln(w, "render_extensions: (default)")
		}
		fmt.Fprintf(w, "hard_wraps: %t\n", cfg.HardWraps)
		fmt.Fprintf(w, "safe_mode: %t\n", cfg.SafeMode)
		fmt.Fprintf(w, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(w, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		next := *cfg
		switch key {
		case "hubs_dir":
			next.HubsDir = val
		case "default_hub":
			next.DefaultHub = val
		case "vocabulary_file":
			next.VocabularyFile = val
		case "log_level":
			next.LogLevel = val
		case "log_format":
			next.LogFormat = val
		case "render_extensions":
			next.RenderExtensions = splitList(val)
		case "hard_wraps", "safe_mode":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %w", key, err)
			}
			if key == "hard_wraps" {
				next.HardWraps = b
			} else {
				next.SafeMode = b
			}
		case "excerpt_max_length":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for excerpt_max_length: %w", err)
			}
			next.ExcerptMaxLength = i
		case "words_per_minute":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for words_per_minute: %w", err)
			}
			next.WordsPerMinute = i
		case "max_file_bytes":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for max_file_bytes: %w", err)
			}
			next.MaxFileBytes = i
		default:
			return fmt.Errorf("unknown key: %s (valid: %v)", key, cfgpkg.Keys)
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		cfg = &next
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

// splitList parses a comma separated value; an empty value clears the list.
func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
