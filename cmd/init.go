package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/hubloom-cli/internal/hub"
	"github.com/spf13/cobra"
)

var (
	initDescription string
	// hubName is shared by every command that takes --hub.
	hubName string
)

var initCmd = &cobra.Command{
	Use:   "init <hub-name>",
	Short: "Initialize a new knowledge hub",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		root, err := defaultHubsDir()
		if err != nil {
			return err
		}
		h, err := hub.Create(name, initDescription, filepath.Join(root, name), hubOptions()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Hub initialized: %s\n", h.RootDir())
		return nil
	},
}

func expandHome(dir string) string {
	if !strings.HasPrefix(dir, "~") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	dir = strings.TrimPrefix(dir, "~")
	dir = strings.TrimPrefix(dir, string(os.PathSeparator))
	dir = strings.TrimPrefix(dir, "/")
	return filepath.Join(home, dir)
}

func defaultHubsDir() (string, error) {
	var dir string
	if cfg != nil && cfg.HubsDir != "" {
		dir = filepath.Clean(expandHome(cfg.HubsDir))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".hubloom", "hubs")
	}
	return dir, nil
}

// resolveHubDir maps a hub name to its directory. Without a name it tries the
// configured default hub, then a hub.json above the working directory.
func resolveHubDir(name string) (string, error) {
	if name == "" && cfg != nil {
		name = cfg.DefaultHub
	}
	if name == "" {
		if dir, err := hub.Locate(""); err == nil {
			return dir, nil
		}
		return "", errors.New("--hub is required (or set default_hub, or run inside a hub directory)")
	}
	root, err := defaultHubsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// openHub loads the hub named by --hub. Callers must Close it.
func openHub(name string) (*hub.Hub, error) {
	dir, err := resolveHubDir(name)
	if err != nil {
		return nil, err
	}
	return hub.LoadHub(dir, hubOptions()...)
}

func addHubFlag(c *cobra.Command) {
	c.Flags().StringVarP(&hubName, "hub", "H", "", "hub name (default: config default_hub or current hub directory)")
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initDescription, "desc", "d", "", "hub description")
}
