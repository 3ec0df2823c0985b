package cmd

import (
	"fmt"

	"github.com/go-i2p/oboron/internal/profile"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change the oboron config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		fmt.Printf("profile: %s\nscheme: %s\nencoding: %s\n", cfg.ActiveProfile, cfg.DefaultScheme, cfg.DefaultEncoding)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single configuration value (profile, scheme, or encoding)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		switch args[0] {
		case "profile":
			cfg.ActiveProfile = args[1]
		case "scheme":
			cfg.DefaultScheme = args[1]
		case "encoding":
			cfg.DefaultEncoding = args[1]
		default:
			return fmt.Errorf("unknown config key %q (want profile, scheme, or encoding)", args[0])
		}
		return store.SetConfig(cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
