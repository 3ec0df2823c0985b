package cmd

import (
	"fmt"

	"github.com/go-i2p/oboron/internal/profile"
	"github.com/go-i2p/oboron/keychain"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and generate a key for the active profile if one doesn't exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		if err := store.SetConfig(cfg); err != nil {
			return err
		}

		if store.ProfileExists(cfg.ActiveProfile) {
			fmt.Printf("profile %q already exists, leaving it untouched\n", cfg.ActiveProfile)
			return nil
		}
		b64, err := keychain.GenerateBase64()
		if err != nil {
			return err
		}
		if err := store.WriteProfileKey(cfg.ActiveProfile, b64); err != nil {
			return err
		}
		fmt.Printf("generated key for profile %q\n", cfg.ActiveProfile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
