package cmd

import (
	"fmt"

	"github.com/go-i2p/oboron/internal/profile"
	"github.com/go-i2p/oboron/keychain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named key profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every named profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		names, err := store.ListProfiles()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a profile's key in base64",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		b64, err := store.ReadProfileKey(args[0])
		if err != nil {
			return err
		}
		fmt.Println(b64)
		return nil
	},
}

var profileActivateCmd = &cobra.Command{
	Use:   "activate <name>",
	Short: "Make <name> the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		if !store.ProfileExists(args[0]) {
			return fmt.Errorf("no such profile: %q", args[0])
		}
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		cfg.ActiveProfile = args[0]
		return store.SetConfig(cfg)
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Generate a fresh key under a new profile name (random name if omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		} else {
			name = "profile-" + uuid.NewString()
		}
		store, err := profile.Open()
		if err != nil {
			return err
		}
		if store.ProfileExists(name) {
			return fmt.Errorf("profile %q already exists", name)
		}
		b64, err := keychain.GenerateBase64()
		if err != nil {
			return err
		}
		if err := store.WriteProfileKey(name, b64); err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile, backing up its key first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		return store.DeleteProfile(args[0])
	},
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profile.Open()
		if err != nil {
			return err
		}
		return store.RenameProfile(args[0], args[1])
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <name> <key>",
	Short: "Overwrite a profile's key directly (hex or base64), backing up the previous one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kc, err := parseKey(args[1])
		if err != nil {
			return err
		}
		store, err := profile.Open()
		if err != nil {
			return err
		}
		return store.WriteProfileKey(args[0], kc.Base64())
	},
}

func init() {
	profileCmd.AddCommand(
		profileListCmd,
		profileShowCmd,
		profileActivateCmd,
		profileCreateCmd,
		profileDeleteCmd,
		profileRenameCmd,
		profileSetCmd,
	)
	rootCmd.AddCommand(profileCmd)
}
