package cmd

import (
	"fmt"
	"os"

	"github.com/go-i2p/oboron/codec"
	"github.com/go-i2p/oboron/internal/profile"
	"github.com/spf13/cobra"
)

var encCmd = &cobra.Command{
	Use:   "enc [plaintext]",
	Short: "Encode plaintext into an oboron token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plaintext, err := readInput(args, os.Stdin)
		if err != nil {
			return err
		}
		if plaintext == "" {
			return fmt.Errorf("empty plaintext")
		}

		store, err := profile.Open()
		if err != nil {
			return err
		}
		kc, err := resolveKeychain(cmd, store)
		if err != nil {
			return err
		}
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		f, err := resolveFormat(cmd, cfg)
		if err != nil {
			return err
		}

		token, err := codec.Encode(kc, plaintext, f)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	addCodecFlags(encCmd)
	rootCmd.AddCommand(encCmd)
}
