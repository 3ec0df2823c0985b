package cmd

import (
	"fmt"
	"os"

	"github.com/go-i2p/oboron/codec"
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/internal/profile"
	"github.com/spf13/cobra"
)

var decCmd = &cobra.Command{
	Use:   "dec [obtext]",
	Short: "Decode an oboron token back into plaintext",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := readInput(args, os.Stdin)
		if err != nil {
			return err
		}
		if token == "" {
			return fmt.Errorf("empty token")
		}

		store, err := profile.Open()
		if err != nil {
			return err
		}
		kc, err := resolveKeychain(cmd, store)
		if err != nil {
			return err
		}

		autodetect, _ := cmd.Flags().GetBool("autodetect")
		legacy, _ := cmd.Flags().GetBool("legacy")

		var plaintext string
		if autodetect {
			plaintext, err = codec.Autodecode(kc, token, legacy)
		} else {
			var cfg profile.Config
			cfg, err = store.Config()
			if err == nil {
				var f format.Format
				f, err = resolveFormat(cmd, cfg)
				if err == nil {
					plaintext, err = codec.Decode(kc, token, f)
				}
			}
		}
		if err != nil {
			return err
		}
		fmt.Println(plaintext)
		return nil
	},
}

func init() {
	addCodecFlags(decCmd)
	decCmd.Flags().Bool("autodetect", false, "autodetect both scheme and encoding instead of using --format/--scheme/--encoding")
	decCmd.Flags().Bool("legacy", false, "allow falling back to the legacy ob00 codec during autodetect")
	rootCmd.AddCommand(decCmd)
}
