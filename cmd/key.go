package cmd

import (
	"fmt"

	"github.com/go-i2p/oboron/keychain"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Print a freshly generated random key",
	RunE: func(cmd *cobra.Command, args []string) error {
		hex, _ := cmd.Flags().GetBool("hex")
		kc, err := keychain.Generate()
		if err != nil {
			return err
		}
		if hex {
			fmt.Println(kc.Hex())
			return nil
		}
		fmt.Println(kc.Base64())
		return nil
	},
}

func init() {
	keyCmd.Flags().Bool("hex", false, "print the key in hex instead of base64")
	rootCmd.AddCommand(keyCmd)
}
