// Package cmd implements the oboron command-line front end: a thin Cobra
// tree over the codec, keychain, and internal/profile packages. No core
// package imports anything from here.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "oboron",
	Short: "String-to-token codec: encrypt and encode strings into opaque, reversible tokens.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs the tree.
// Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oboron: "+err.Error())
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the command tree with the provided argument list
// instead of os.Args. Intended for tests that invoke specific
// sub-commands without modifying os.Args.
func ExecuteWithArgs(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.oboron/config.yaml)")
}

// initConfig reads in config file and ENV variables if set. The oboron
// CLI's own persisted profile state (internal/profile) is a separate,
// simpler store; this Viper instance exists only to support an ad hoc
// --config override and OBORON_*-prefixed environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
	viper.SetEnvPrefix("oboron")
	viper.AutomaticEnv()
}
