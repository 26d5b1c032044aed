package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mdview/internal/config"
)

var initYes bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mdview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure mdview for your project and generates a .mdview.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !initYes {
			_, err := config.RunWizard(cfgFile)
			return err
		}

		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists", cfgFile)
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "write the default configuration without prompting")
	rootCmd.AddCommand(initCmd)
}
