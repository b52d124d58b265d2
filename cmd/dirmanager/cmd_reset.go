package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/dirmanager/internal/cli"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the configuration file",
	Long: `Delete the configuration file so every setting returns to its default.

The remembered working directory is forgotten as well.`,
	Args: cobra.NoArgs,
	RunE: resetConfig,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func resetConfig(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSessionContext(sessionOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize session context: %w", err)
	}
	defer ctx.Close()

	configFile := ctx.Config.FilePath()

	if !resetForce {
		ctx.UI.Header("Reset Configuration")
		ctx.UI.Warning("Configuration file will be DELETED")
		ctx.UI.Warningf("  %s", configFile)
		fmt.Println()

		confirm, err := ctx.UI.PromptYesNo("Are you sure you want to reset?", false)
		if err != nil {
			return err
		}

		if !confirm {
			ctx.UI.Info("Reset cancelled")
			return nil
		}
	}

	if err := os.Remove(configFile); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config file: %w", err)
		}
		ctx.UI.Info("Config file did not exist")
	} else {
		ctx.UI.Successf("Configuration file deleted: %s", configFile)
	}
	os.Remove(configFile + ".lock")

	return nil
}
