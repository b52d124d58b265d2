package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoro11031/dirmanager/internal/cli"
	"github.com/zoro11031/dirmanager/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  `Display the effective configuration, including defaults.`,
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  setConfig,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  unsetConfig,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSessionContext(sessionOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize session context: %w", err)
	}
	defer ctx.Close()

	ctx.UI.Header("dirmanager Configuration")
	ctx.UI.Print("")

	keys := make([]string, 0, len(config.Defaults))
	for key := range config.Defaults {
		keys = append(keys, key)
	}
	for key := range ctx.Config.GetAll() {
		if _, ok := config.Defaults[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !ctx.Config.Exists(key) {
			ctx.UI.Printf("  %-20s %s (default)", key, config.Defaults[key])
			continue
		}
		value, err := ctx.Config.Get(key)
		if err != nil {
			return err
		}
		ctx.UI.Printf("  %-20s %s", key, value)
	}

	ctx.UI.Print("")
	ctx.UI.Separator()

	exists, err := ctx.FS.FileExists(ctx.Config.FilePath())
	if err != nil {
		return err
	}
	if exists {
		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
	} else {
		ctx.UI.Infof("Configuration file: %s (not created yet)", ctx.Config.FilePath())
	}

	return nil
}

func setConfig(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSessionContext(sessionOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize session context: %w", err)
	}
	defer ctx.Close()

	key := strings.ToUpper(args[0])
	if err := ctx.Config.Set(key, args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	ctx.UI.Successf("%s=%s", key, args[1])
	return nil
}

func unsetConfig(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSessionContext(sessionOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize session context: %w", err)
	}
	defer ctx.Close()

	key := strings.ToUpper(args[0])
	if err := ctx.Config.Delete(key); err != nil {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}
	ctx.UI.Successf("%s removed", key)
	return nil
}
