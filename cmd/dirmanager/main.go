package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/dirmanager/internal/cli"
	"github.com/zoro11031/dirmanager/pkg/version"
)

var (
	// Persistent flags shared by every command
	configPath string
	logFile    string
	debug      bool
	ignoreCase bool
	workDir    string
)

var rootCmd = &cobra.Command{
	Use:   "dirmanager [directory]",
	Short: "Interactive directory maintenance tool",
	Long: `A console tool for browsing and maintaining the files of one directory.

The interactive menu offers:
- Listing directory contents
- Copying, moving and deleting files
- Creating and deleting subdirectories
- Searching entries by name or glob pattern

Run without a subcommand to launch the interactive menu. If no directory is
given, you will be asked for one.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu [directory]",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface for a directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInteractiveMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration file (default ~/.dirmanager.conf)")
	flags.StringVar(&logFile, "log-file", "", "Write a diagnostic log to this file")
	flags.BoolVar(&debug, "debug", false, "Log at debug level")
	flags.BoolVar(&ignoreCase, "ignore-case", false, "Match search patterns case-insensitively")
	flags.StringVarP(&workDir, "dir", "C", ".", "Working directory")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func sessionOptions() cli.Options {
	return cli.Options{
		ConfigPath: configPath,
		LogFile:    logFile,
		Debug:      debug,
		IgnoreCase: ignoreCase,
	}
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSessionContext(sessionOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize session context: %w", err)
	}
	defer ctx.Close()

	// A directory given on the command line skips the prompt
	dir := ""
	if len(args) == 1 {
		dir = args[0]
	} else if cmd.Flags().Changed("dir") {
		dir = workDir
	}
	if dir != "" {
		if err := ctx.OpenDirectory(dir); err != nil {
			ctx.UI.Error(cli.MsgInvalidDirectory)
			return fmt.Errorf("%w: %w", cli.ErrReported, err)
		}
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
