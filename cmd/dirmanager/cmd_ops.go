package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/dirmanager/internal/cli"
	"github.com/zoro11031/dirmanager/internal/operations"
)

// operation runs one action against the session opened on --dir
type operation func(s *operations.Session, args []string) (*operations.Result, error)

var opCommands = []*cobra.Command{
	{
		Use:   "list",
		Short: "Display directory contents",
		Args:  cobra.NoArgs,
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.List()
		}),
	},
	{
		Use:   "copy SOURCE TARGET",
		Short: "Copy a file, replacing the target",
		Args:  cobra.ExactArgs(2),
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.Copy(args[0], args[1])
		}),
	},
	{
		Use:   "move SOURCE TARGET",
		Short: "Move a file, replacing the target",
		Args:  cobra.ExactArgs(2),
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.Move(args[0], args[1])
		}),
	},
	{
		Use:   "delete NAME",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.DeleteFile(args[0])
		}),
	},
	{
		Use:   "mkdir NAME",
		Short: "Create a directory",
		Args:  cobra.ExactArgs(1),
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.CreateDirectory(args[0])
		}),
	},
	{
		Use:   "rmdir NAME",
		Short: "Delete an empty directory",
		Args:  cobra.ExactArgs(1),
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.DeleteDirectory(args[0])
		}),
	},
	{
		Use:   "search PATTERN",
		Short: "Search entries by name or glob pattern",
		Long: `Print the names of entries in the working directory matching PATTERN.

Patterns support * (any characters), ? (one character), [abc] and [!abc]
classes, and {a,b} alternatives. Quote the pattern to keep the shell from
expanding it.`,
		Args: cobra.ExactArgs(1),
		RunE: runOperation(func(s *operations.Session, args []string) (*operations.Result, error) {
			return s.Search(args[0])
		}),
	},
}

func init() {
	for _, cmd := range opCommands {
		rootCmd.AddCommand(cmd)
	}
}

func runOperation(op operation) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewSessionContext(sessionOptions())
		if err != nil {
			return fmt.Errorf("failed to initialize session context: %w", err)
		}
		defer ctx.Close()

		if err := ctx.OpenDirectory(workDir); err != nil {
			ctx.UI.Error(cli.MsgInvalidDirectory)
			return fmt.Errorf("%w: %w", cli.ErrReported, err)
		}

		res, err := op(ctx.Session, args)
		if err != nil {
			return cli.Report(ctx.UI, err)
		}

		cli.Render(ctx.UI, res, nil)
		return nil
	}
}
