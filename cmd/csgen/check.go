package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"csgen/internal/check"
	"csgen/internal/logger"
)

func checkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.cs>...",
		Short: "Report C# syntax errors in existing files",
		Long: `Parse C# files with the tree-sitter C# grammar and list syntax errors.
Only syntax is checked; nothing is compiled.

Examples:
  csgen check Assets/Generated/Player.cs
  csgen check Assets/Generated/*.cs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrap(err, "reading source")
				}

				problems, err := check.Source(cmd.Context(), string(data))
				if err != nil {
					return errors.Wrapf(err, "checking %s", path)
				}
				a.log.Debugw("checked file", logger.FieldFile, path, logger.FieldProblems, len(problems))

				if len(problems) == 0 {
					fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("OK"), path)
					continue
				}
				failed++
				fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("FAIL"), path)
				for _, p := range problems {
					fmt.Printf("  %s\n", p)
				}
			}

			if failed > 0 {
				return errors.Wrapf(check.ErrSyntax, "%d of %d file(s)", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}
