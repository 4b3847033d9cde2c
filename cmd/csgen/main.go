// csgen generates C# source files from YAML, JSON or TOML requests and from
// Go struct definitions.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"csgen/internal/config"
	"csgen/internal/logger"
)

// app holds state shared by all subcommands, populated before each run.
type app struct {
	configFile string
	verbose    bool
	jsonLog    bool

	cfg *config.Config
	log *zap.SugaredLogger
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	a := &app{}
	root := rootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	return err
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csgen",
		Short: "C# source generator",
		Long: `csgen renders C# classes and enums from declarative requests.

Requests describe classes (namespace, base type, interfaces, fields,
methods, repeated methods) and enums in YAML, JSON or TOML. Go structs
and const groups can be imported directly.

Examples:
  csgen generate -r request.yaml -o Assets/Generated
  csgen import -i models.go --namespace Game.Models -o Models
  csgen check Assets/Generated/*.cs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (YAML, JSON or TOML)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&a.jsonLog, "json-log", false, "log as JSON")

	cmd.AddCommand(generateCmd(a))
	cmd.AddCommand(importCmd(a))
	cmd.AddCommand(checkCmd(a))

	return cmd
}

func (a *app) setup() error {
	log, err := logger.New(a.verbose, a.jsonLog)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	a.log = log

	a.cfg = config.New()
	if a.configFile != "" {
		if err := a.cfg.LoadFile(a.configFile); err != nil {
			return errors.Wrap(err, "loading config")
		}
		a.log.Debugw("loaded config", logger.FieldFile, a.configFile)
	}
	return nil
}

// outputDir returns the flag value, falling back to the configured directory.
func (a *app) outputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.cfg.Options.OutputDir
}

func reportWritten(paths []string) {
	ok := color.New(color.FgGreen).Sprint("wrote")
	for _, p := range paths {
		fmt.Fprintf(os.Stderr, "%s %s\n", ok, p)
	}
}

// parseCommaSeparated splits a comma-separated string into a slice of trimmed strings.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
