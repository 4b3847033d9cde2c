package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"csgen/internal/generator"
	"csgen/internal/logger"
	"csgen/internal/model"
	"csgen/internal/parser"
)

func generateCmd(a *app) *cobra.Command {
	var (
		requestFile string
		outputDir   string
		check       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the classes and enums of a request",
		Long: `Render every class and enum of a request file.

The request format follows the file extension (.yaml, .yml, .json, .toml).
Without an output directory the units are written to stdout, each preceded
by a "// <file>" line when there is more than one.

Examples:
  csgen generate -r request.yaml
  csgen generate -r request.toml -o Assets/Generated --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if requestFile == "" {
				return errors.New("request file is required (-r or --request)")
			}
			if check {
				a.cfg.Options.Check = true
			}

			req, err := parser.ParseRequestFile(requestFile)
			if err != nil {
				return err
			}
			a.log.Debugw("parsed request",
				logger.FieldFile, requestFile,
				logger.FieldCount, len(req.Classes)+len(req.Enums),
			)

			return a.emit(cmd, req, a.outputDir(outputDir))
		},
	}

	cmd.Flags().StringVarP(&requestFile, "request", "r", "", "request file (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: stdout)")
	cmd.Flags().BoolVar(&check, "check", false, "syntax-check the generated source")

	return cmd
}

// emit renders req to dir, or to stdout when dir is empty.
func (a *app) emit(cmd *cobra.Command, req *model.Request, dir string) error {
	gen, err := generator.New(a.cfg, generator.WithLogger(a.log))
	if err != nil {
		return err
	}

	if dir == "" {
		return gen.Generate(cmd.Context(), req, os.Stdout)
	}

	paths, err := gen.WriteFiles(cmd.Context(), req, dir)
	if err != nil {
		return err
	}
	reportWritten(paths)
	return nil
}
