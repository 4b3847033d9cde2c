package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"csgen/internal/logger"
	"csgen/internal/parser"
)

func importCmd(a *app) *cobra.Command {
	var (
		inputFile string
		outputDir string
		types     string
		exclude   string
		namespace string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Generate C# classes and enums from Go types",
		Long: `Parse a Go source file and render its structs as C# classes and its
typed const groups as C# enums.

Examples:
  csgen import -i models.go
  csgen import -i models.go -T User,Order -o Models --namespace Shop
  csgen import -i models.go -X InternalConfig,PrivateData`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" {
				return errors.New("input file is required (-i or --input)")
			}

			// Apply CLI overrides
			if types != "" {
				a.cfg.Options.IncludeTypes = parseCommaSeparated(types)
			}
			if exclude != "" {
				a.cfg.Options.ExcludeTypes = parseCommaSeparated(exclude)
			}
			if namespace != "" {
				a.cfg.Options.Namespace = namespace
			}
			if all {
				exportedOnly := false
				a.cfg.Options.ExportedOnly = &exportedOnly
			}

			req, err := parser.New(a.cfg).ParseFile(inputFile)
			if err != nil {
				return errors.Wrap(err, "parsing input")
			}
			for _, c := range req.Classes {
				a.log.Debugw("imported struct", logger.FieldUnit, c.Name, logger.FieldFields, len(c.Fields))
			}
			for _, e := range req.Enums {
				a.log.Debugw("imported enum", logger.FieldUnit, e.Name, logger.FieldMembers, len(e.Members))
			}

			return a.emit(cmd, req, a.outputDir(outputDir))
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input Go source file (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: stdout)")
	cmd.Flags().StringVarP(&types, "types", "T", "", "only import these types (comma-separated)")
	cmd.Flags().StringVarP(&exclude, "exclude", "X", "", "exclude these types (comma-separated)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "C# namespace of the generated units")
	cmd.Flags().BoolVar(&all, "all", false, "also import unexported types")

	return cmd
}
