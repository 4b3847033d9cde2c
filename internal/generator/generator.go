// Package generator turns generation requests into rendered C# units.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"csgen/internal/check"
	"csgen/internal/config"
	"csgen/internal/logger"
	"csgen/internal/model"
	"csgen/internal/naming"
)

// ErrInvalidArgument marks request values the builders cannot express, such
// as an unknown access modifier.
var ErrInvalidArgument = errors.New("invalid argument")

// Generator builds and renders the classes and enums of a request.
type Generator struct {
	config *config.Config
	names  naming.Supplier
	log    *zap.SugaredLogger
	funcs  template.FuncMap
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger; the default discards output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(g *Generator) { g.log = log }
}

// WithNames replaces the name supplier selected by the config.
func WithNames(s naming.Supplier) Option {
	return func(g *Generator) { g.names = s }
}

// New creates a new Generator. One Generator serves one generation pass, as
// the name supplier remembers every name it handed out.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	g := &Generator{
		config: cfg,
		log:    logger.Nop(),
		funcs:  templateFuncs(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.names == nil {
		names, err := naming.New(naming.Strategy(cfg.Options.Naming))
		if err != nil {
			return nil, err
		}
		g.names = names
	}
	return g, nil
}

// Unit is one rendered compilation unit.
type Unit struct {
	Name   string // Class or enum name
	File   string // Output file name
	Source string // Rendered C# source
}

// Build renders every class and then every enum of req, in request order.
func (g *Generator) Build(ctx context.Context, req *model.Request) ([]Unit, error) {
	var units []Unit

	for i := range req.Classes {
		c := &req.Classes[i]
		b, err := g.classBuilder(c)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", c.Name)
		}
		g.log.Debugw("rendered class",
			logger.FieldUnit, c.Name,
			logger.FieldFile, c.FileName(),
			logger.FieldFields, b.FieldCount(),
			logger.FieldMethods, b.MethodCount(),
		)
		units = append(units, Unit{Name: c.Name, File: c.FileName(), Source: b.Render()})
	}

	for i := range req.Enums {
		e := &req.Enums[i]
		b, err := g.enumBuilder(e)
		if err != nil {
			return nil, errors.Wrapf(err, "enum %s", e.Name)
		}
		g.log.Debugw("rendered enum",
			logger.FieldUnit, e.Name,
			logger.FieldFile, e.FileName(),
			logger.FieldMembers, len(b.Members()),
		)
		units = append(units, Unit{Name: e.Name, File: e.FileName(), Source: b.Render()})
	}

	if g.config.Options.Check {
		for _, u := range units {
			if err := g.check(ctx, u); err != nil {
				return nil, err
			}
		}
	}

	return units, nil
}

// Generate writes all units of req to w. With more than one unit, each is
// preceded by a comment line naming its file.
func (g *Generator) Generate(ctx context.Context, req *model.Request, w io.Writer) error {
	units, err := g.Build(ctx, req)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, u := range units {
		if len(units) > 1 {
			if i > 0 {
				buf.WriteByte('\n')
			}
			fmt.Fprintf(&buf, "// %s\n", u.File)
		}
		buf.WriteString(u.Source)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// WriteFiles writes each unit of req to its file below dir and returns the
// written paths.
func (g *Generator) WriteFiles(ctx context.Context, req *model.Request, dir string) ([]string, error) {
	units, err := g.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(units))
	for _, u := range units {
		if !filepath.IsLocal(u.File) {
			return nil, errors.WithHint(
				errors.Wrapf(ErrInvalidArgument, "%s: output file %q leaves the output directory", u.Name, u.File),
				"use a relative file name without \"..\"",
			)
		}
		path := filepath.Join(dir, u.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "creating output directory")
		}
		if err := os.WriteFile(path, []byte(u.Source), 0o644); err != nil {
			return nil, errors.Wrapf(err, "writing %s", path)
		}
		g.log.Debugw("wrote unit", logger.FieldUnit, u.Name, logger.FieldFile, path)
		paths = append(paths, path)
	}
	return paths, nil
}

func (g *Generator) check(ctx context.Context, u Unit) error {
	if err := check.Validate(ctx, u.Source); err != nil {
		if errors.Is(err, check.ErrSyntax) {
			g.log.Warnw("generated source does not parse",
				logger.FieldUnit, u.Name,
				logger.FieldFile, u.File,
				logger.FieldProblems, errors.FlattenDetails(err),
			)
		}
		return errors.Wrapf(err, "checking %s", u.File)
	}
	return nil
}
