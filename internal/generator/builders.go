package generator

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"csgen/internal/csharp"
	"csgen/internal/model"
)

// classBuilder populates a ClassBuilder from c, falling back to the config
// options for values c leaves empty.
func (g *Generator) classBuilder(c *model.Class) (*csharp.ClassBuilder, error) {
	opts := g.config.Options

	access, err := parseAccess(c.Access, opts.Access)
	if err != nil {
		return nil, err
	}
	kindName := c.Kind
	if kindName == "" {
		kindName = opts.ClassKind
	}
	kind, ok := csharp.ParseClassKind(kindName)
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidArgument, "class kind %q", kindName),
			"use normal, static, sealed, abstract, partial or a \"<kind> partial\" combination",
		)
	}

	b := csharp.NewClassBuilder(c.Name).
		SetNamespace(firstNonEmpty(c.Namespace, opts.Namespace)).
		SetAccess(access).
		SetKind(kind)

	for _, ns := range opts.Usings {
		b.AddUsing(ns)
	}
	for _, ns := range c.Usings {
		b.AddUsing(ns)
	}

	switch {
	case c.BaseRef != nil:
		b.SetBaseRef(csharp.TypeRef{Namespace: c.BaseRef.Namespace, Name: c.BaseRef.Name})
	case c.Base != "":
		b.SetBase(c.Base)
	}
	for _, name := range c.Interfaces {
		b.AddInterface(name)
	}
	for _, ref := range c.InterfaceRefs {
		b.AddInterfaceRef(csharp.TypeRef{Namespace: ref.Namespace, Name: ref.Name})
	}

	if c.NoHeader {
		b.ClearComments()
	}
	for _, comment := range c.Comments {
		b.AddComment(comment)
	}
	for _, attr := range c.Attributes {
		b.AddAttribute(attr)
	}
	for _, cond := range c.Conditions {
		b.AddCondition(cond)
	}

	for _, f := range c.Fields {
		fb, err := g.fieldBuilder(f)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
		b.AddField(fb)
	}

	for _, m := range c.Methods {
		mb, err := methodBuilder(m)
		if err != nil {
			return nil, errors.Wrapf(err, "method %s", m.Name)
		}
		b.AddMethod(mb)
	}

	for i, exp := range c.Repeat {
		methods, err := g.expand(c.Name, exp)
		if err != nil {
			return nil, errors.Wrapf(err, "repeat #%d", i+1)
		}
		for _, mb := range methods {
			b.AddMethod(mb)
		}
	}

	for _, raw := range c.Append {
		b.AppendRaw(raw)
	}

	return b, nil
}

func (g *Generator) fieldBuilder(f model.Field) (*csharp.FieldBuilder, error) {
	access, err := parseAccess(f.Access, g.config.Options.FieldAccess)
	if err != nil {
		return nil, err
	}

	fb := csharp.NewFieldBuilder(f.Name, f.Type).
		SetAccess(access).
		SetDefault(f.Default)
	if f.Static {
		fb.Static()
	}
	if f.ReadOnly {
		fb.ReadOnly()
	}
	for _, attr := range f.Attributes {
		fb.AddAttribute(attr)
	}
	return fb, nil
}

func methodBuilder(m model.Method) (*csharp.MethodBuilder, error) {
	access, err := parseAccess(m.Access, string(csharp.Public))
	if err != nil {
		return nil, err
	}

	mb := csharp.NewMethodBuilder(m.Name).
		SetAccess(access).
		SetBody(m.Body).
		ExpressionBodied(m.Expression)
	if m.Static {
		mb.Static()
	}
	if m.Returns != "" {
		mb.SetReturnType(m.Returns)
	}
	for _, p := range m.Params {
		if p.Default != "" {
			mb.AddOptionalParameter(p.Type, p.Name, p.Default)
		} else {
			mb.AddParameter(p.Type, p.Name)
		}
	}
	for _, attr := range m.Attributes {
		mb.AddAttribute(attr.Name, attr.Args)
	}
	for _, line := range m.AttributeLines {
		mb.AddAttributeLine(line)
	}
	return mb, nil
}

// expand renders one method per item of exp.
func (g *Generator) expand(class string, exp model.Expansion) ([]*csharp.MethodBuilder, error) {
	tmpl := exp.Method
	methods := make([]*csharp.MethodBuilder, 0, len(exp.Items))

	for i, item := range exp.Items {
		data := model.ExpansionData{Index: i, Item: item, Class: class}

		m := tmpl
		var err error
		if m.Name, err = g.execute("name", tmpl.Name, data); err != nil {
			return nil, err
		}
		if m.Body, err = g.execute("body", tmpl.Body, data); err != nil {
			return nil, err
		}
		m.Attributes = make([]model.Attribute, len(tmpl.Attributes))
		for j, attr := range tmpl.Attributes {
			args, err := g.execute("attribute", attr.Args, data)
			if err != nil {
				return nil, err
			}
			m.Attributes[j] = model.Attribute{Name: attr.Name, Args: args}
		}
		m.AttributeLines = make([]string, len(tmpl.AttributeLines))
		for j, line := range tmpl.AttributeLines {
			if m.AttributeLines[j], err = g.execute("attributeLine", line, data); err != nil {
				return nil, err
			}
		}

		if exp.Unique {
			m.Name = g.names.Name(m.Name, m.Body)
		}

		mb, err := methodBuilder(m)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		methods = append(methods, mb)
	}
	return methods, nil
}

// execute renders text as a template against data. Text without actions is
// returned unchanged.
func (g *Generator) execute(name, text string, data model.ExpansionData) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	t, err := template.New(name).Funcs(g.funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errors.Wrapf(err, "parsing %s template", name)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", errors.Wrapf(err, "executing %s template", name)
	}
	return sb.String(), nil
}

func (g *Generator) enumBuilder(e *model.Enum) (*csharp.EnumBuilder, error) {
	access, err := parseAccess(e.Access, string(csharp.Public))
	if err != nil {
		return nil, err
	}

	b := csharp.NewEnumBuilder(e.Name, firstNonEmpty(e.Namespace, g.config.Options.Namespace)).
		SetAccess(access)
	for _, member := range e.Members {
		if e.Sanitize {
			member = identifier(member)
		}
		b.AddMember(member)
	}
	return b, nil
}

func parseAccess(value, fallback string) (csharp.AccessModifier, error) {
	s := firstNonEmpty(value, fallback)
	access, ok := csharp.ParseAccessModifier(s)
	if !ok {
		return "", errors.WithHint(
			errors.Wrapf(ErrInvalidArgument, "access modifier %q", s),
			"use public, internal, private, protected, protected internal or private protected",
		)
	}
	return access, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
