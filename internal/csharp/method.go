package csharp

import (
	"fmt"
	"strings"
)

// MethodBuilder renders one member function. The body is opaque text and is
// never inspected; the caller guarantees it is well formed.
type MethodBuilder struct {
	name       string
	access     AccessModifier
	kind       MethodKind
	returnType string
	params     []Parameter
	attributes []string
	body       string
	expression bool
}

// NewMethodBuilder creates a public instance method returning void.
func NewMethodBuilder(name string) *MethodBuilder {
	return &MethodBuilder{
		name:       name,
		access:     Public,
		kind:       Instance,
		returnType: "void",
	}
}

func (m *MethodBuilder) SetName(name string) *MethodBuilder {
	m.name = name
	return m
}

func (m *MethodBuilder) SetAccess(a AccessModifier) *MethodBuilder {
	m.access = a
	return m
}

func (m *MethodBuilder) SetKind(k MethodKind) *MethodBuilder {
	m.kind = k
	return m
}

// Static is shorthand for SetKind(StaticMethod).
func (m *MethodBuilder) Static() *MethodBuilder {
	return m.SetKind(StaticMethod)
}

func (m *MethodBuilder) SetReturnType(typ string) *MethodBuilder {
	m.returnType = typ
	return m
}

func (m *MethodBuilder) AddParameter(typ, name string) *MethodBuilder {
	m.params = append(m.params, Parameter{Type: typ, Name: name})
	return m
}

// AddOptionalParameter appends a parameter with a default value. It must be
// added after every required parameter.
func (m *MethodBuilder) AddOptionalParameter(typ, name, def string) *MethodBuilder {
	m.params = append(m.params, Parameter{Type: typ, Name: name, Default: def})
	return m
}

// AddAttribute adds an attribute rendered as "[name(args)]".
func (m *MethodBuilder) AddAttribute(name, args string) *MethodBuilder {
	m.attributes = append(m.attributes, fmt.Sprintf("[%s(%s)]", name, args))
	return m
}

// AddAttributeLine adds an attribute line verbatim.
func (m *MethodBuilder) AddAttributeLine(line string) *MethodBuilder {
	m.attributes = append(m.attributes, line)
	return m
}

func (m *MethodBuilder) SetBody(body string) *MethodBuilder {
	m.body = body
	return m
}

// ExpressionBodied switches between "=> body;" and block form.
func (m *MethodBuilder) ExpressionBodied(on bool) *MethodBuilder {
	m.expression = on
	return m
}

func (m *MethodBuilder) Name() string { return m.name }

// Signature returns the declaration line without attributes or body.
func (m *MethodBuilder) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.access.Keyword())
	sb.WriteByte(' ')
	if kw := m.kind.Keyword(); kw != "" {
		sb.WriteString(kw)
		sb.WriteByte(' ')
	}
	sb.WriteString(m.returnType)
	sb.WriteByte(' ')
	sb.WriteString(m.name)
	sb.WriteByte('(')
	sb.WriteString(renderParameters(m.params))
	sb.WriteByte(')')
	return sb.String()
}

// Render returns the attribute lines, the signature and the body.
func (m *MethodBuilder) Render() string {
	w := &writer{}
	for _, attr := range m.attributes {
		w.Line(attr)
	}

	if m.expression {
		// a trailing semicolon in the body is not doubled
		body := strings.TrimSuffix(strings.TrimSpace(m.body), ";")
		w.Line(m.Signature() + " => " + body + ";")
		return strings.TrimSuffix(w.String(), "\n")
	}

	w.Line(m.Signature())
	w.Open()
	w.Block(m.body)
	w.Close()
	return strings.TrimSuffix(w.String(), "\n")
}
